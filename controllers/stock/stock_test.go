package stockcontroller

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"github.com/upparakash/AspireBrandApi/apperror"
	"github.com/upparakash/AspireBrandApi/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStock struct {
	levels map[uint]int
}

func (f *fakeStock) Add(_ context.Context, id uint, qty int) error {
	if _, ok := f.levels[id]; !ok {
		return apperror.NotFound("Subcategory not found")
	}
	f.levels[id] += qty
	return nil
}

func (f *fakeStock) Total(_ context.Context, id uint) (int, error) {
	return f.levels[id], nil
}

func (f *fakeStock) List(_ context.Context, category string) ([]models.StockLevel, error) {
	return []models.StockLevel{{SubcategoryID: 1, CategoryName: category, Stock: f.levels[1]}}, nil
}

func (f *fakeStock) Categories(context.Context) ([]string, error) {
	return []string{"Men", "Women"}, nil
}

func router(svc *fakeStock) *gin.Engine {
	r := gin.New()
	g := r.Group("/stock")
	g.GET("", GetStocks(svc))
	g.GET("/categories", GetCategories(svc))
	g.GET("/:subcategoryId", GetStockByID(svc))
	g.POST("", AddStock(svc))
	g.POST("/import-excel", ImportStockFromExcel(svc))
	return r
}

func call(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonReq(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestStockHandlers(t *testing.T) {
	svc := &fakeStock{levels: map[uint]int{1: 2}}
	r := router(svc)

	w := call(r, jsonReq(http.MethodPost, "/stock", `{"subcategoryId":1,"stock":5}`))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, svc.levels[1])

	w = call(r, jsonReq(http.MethodPost, "/stock", `{"subcategoryId":1}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(r, jsonReq(http.MethodPost, "/stock", `{"subcategoryId":8,"stock":1}`))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call(r, httptest.NewRequest(http.MethodGet, "/stock/1", nil))
	assert.JSONEq(t, `{"subcategory_id":1,"total_stock":7}`, w.Body.String())

	w = call(r, httptest.NewRequest(http.MethodGet, "/stock/categories", nil))
	assert.JSONEq(t, `["Men","Women"]`, w.Body.String())

	w = call(r, httptest.NewRequest(http.MethodGet, "/stock?category=Men", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"category_name":"Men"`)
}

func TestImportStockFromExcel(t *testing.T) {
	svc := &fakeStock{levels: map[uint]int{1: 0}}
	r := router(svc)

	book := xlsx.NewFile()
	sheet, err := book.AddSheet("Stock")
	require.NoError(t, err)
	for _, cells := range [][]string{{"subcategory_id", "stock"}, {"1", "4"}, {"2", "1"}} {
		row := sheet.AddRow()
		for _, v := range cells {
			row.AddCell().SetValue(v)
		}
	}
	var xl bytes.Buffer
	require.NoError(t, book.Write(&xl))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "stock.xlsx")
	require.NoError(t, err)
	part.Write(xl.Bytes())
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/stock/import-excel", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := call(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Import completed","created_count":1,"skipped_count":1}`, w.Body.String())
	assert.Equal(t, 4, svc.levels[1])

	w = call(r, jsonReq(http.MethodPost, "/stock/import-excel", `{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
