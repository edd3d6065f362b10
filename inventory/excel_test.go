package inventory

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
	"github.com/upparakash/AspireBrandApi/apperror"
)

type fakeAdder struct {
	known map[uint]int
	err   error
}

func (f *fakeAdder) Add(_ context.Context, id uint, qty int) error {
	if f.err != nil {
		return f.err
	}
	if qty == 0 {
		return apperror.Validation("Stock must be a non-zero number")
	}
	if _, ok := f.known[id]; !ok {
		return apperror.NotFound("Subcategory not found")
	}
	f.known[id] += qty
	return nil
}

func workbook(t *testing.T, rows ...[]string) *bytes.Reader {
	t.Helper()
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Stock")
	require.NoError(t, err)
	for _, cells := range rows {
		row := sheet.AddRow()
		for _, v := range cells {
			row.AddCell().SetValue(v)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, file.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestImport(t *testing.T) {
	adder := &fakeAdder{known: map[uint]int{1: 5, 2: 0}}
	r := workbook(t,
		[]string{"subcategory_id", "stock"},
		[]string{"1", "10"},
		[]string{"2", "3"},
		[]string{"2", "4"},
		[]string{"abc", "1"},
		[]string{"99", "1"},
		[]string{"1", "0"},
		[]string{"1"},
	)

	res, err := Import(context.Background(), r, r.Size(), adder)

	require.NoError(t, err)
	assert.Equal(t, ImportResult{Created: 3, Skipped: 4}, res)
	assert.Equal(t, 15, adder.known[1])
	assert.Equal(t, 7, adder.known[2])
}

func TestImportStopsOnStoreFailure(t *testing.T) {
	adder := &fakeAdder{err: apperror.Unavailable("", errors.New("conn refused"))}
	r := workbook(t, []string{"id", "stock"}, []string{"1", "1"})

	_, err := Import(context.Background(), r, r.Size(), adder)

	assert.ErrorIs(t, err, apperror.ErrStoreUnavailable)
}

func TestImportRejectsBadFiles(t *testing.T) {
	ctx := context.Background()

	junk := bytes.NewReader([]byte("not a workbook"))
	_, err := Import(ctx, junk, junk.Size(), &fakeAdder{})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	headerOnly := workbook(t, []string{"id", "stock"})
	_, err = Import(ctx, headerOnly, headerOnly.Size(), &fakeAdder{})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
