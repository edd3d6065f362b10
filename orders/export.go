package orders

import (
	"io"

	"github.com/tealeg/xlsx"
	"github.com/upparakash/AspireBrandApi/models"
)

var exportHeaders = []string{
	"OrderID", "CreatedAt", "FullName", "Phone", "Address", "City", "Pincode",
	"PaymentMethod", "PaymentStatus", "OrderStatus", "TotalAmount",
	"ItemID", "ProductName", "Price", "Quantity", "ItemStatus",
}

// WriteWorkbook writes one row per order line; orders without lines get a
// single row with empty item columns.
func WriteWorkbook(w io.Writer, orders []models.Order) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return err
	}

	header := sheet.AddRow()
	for _, h := range exportHeaders {
		header.AddCell().SetValue(h)
	}

	for _, o := range orders {
		lines := o.Items
		if len(lines) == 0 {
			lines = []models.OrderItem{{}}
		}
		for _, it := range lines {
			row := sheet.AddRow()
			row.AddCell().SetInt(int(o.ID))
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.FullName)
			row.AddCell().SetValue(o.Phone)
			row.AddCell().SetValue(o.Address)
			row.AddCell().SetValue(o.City)
			row.AddCell().SetValue(o.Pincode)
			row.AddCell().SetValue(o.PaymentMethod)
			row.AddCell().SetValue(string(o.PaymentStatus))
			row.AddCell().SetValue(string(o.OrderStatus))
			row.AddCell().SetFloat(o.TotalAmount.InexactFloat64())
			if it.ID == 0 {
				continue
			}
			row.AddCell().SetInt(int(it.ID))
			row.AddCell().SetValue(it.ProductName)
			row.AddCell().SetFloat(it.Price.InexactFloat64())
			row.AddCell().SetInt(it.Quantity)
			row.AddCell().SetValue(string(it.ItemStatus))
		}
	}

	return file.Write(w)
}
