package inventory

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx"
	"github.com/upparakash/AspireBrandApi/apperror"
)

// ImportResult counts the rows of a stock sheet.
type ImportResult struct {
	Created int `json:"created_count"`
	Skipped int `json:"skipped_count"`
}

type Adder interface {
	Add(ctx context.Context, subcategoryID uint, qty int) error
}

// Import reads a workbook whose first sheet has a header row followed by
// (subcategory id, stock) rows and adds each to the store. Rows that do not
// parse or name an unknown subcategory are skipped; a store failure stops the
// import.
func Import(ctx context.Context, r io.ReaderAt, size int64, store Adder) (ImportResult, error) {
	var res ImportResult

	file, err := xlsx.OpenReaderAt(r, size)
	if err != nil {
		return res, apperror.InvalidField("file", "Failed to parse Excel file")
	}
	if len(file.Sheets) == 0 || file.Sheets[0].MaxRow < 2 {
		return res, apperror.InvalidField("file", "Excel file is empty or missing header row")
	}

	sheet := file.Sheets[0]
	for i := 1; i < sheet.MaxRow && i < len(sheet.Rows); i++ {
		row := sheet.Rows[i]
		get := func(index int) string {
			if row != nil && index < len(row.Cells) {
				return strings.TrimSpace(row.Cells[index].String())
			}
			return ""
		}

		id, err1 := strconv.ParseUint(get(0), 10, 64)
		qty, err2 := strconv.Atoi(get(1))
		if err1 != nil || err2 != nil || id == 0 {
			res.Skipped++
			continue
		}

		if err := store.Add(ctx, uint(id), qty); err != nil {
			if errors.Is(err, apperror.ErrValidation) || errors.Is(err, apperror.ErrNotFound) {
				res.Skipped++
				continue
			}
			return res, err
		}
		res.Created++
	}

	log.Printf("✅ Stock import: %d applied, %d skipped", res.Created, res.Skipped)
	return res, nil
}
