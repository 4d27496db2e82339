// Package spreadsheet renders delivery documents as xlsx workbooks.
package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	noteSheet = "Delivery note"
	firstLine = 6
)

type NoteLine struct {
	ProductName string
	Size        string
	Quantity    int
}

// DeliveryNote is one shipment of a PO on a given day.
type DeliveryNote struct {
	PO            string
	Day           string
	Lines         []NoteLine
	TotalQuantity int
	Note          string
}

// FileName is the suggested attachment name.
func (n DeliveryNote) FileName() string {
	return fmt.Sprintf("delivery-%s-%s.xlsx", n.PO, n.Day)
}

// WriteDeliveryNote writes the note as a single-sheet workbook:
// a header block, one row per line and a total row.
func WriteDeliveryNote(w io.Writer, note DeliveryNote) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", noteSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	title, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	header := []struct {
		cell  string
		value any
	}{
		{"A1", "DELIVERY NOTE"},
		{"A2", "PO"}, {"B2", note.PO},
		{"A3", "Date"}, {"B3", note.Day},
		{"A4", "Note"}, {"B4", note.Note},
		{"A5", "No."}, {"B5", "Product"}, {"C5", "Size"}, {"D5", "Quantity"},
	}
	for _, h := range header {
		if err = f.SetCellValue(noteSheet, h.cell, h.value); err != nil {
			return err
		}
	}
	if err = f.MergeCell(noteSheet, "A1", "D1"); err != nil {
		return err
	}
	if err = f.SetCellStyle(noteSheet, "A1", "D1", title); err != nil {
		return err
	}
	if err = f.SetCellStyle(noteSheet, "A2", "A4", bold); err != nil {
		return err
	}
	if err = f.SetCellStyle(noteSheet, "A5", "D5", bold); err != nil {
		return err
	}

	row := firstLine
	for i, line := range note.Lines {
		cell, cellErr := excelize.CoordinatesToCellName(1, row)
		if cellErr != nil {
			return cellErr
		}
		values := []any{i + 1, line.ProductName, line.Size, line.Quantity}
		if err = f.SetSheetRow(noteSheet, cell, &values); err != nil {
			return err
		}
		row++
	}

	totalLabel, _ := excelize.CoordinatesToCellName(3, row)
	totalValue, _ := excelize.CoordinatesToCellName(4, row)
	if err = f.SetCellValue(noteSheet, totalLabel, "Total"); err != nil {
		return err
	}
	if err = f.SetCellValue(noteSheet, totalValue, note.TotalQuantity); err != nil {
		return err
	}
	if err = f.SetCellStyle(noteSheet, totalLabel, totalValue, bold); err != nil {
		return err
	}

	if err = f.SetColWidth(noteSheet, "A", "A", 8); err != nil {
		return err
	}
	if err = f.SetColWidth(noteSheet, "B", "B", 40); err != nil {
		return err
	}
	if err = f.SetColWidth(noteSheet, "C", "D", 12); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}
