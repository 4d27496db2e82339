package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteDeliveryNote(t *testing.T) {
	note := DeliveryNote{
		PO:  "PO-7",
		Day: "2025-03-04",
		Lines: []NoteLine{
			{ProductName: "Logo polo", Size: "XL", Quantity: 3},
			{ProductName: "Beanie", Quantity: 2},
		},
		TotalQuantity: 5,
		Note:          "morning | evening",
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDeliveryNote(&buf, note))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{noteSheet}, f.GetSheetList())

	cell := func(name string) string {
		v, cellErr := f.GetCellValue(noteSheet, name)
		require.NoError(t, cellErr)
		return v
	}
	assert.Equal(t, "PO-7", cell("B2"))
	assert.Equal(t, "2025-03-04", cell("B3"))
	assert.Equal(t, "morning | evening", cell("B4"))
	assert.Equal(t, "Logo polo", cell("B6"))
	assert.Equal(t, "XL", cell("C6"))
	assert.Equal(t, "3", cell("D6"))
	assert.Equal(t, "2", cell("A7"))
	assert.Equal(t, "", cell("C7"))
	assert.Equal(t, "Total", cell("C8"))
	assert.Equal(t, "5", cell("D8"))
}

func TestWriteDeliveryNote_NoLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDeliveryNote(&buf, DeliveryNote{PO: "PO-1", Day: "2025-01-01"}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	v, err := f.GetCellValue(noteSheet, "C6")
	require.NoError(t, err)
	assert.Equal(t, "Total", v)
}

func TestDeliveryNote_FileName(t *testing.T) {
	assert.Equal(t, "delivery-PO-7-2025-03-04.xlsx", DeliveryNote{PO: "PO-7", Day: "2025-03-04"}.FileName())
}
