package delivery_test

import (
	"testing"
	"time"

	"embroidery/internal/core/domain/model/delivery"
	"embroidery/internal/core/domain/model/kernel"
	"embroidery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOf_UsesUTCCalendarDate(t *testing.T) {
	hcm := time.FixedZone("ICT", 7*3600)
	// 01:30 local on the 2nd is still the 1st in UTC.
	d := delivery.DayOf(time.Date(2025, 6, 2, 1, 30, 0, 0, hcm))

	assert.Equal(t, "2025-06-01", d.String())
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), d.Start())
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), d.End())

	parsed, err := delivery.ParseDay("2025-06-01")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(d))

	_, err = delivery.ParseDay("06/01/2025")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewDelivery_Invalid(t *testing.T) {
	_, err := delivery.NewDelivery(kernel.NewUUID(), " ", delivery.Day{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestDelivery_SameDayMerge(t *testing.T) {
	d, err := delivery.NewDelivery(kernel.NewUUID(), "PO-7", delivery.DayOf(time.Now()))
	require.NoError(t, err)

	require.NoError(t, d.AddLine("Polo", "M", 3))
	require.NoError(t, d.AddLine("Polo", "L", 1))
	require.NoError(t, d.AddLine("Polo", "M", 2))

	assert.Equal(t, []delivery.Line{
		{ProductName: "Polo", Size: "M", Quantity: 5},
		{ProductName: "Polo", Size: "L", Quantity: 1},
	}, d.Lines())
	assert.Equal(t, 6, d.TotalQuantity())

	require.ErrorIs(t, d.AddLine("", "M", 1), errs.ErrValueIsRequired)
	require.ErrorIs(t, d.AddLine("Polo", "M", 0), errs.ErrValueIsInvalid)
}

func TestDelivery_AppendNotes(t *testing.T) {
	d, _ := delivery.NewDelivery(kernel.NewUUID(), "PO-7", delivery.DayOf(time.Now()))

	d.AppendNotes(" ", "")
	assert.Empty(t, d.Note())

	d.AppendNotes("box 1", "box 2")
	assert.Equal(t, "box 1 | box 2", d.Note())

	d.AppendNotes("late truck")
	assert.Equal(t, "box 1 | box 2 | late truck", d.Note())
}

func TestDelivery_LoadedTotalTracksStoredRevision(t *testing.T) {
	fresh, err := delivery.NewDelivery(kernel.NewUUID(), "PO-7", delivery.DayOf(time.Now()))
	require.NoError(t, err)
	assert.Zero(t, fresh.LoadedTotal())

	restored, err := delivery.RestoreDelivery(kernel.NewUUID(), "PO-7", delivery.DayOf(time.Now()),
		[]delivery.Line{{ProductName: "Polo", Size: "M", Quantity: 3}}, "", time.Now(), time.Now())
	require.NoError(t, err)
	require.NoError(t, restored.AddLine("Polo", "M", 2))

	assert.Equal(t, 3, restored.LoadedTotal())
	assert.Equal(t, 5, restored.TotalQuantity())
}
