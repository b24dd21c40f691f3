package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seatmap/world"
)

func TestGenerateDefaultShape(t *testing.T) {
	w, err := Generate(DefaultShape(), 1)
	require.NoError(t, err)

	assert.Len(t, w.Zones, 3)
	assert.Len(t, w.Rows, 3*14)
	assert.Len(t, w.Seats, 1176, "3 zones x 14 rows x 28 seats")
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	a, err := Generate(DefaultShape(), 42)
	require.NoError(t, err)
	b, err := Generate(DefaultShape(), 42)
	require.NoError(t, err)

	require.Equal(t, len(a.Seats), len(b.Seats))
	for i := range a.Seats {
		assert.Equal(t, a.Seats[i].ID, b.Seats[i].ID)
		assert.Equal(t, a.Seats[i].Status, b.Seats[i].Status)
		assert.Equal(t, a.Seats[i].X, b.Seats[i].X)
		assert.Equal(t, a.Seats[i].Y, b.Seats[i].Y)
	}
}

func TestGenerateSeatsInheritZonePriceTier(t *testing.T) {
	w, err := Generate(DefaultShape(), 7)
	require.NoError(t, err)

	for _, s := range w.Seats {
		z := w.ZoneByID(s.ZoneID)
		require.NotNil(t, z)
		assert.Equal(t, z.PriceTier, s.PriceTier)
	}
}

func TestGenerateStatusMix(t *testing.T) {
	shape := DefaultShape()
	w, err := Generate(shape, 3)
	require.NoError(t, err)

	counts := w.CountByStatus()
	total := len(w.Seats)

	// Fractions are sampled, so allow a generous envelope
	assert.InDelta(t, shape.SoldFraction, float64(counts[world.StatusSold])/float64(total), 0.05)
	assert.InDelta(t, shape.HoldFraction, float64(counts[world.StatusHold])/float64(total), 0.05)
	assert.Greater(t, counts[world.StatusAvailable], total/2)
}

func TestGenerateRejectsInvalidShape(t *testing.T) {
	_, err := Generate(Shape{Zones: 0, RowsPerZone: 5, SeatsPerRow: 5}, 1)
	assert.Error(t, err)

	_, err = Generate(Shape{Zones: 2, RowsPerZone: -1, SeatsPerRow: 5}, 1)
	assert.Error(t, err)
}

func TestGenerateZoneColorsAreValidHex(t *testing.T) {
	w, err := Generate(DefaultShape(), 1)
	require.NoError(t, err)

	for _, z := range w.Zones {
		assert.Regexp(t, `^#[0-9a-fA-F]{6}$`, z.Color)
	}
}
