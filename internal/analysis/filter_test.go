package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reazonay/ArchitechLens/pkg/types"
)

func TestFilterByType(t *testing.T) {
	f := NewFilter(demoModel().Elements)

	walls := f.ByType(types.TypeWall)
	assert.Equal(t, 3, walls.Len())

	// Case-insensitive input.
	assert.Equal(t, 3, f.ByType("wall").Len())

	// Unrecognized type matches nothing.
	assert.Equal(t, 0, f.ByType("CHIMNEY").Len())
}

func TestFilterByMaterial(t *testing.T) {
	f := NewFilter(demoModel().Elements)

	assert.Equal(t, 2, f.ByMaterial(types.MaterialBrick).Len())
	assert.Equal(t, 2, f.ByMaterial("brick").Len())
	assert.Equal(t, 0, f.ByMaterial("GRANITE").Len())
}

func TestFilterChaining(t *testing.T) {
	f := NewFilter(demoModel().Elements)

	brickWalls := f.ByType(types.TypeWall).ByMaterial(types.MaterialBrick)
	require.Equal(t, 2, brickWalls.Len())
	for _, e := range brickWalls.Elements() {
		assert.Equal(t, types.TypeWall, e.Type)
		assert.Equal(t, types.MaterialBrick, e.Material)
	}
}

func TestFilterByProperty(t *testing.T) {
	f := NewFilter(demoModel().Elements)

	rated := f.ByProperty("fire_rating", "F90")
	assert.Equal(t, 2, rated.Len())

	// Value must match, not just the key.
	assert.Equal(t, 0, f.ByProperty("fire_rating", "F30").Len())
	assert.Equal(t, 0, f.ByProperty("missing", "x").Len())

	// Numeric values match across decoded representations.
	assert.Equal(t, 1, f.ByProperty("sound_rating_db", 45).Len())
	assert.Equal(t, 1, f.ByProperty("sound_rating_db", 45.0).Len())
	assert.Equal(t, 0, f.ByProperty("sound_rating_db", 44.0).Len())
	assert.Equal(t, 0, f.ByProperty("sound_rating_db", "45dB").Len())
}

func TestFilterByGeometryRange(t *testing.T) {
	f := NewFilter(demoModel().Elements)

	t.Run("min bound", func(t *testing.T) {
		large, err := f.ByGeometryRange(types.MeasureArea, types.Float(30), nil)
		require.NoError(t, err)
		// building 300, floor 100, walls 30+30.
		assert.Equal(t, 4, large.Len())
	})

	t.Run("min and max bounds", func(t *testing.T) {
		mid, err := f.ByGeometryRange(types.MeasureArea, types.Float(10), types.Float(50))
		require.NoError(t, err)
		// walls 30, 30, 15.
		assert.Equal(t, 3, mid.Len())
	})

	t.Run("open range keeps all measured elements", func(t *testing.T) {
		all, err := f.ByGeometryRange(types.MeasureArea, nil, nil)
		require.NoError(t, err)
		// The space has no area and is excluded.
		assert.Equal(t, 6, all.Len())
	})

	t.Run("elements without the measure excluded", func(t *testing.T) {
		byVolume, err := f.ByGeometryRange(types.MeasureVolume, nil, nil)
		require.NoError(t, err)
		// Window and space carry no volume.
		assert.Equal(t, 5, byVolume.Len())
	})

	t.Run("invalid measure rejected", func(t *testing.T) {
		_, err := f.ByGeometryRange("diameter", nil, nil)
		assert.ErrorIs(t, err, types.ErrInvalidMeasure)
	})
}
