package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reazonay/ArchitechLens/pkg/types"
)

// storedModel builds a small model with two elements.
func storedModel() *types.Model {
	m := &types.Model{
		Name:     "Stored Demo",
		Version:  "1.0",
		Date:     "2024-03-01",
		Metadata: map[string]any{"project_id": "ST-1"},
	}
	m.AddElement(&types.Element{
		ElementID: "f_001", Name: "Ground Floor",
		Type: types.TypeFloor, Material: types.MaterialConcrete,
		Geometry: types.Geometry{Area: types.Float(100), Thickness: types.Float(0.3)},
	})
	m.AddElement(&types.Element{
		ElementID: "w_001", Name: "North Wall",
		Type: types.TypeWall, Material: types.MaterialBrick, ParentID: "f_001",
		Properties: map[string]any{"fire_rating": "F90"},
		Geometry:   types.Geometry{Length: types.Float(10), Height: types.Float(3), Area: types.Float(30)},
	})
	return m
}

func modelsTableFor(t *testing.T, b *Backend) types.Table {
	t.Helper()
	table, err := b.GetTable(types.ModelsTable)
	require.NoError(t, err)
	return table
}

func TestModelsTableSetAndGet(t *testing.T) {
	b := attachedBackend(t)
	table := modelsTableFor(t, b)

	id, err := table.Set("", storedModel())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := table.Get(id)
	require.NoError(t, err)
	model := got.(*types.Model)

	assert.Equal(t, id, model.ModelID)
	assert.Equal(t, "Stored Demo", model.Name)
	assert.Equal(t, "ST-1", model.Metadata["project_id"])
	assert.False(t, model.CreatedAt.IsZero())
	require.Len(t, model.Elements, 2)

	wall := model.ElementByID("w_001")
	require.NotNil(t, wall)
	assert.Equal(t, types.TypeWall, wall.Type)
	assert.Equal(t, "f_001", wall.ParentID)
	assert.Equal(t, "F90", wall.Property("fire_rating", nil))
	require.NotNil(t, wall.Geometry.Area)
	assert.InDelta(t, 30.0, *wall.Geometry.Area, 1e-9)
	// Geometry absent stays absent.
	assert.Nil(t, wall.Geometry.Width)
}

func TestModelsTableUpdate(t *testing.T) {
	b := attachedBackend(t)
	table := modelsTableFor(t, b)

	id, err := table.Set("", storedModel())
	require.NoError(t, err)

	got, err := table.Get(id)
	require.NoError(t, err)
	created := got.(*types.Model).CreatedAt

	// Update replaces the element set wholesale.
	updated := &types.Model{Name: "Renamed", Version: "2.0", Date: "2024-04-01"}
	updated.AddElement(&types.Element{
		ElementID: "r_001", Type: types.TypeRoof, Material: types.MaterialSteel,
	})
	_, err = table.Set(id, updated)
	require.NoError(t, err)

	got, err = table.Get(id)
	require.NoError(t, err)
	model := got.(*types.Model)

	assert.Equal(t, "Renamed", model.Name)
	assert.Equal(t, created, model.CreatedAt, "creation time preserved on update")
	assert.True(t, model.UpdatedAt.After(created) || model.UpdatedAt.Equal(created))
	require.Len(t, model.Elements, 1)
	assert.Equal(t, "r_001", model.Elements[0].ElementID)
}

func TestModelsTableSetErrors(t *testing.T) {
	b := attachedBackend(t)
	table := modelsTableFor(t, b)

	t.Run("wrong data type", func(t *testing.T) {
		_, err := table.Set("", "not a model")
		assert.ErrorIs(t, err, types.ErrInvalidData)
	})

	t.Run("invalid element rejected", func(t *testing.T) {
		m := &types.Model{Name: "Bad"}
		m.AddElement(&types.Element{ElementID: "x", Type: "CHIMNEY"})
		_, err := table.Set("", m)
		assert.ErrorIs(t, err, types.ErrInvalidElementType)
	})
}

func TestModelsTableDelete(t *testing.T) {
	b := attachedBackend(t)
	table := modelsTableFor(t, b)

	id, err := table.Set("", storedModel())
	require.NoError(t, err)

	require.NoError(t, table.Delete(id))

	_, err = table.Get(id)
	assert.ErrorIs(t, err, types.ErrNotFound)

	// Elements cascade.
	elemTable, err := b.GetTable(types.ElementsTable)
	require.NoError(t, err)
	elements, err := elemTable.Fetch(map[string]any{"model_id": id})
	require.NoError(t, err)
	assert.Empty(t, elements)

	t.Run("deleting again returns not found", func(t *testing.T) {
		assert.ErrorIs(t, table.Delete(id), types.ErrNotFound)
	})

	t.Run("empty ID rejected", func(t *testing.T) {
		assert.ErrorIs(t, table.Delete(""), types.ErrInvalidID)
	})
}

func TestModelsTableFetch(t *testing.T) {
	b := attachedBackend(t)
	table := modelsTableFor(t, b)

	_, err := table.Set("", storedModel())
	require.NoError(t, err)
	other := &types.Model{Name: "Other", Version: "3.0"}
	_, err = table.Set("", other)
	require.NoError(t, err)

	t.Run("empty filter returns all", func(t *testing.T) {
		all, err := table.Fetch(nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("filter by name", func(t *testing.T) {
		got, err := table.Fetch(map[string]any{"name": "Other"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Other", got[0].(*types.Model).Name)
	})

	t.Run("filters are ANDed", func(t *testing.T) {
		got, err := table.Fetch(map[string]any{"name": "Other", "version": "1.0"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown filter key rejected", func(t *testing.T) {
		_, err := table.Fetch(map[string]any{"architect": "x"})
		assert.ErrorIs(t, err, types.ErrInvalidFilter)
	})
}
