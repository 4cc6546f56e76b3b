package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Reazonay/ArchitechLens/pkg/types"
)

// attachedBackend returns a backend attached to a fresh temp data dir,
// detached automatically at test end.
func attachedBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}))
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestBackendAttachDetach(t *testing.T) {
	t.Run("attach creates data dir and tables", func(t *testing.T) {
		b := attachedBackend(t)
		for _, name := range types.StandardTableNames {
			table, err := b.GetTable(name)
			assert.NoError(t, err)
			assert.NotNil(t, table)
		}
	})

	t.Run("double attach rejected", func(t *testing.T) {
		b := attachedBackend(t)
		err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
		assert.ErrorIs(t, err, types.ErrAlreadyAttached)
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		b := NewBackend()
		err := b.Attach(types.Config{Backend: "postgres"})
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
	})

	t.Run("detach is idempotent", func(t *testing.T) {
		b := NewBackend()
		require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
		assert.NoError(t, b.Detach())
		assert.NoError(t, b.Detach())
	})

	t.Run("operations after detach fail", func(t *testing.T) {
		b := NewBackend()
		require.NoError(t, b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}))
		require.NoError(t, b.Detach())

		_, err := b.GetTable(types.ModelsTable)
		assert.ErrorIs(t, err, types.ErrStoreDetached)
	})

	t.Run("unknown table rejected", func(t *testing.T) {
		b := attachedBackend(t)
		_, err := b.GetTable("walls")
		assert.ErrorIs(t, err, types.ErrTableNotFound)
	})
}

func TestBackendPersistsAcrossAttachCycles(t *testing.T) {
	dataDir := t.TempDir()
	config := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

	b := NewBackend()
	require.NoError(t, b.Attach(config))

	table, err := b.GetTable(types.ModelsTable)
	require.NoError(t, err)
	id, err := table.Set("", &types.Model{Name: "Persistent"})
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	// A fresh backend over the same data dir sees the model.
	b2 := NewBackend()
	require.NoError(t, b2.Attach(config))
	defer b2.Detach()

	table, err = b2.GetTable(types.ModelsTable)
	require.NoError(t, err)
	got, err := table.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Persistent", got.(*types.Model).Name)
}
