package types

import "errors"

// Store defines the interface for backend-agnostic model persistence.
// Callers attach to a backend, access tables by name, and detach when done.
type Store interface {
	// GetTable returns the Table for the given name.
	// Returns ErrTableNotFound if the name is not a standard table.
	GetTable(name string) (Table, error)

	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, table operations return ErrStoreDetached.
	Detach() error
}

// Table provides uniform CRUD operations for a single entity type.
// Get and Fetch return any; callers type-assert to the concrete entity
// struct (*Model for the models table, *Element for the elements table).
type Table interface {
	// Get retrieves the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Get(id string) (any, error)

	// Set creates or updates an entity. When id is empty a new UUID v7 is
	// generated. Returns the actual ID used (generated or provided).
	Set(id string, data any) (string, error)

	// Delete removes the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Delete(id string) error

	// Fetch returns all entities matching the filter. Filter keys are
	// field names, values are compared for equality and ANDed together.
	// An empty filter returns every entity in the table.
	Fetch(filter map[string]any) ([]any, error)
}

// Standard table names for Store.GetTable.
const (
	ModelsTable   = "models"
	ElementsTable = "elements"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{ModelsTable, ElementsTable}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrTableNotFound   = errors.New("table not found")
)

// Table operation errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidID     = errors.New("invalid entity ID")
	ErrInvalidData   = errors.New("invalid entity data")
	ErrInvalidFilter = errors.New("invalid filter field")
)

// Entity validation errors.
var (
	ErrInvalidElementType = errors.New("invalid element type")
	ErrInvalidMaterial    = errors.New("invalid material")
	ErrInvalidMeasure     = errors.New("invalid geometric measure")
	ErrDuplicateElement   = errors.New("duplicate element ID")
)
