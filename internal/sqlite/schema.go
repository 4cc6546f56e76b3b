// Package sqlite implements the SQLite backend for the ArchitechLens model
// store. Models and their elements live in two tables; free-form metadata
// and element properties are stored as JSON text columns, geometric
// measures as nullable REAL columns so absent stays distinct from zero.
package sqlite

// Schema DDL. Attach runs these with IF NOT EXISTS so an existing store
// is reused across runs.
const (
	createModels = `CREATE TABLE IF NOT EXISTS models (
    model_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    version TEXT NOT NULL,
    date TEXT NOT NULL,
    metadata TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createElements = `CREATE TABLE IF NOT EXISTS elements (
    model_id TEXT NOT NULL,
    element_id TEXT NOT NULL,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    material TEXT NOT NULL,
    parent_id TEXT,
    properties TEXT NOT NULL,
    length REAL,
    width REAL,
    height REAL,
    thickness REAL,
    area REAL,
    volume REAL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    PRIMARY KEY (model_id, element_id),
    FOREIGN KEY (model_id) REFERENCES models(model_id)
);`

	createElementTypeIndex = `CREATE INDEX IF NOT EXISTS idx_elements_type
    ON elements(model_id, type);`

	createElementMaterialIndex = `CREATE INDEX IF NOT EXISTS idx_elements_material
    ON elements(model_id, material);`
)

// schemaStatements lists the DDL in execution order.
var schemaStatements = []string{
	createModels,
	createElements,
	createElementTypeIndex,
	createElementMaterialIndex,
}
