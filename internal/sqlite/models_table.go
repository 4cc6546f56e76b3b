// This file implements the models table accessor for the SQLite backend.
// A model row carries the document metadata; its elements live in the
// elements table and are loaded and replaced together with the model.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Reazonay/ArchitechLens/pkg/types"
)

// Compile-time interface check.
var _ types.Table = (*modelsTable)(nil)

// modelsTable implements the Table interface for models.
type modelsTable struct {
	backend *Backend
}

// modelFilterColumns maps filter keys to SQL columns.
var modelFilterColumns = map[string]string{
	"model_id": "model_id",
	"name":     "name",
	"version":  "version",
	"date":     "date",
}

// Get retrieves a model by ID, including all its elements.
func (mt *modelsTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	mt.backend.mu.RLock()
	defer mt.backend.mu.RUnlock()
	if !mt.backend.attached {
		return nil, types.ErrStoreDetached
	}

	row := mt.backend.db.QueryRow(
		"SELECT model_id, name, version, date, metadata, created_at, updated_at FROM models WHERE model_id = ?",
		id,
	)
	model, err := hydrateModel(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting model %s: %w", id, err)
	}

	elements, err := fetchElements(mt.backend.db, "WHERE model_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("loading elements for model %s: %w", id, err)
	}
	model.Elements = elements
	return model, nil
}

// Set persists a model and replaces its element set. If id is empty a
// UUID v7 is generated and the model is created; otherwise the existing
// model is updated. The model and its elements are written in one
// transaction.
func (mt *modelsTable) Set(id string, data any) (string, error) {
	model, ok := data.(*types.Model)
	if !ok {
		return "", types.ErrInvalidData
	}
	if err := model.Validate(); err != nil {
		return "", err
	}

	mt.backend.mu.Lock()
	defer mt.backend.mu.Unlock()
	if !mt.backend.attached {
		return "", types.ErrStoreDetached
	}

	now := time.Now().UTC()
	if id == "" {
		id = newUUID()
		model.CreatedAt = now
	} else {
		// Preserve the original creation time on update.
		var createdAt string
		err := mt.backend.db.QueryRow(
			"SELECT created_at FROM models WHERE model_id = ?", id,
		).Scan(&createdAt)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			model.CreatedAt = now
		case err != nil:
			return "", fmt.Errorf("checking model existence: %w", err)
		default:
			if model.CreatedAt, err = decodeTime(createdAt); err != nil {
				return "", err
			}
		}
	}
	model.ModelID = id
	model.UpdatedAt = now

	metadata, err := encodeMap(model.Metadata)
	if err != nil {
		return "", err
	}

	tx, err := mt.backend.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO models (model_id, name, version, date, metadata, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT (model_id) DO UPDATE SET
             name = excluded.name,
             version = excluded.version,
             date = excluded.date,
             metadata = excluded.metadata,
             updated_at = excluded.updated_at`,
		id, model.Name, model.Version, model.Date, metadata,
		encodeTime(model.CreatedAt), encodeTime(model.UpdatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("saving model %s: %w", id, err)
	}

	// Replace the element set wholesale; the document is the unit of import.
	if _, err := tx.Exec("DELETE FROM elements WHERE model_id = ?", id); err != nil {
		return "", fmt.Errorf("clearing elements for model %s: %w", id, err)
	}
	for _, elem := range model.Elements {
		elem.ModelID = id
		if elem.CreatedAt.IsZero() {
			elem.CreatedAt = now
		}
		elem.UpdatedAt = now
		if err := insertElement(tx, elem); err != nil {
			return "", fmt.Errorf("saving element %s: %w", elem.ElementID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing model %s: %w", id, err)
	}
	return id, nil
}

// Delete removes a model and cascades to its elements.
func (mt *modelsTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	mt.backend.mu.Lock()
	defer mt.backend.mu.Unlock()
	if !mt.backend.attached {
		return types.ErrStoreDetached
	}

	tx, err := mt.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM elements WHERE model_id = ?", id); err != nil {
		return fmt.Errorf("deleting elements for model %s: %w", id, err)
	}
	res, err := tx.Exec("DELETE FROM models WHERE model_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting model %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return tx.Commit()
}

// Fetch returns all models matching the filter, elements included.
// Filter keys: model_id, name, version, date.
func (mt *modelsTable) Fetch(filter map[string]any) ([]any, error) {
	mt.backend.mu.RLock()
	defer mt.backend.mu.RUnlock()
	if !mt.backend.attached {
		return nil, types.ErrStoreDetached
	}

	where, args, err := buildWhere(filter, modelFilterColumns)
	if err != nil {
		return nil, err
	}

	rows, err := mt.backend.db.Query(
		"SELECT model_id, name, version, date, metadata, created_at, updated_at FROM models "+where+" ORDER BY created_at",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching models: %w", err)
	}
	defer rows.Close()

	var models []*types.Model
	for rows.Next() {
		model, err := hydrateModel(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating model row: %w", err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating model rows: %w", err)
	}

	out := make([]any, 0, len(models))
	for _, model := range models {
		elements, err := fetchElements(mt.backend.db, "WHERE model_id = ?", model.ModelID)
		if err != nil {
			return nil, fmt.Errorf("loading elements for model %s: %w", model.ModelID, err)
		}
		model.Elements = elements
		out = append(out, model)
	}
	return out, nil
}

// scanner abstracts *sql.Row and *sql.Rows for hydration.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateModel scans a models row into a Model (without elements).
func hydrateModel(s scanner) (*types.Model, error) {
	var m types.Model
	var metadata, createdAt, updatedAt string
	if err := s.Scan(&m.ModelID, &m.Name, &m.Version, &m.Date, &metadata, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if m.Metadata, err = decodeMap(metadata); err != nil {
		return nil, err
	}
	if m.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	if m.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// buildWhere turns an equality filter into a WHERE clause. Unknown filter
// keys return ErrInvalidFilter.
func buildWhere(filter map[string]any, columns map[string]string) (string, []any, error) {
	if len(filter) == 0 {
		return "", nil, nil
	}
	var clauses []string
	var args []any
	for key, value := range filter {
		col, ok := columns[key]
		if !ok {
			return "", nil, fmt.Errorf("%w: %s", types.ErrInvalidFilter, key)
		}
		clauses = append(clauses, col+" = ?")
		args = append(args, value)
	}
	return "WHERE " + strings.Join(clauses, " AND "), args, nil
}
