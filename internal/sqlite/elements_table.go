// This file implements the elements table accessor for the SQLite backend.
// Element IDs come from the source document and are unique per model, so
// table operations address elements by the composite "modelID/elementID".
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
var _ types.Table = (*elementsTable)(nil)

// elementsTable implements the Table interface for elements.
type elementsTable struct {
	backend *Backend
}

// elementFilterColumns maps filter keys to SQL columns.
var elementFilterColumns = map[string]string{
	"model_id":   "model_id",
	"element_id": "element_id",
	"name":       "name",
	"type":       "type",
	"material":   "material",
	"parent_id":  "parent_id",
}

// elementColumns is the SELECT column list shared by Get and Fetch.
const elementColumns = `model_id, element_id, name, type, material, parent_id,
    properties, length, width, height, thickness, area, volume, created_at, updated_at`

// splitElementID parses a composite "modelID/elementID" key.
func splitElementID(id string) (modelID, elementID string, err error) {
	modelID, elementID, ok := strings.Cut(id, "/")
	if !ok || modelID == "" || elementID == "" {
		return "", "", types.ErrInvalidID
	}
	return modelID, elementID, nil
}

// Get retrieves an element by composite ID ("modelID/elementID").
func (et *elementsTable) Get(id string) (any, error) {
	modelID, elementID, err := splitElementID(id)
	if err != nil {
		return nil, err
	}
	et.backend.mu.RLock()
	defer et.backend.mu.RUnlock()
	if !et.backend.attached {
		return nil, types.ErrStoreDetached
	}

	row := et.backend.db.QueryRow(
		"SELECT "+elementColumns+" FROM elements WHERE model_id = ? AND element_id = ?",
		modelID, elementID,
	)
	elem, err := hydrateElement(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting element %s: %w", id, err)
	}
	return elem, nil
}

// Set persists a single element. The element must carry a ModelID that
// refers to an existing model; the composite id argument, when non-empty,
// must agree with the element's own IDs.
func (et *elementsTable) Set(id string, data any) (string, error) {
	elem, ok := data.(*types.Element)
	if !ok {
		return "", types.ErrInvalidData
	}
	if elem.ModelID == "" {
		return "", types.ErrInvalidID
	}
	if err := elem.Validate(); err != nil {
		return "", err
	}
	composite := elem.ModelID + "/" + elem.ElementID
	if id != "" && id != composite {
		return "", types.ErrInvalidID
	}

	et.backend.mu.Lock()
	defer et.backend.mu.Unlock()
	if !et.backend.attached {
		return "", types.ErrStoreDetached
	}

	// The owning model must exist; elements are never orphaned.
	var one int
	err := et.backend.db.QueryRow(
		"SELECT 1 FROM models WHERE model_id = ?", elem.ModelID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return "", types.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("checking model existence: %w", err)
	}

	now := time.Now().UTC()
	if elem.CreatedAt.IsZero() {
		elem.CreatedAt = now
	}
	elem.UpdatedAt = now
	elem.Geometry.Derive()

	tx, err := et.backend.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertElement(tx, elem); err != nil {
		return "", fmt.Errorf("saving element %s: %w", composite, err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing element %s: %w", composite, err)
	}
	return composite, nil
}

// Delete removes an element by composite ID.
func (et *elementsTable) Delete(id string) error {
	modelID, elementID, err := splitElementID(id)
	if err != nil {
		return err
	}
	et.backend.mu.Lock()
	defer et.backend.mu.Unlock()
	if !et.backend.attached {
		return types.ErrStoreDetached
	}

	res, err := et.backend.db.Exec(
		"DELETE FROM elements WHERE model_id = ? AND element_id = ?",
		modelID, elementID,
	)
	if err != nil {
		return fmt.Errorf("deleting element %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch returns all elements matching the filter.
// Filter keys: model_id, element_id, name, type, material, parent_id.
func (et *elementsTable) Fetch(filter map[string]any) ([]any, error) {
	et.backend.mu.RLock()
	defer et.backend.mu.RUnlock()
	if !et.backend.attached {
		return nil, types.ErrStoreDetached
	}

	where, args, err := buildWhere(filter, elementFilterColumns)
	if err != nil {
		return nil, err
	}

	elements, err := fetchElements(et.backend.db, where, args...)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(elements))
	for _, e := range elements {
		out = append(out, e)
	}
	return out, nil
}

// execer abstracts *sql.Tx and *sql.DB for writes.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// insertElement upserts one element row.
func insertElement(x execer, e *types.Element) error {
	properties, err := encodeMap(e.Properties)
	if err != nil {
		return err
	}
	_, err = x.Exec(
		`INSERT INTO elements (model_id, element_id, name, type, material, parent_id,
             properties, length, width, height, thickness, area, volume, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
         ON CONFLICT (model_id, element_id) DO UPDATE SET
             name = excluded.name,
             type = excluded.type,
             material = excluded.material,
             parent_id = excluded.parent_id,
             properties = excluded.properties,
             length = excluded.length,
             width = excluded.width,
             height = excluded.height,
             thickness = excluded.thickness,
             area = excluded.area,
             volume = excluded.volume,
             updated_at = excluded.updated_at`,
		e.ModelID, e.ElementID, e.Name, e.Type, e.Material, e.ParentID,
		properties,
		nullFloat(e.Geometry.Length), nullFloat(e.Geometry.Width),
		nullFloat(e.Geometry.Height), nullFloat(e.Geometry.Thickness),
		nullFloat(e.Geometry.Area), nullFloat(e.Geometry.Volume),
		encodeTime(e.CreatedAt), encodeTime(e.UpdatedAt),
	)
	return err
}

// querier abstracts *sql.Tx and *sql.DB for reads.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

// fetchElements runs a filtered elements query and hydrates the rows.
// Rows come back in document order (insertion order via rowid).
func fetchElements(q querier, where string, args ...any) ([]*types.Element, error) {
	rows, err := q.Query(
		"SELECT "+elementColumns+" FROM elements "+where+" ORDER BY rowid",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("fetching elements: %w", err)
	}
	defer rows.Close()

	var elements []*types.Element
	for rows.Next() {
		elem, err := hydrateElement(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating element row: %w", err)
		}
		elements = append(elements, elem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating element rows: %w", err)
	}
	return elements, nil
}

// hydrateElement scans an elements row into an Element.
func hydrateElement(s scanner) (*types.Element, error) {
	var e types.Element
	var parentID sql.NullString
	var properties, createdAt, updatedAt string
	var length, width, height, thickness, area, volume sql.NullFloat64

	if err := s.Scan(
		&e.ModelID, &e.ElementID, &e.Name, &e.Type, &e.Material, &parentID,
		&properties, &length, &width, &height, &thickness, &area, &volume,
		&createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}

	e.ParentID = parentID.String
	e.Geometry = types.Geometry{
		Length:    floatPtr(length),
		Width:     floatPtr(width),
		Height:    floatPtr(height),
		Thickness: floatPtr(thickness),
		Area:      floatPtr(area),
		Volume:    floatPtr(volume),
	}

	var err error
	if e.Properties, err = decodeMap(properties); err != nil {
		return nil, err
	}
	if e.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
