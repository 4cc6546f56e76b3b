// Row codec helpers shared by the models and elements tables.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeFormat is the timestamp encoding for TEXT columns.
const timeFormat = time.RFC3339Nano

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// encodeTime formats a timestamp for storage.
func encodeTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

// decodeTime parses a stored timestamp.
func decodeTime(s string) (time.Time, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// encodeMap serializes a map column. Nil maps encode as the empty object
// so columns stay NOT NULL.
func encodeMap(m map[string]any) (string, error) {
	if m == nil {
		m = map[string]any{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshaling map column: %w", err)
	}
	return string(data), nil
}

// decodeMap deserializes a map column.
func decodeMap(s string) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("unmarshaling map column: %w", err)
	}
	return m, nil
}

// nullFloat converts an optional measure to its SQL value.
func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

// floatPtr converts a SQL value back to an optional measure.
func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
