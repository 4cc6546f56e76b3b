package types

import "time"

// Model represents an architectural model: metadata plus a flat list of
// elements. Hierarchy is expressed through Element.ParentID rather than
// nesting, so a model round-trips cleanly through documents and the store.
type Model struct {
	ModelID   string         // UUID v7, generated by the store on save.
	Name      string         // Model name from the source document.
	Version   string         // Source document version.
	Date      string         // Source document date, free-form.
	Metadata  map[string]any // Remaining document metadata.
	Elements  []*Element
	CreatedAt time.Time // Set by the store on first save.
	UpdatedAt time.Time // Set by the store on every save.
}

// Defaults applied when a source document omits metadata fields.
const (
	DefaultModelName    = "Unnamed Model"
	DefaultModelVersion = "1.0"
	DefaultModelDate    = "N/A"
)

// AddElement appends an element to the model.
func (m *Model) AddElement(e *Element) {
	m.Elements = append(m.Elements, e)
}

// ElementByID returns the element with the given ID, or nil when absent.
func (m *Model) ElementByID(id string) *Element {
	for _, e := range m.Elements {
		if e.ElementID == id {
			return e
		}
	}
	return nil
}

// Children returns the elements whose ParentID equals the given ID.
// The order of the model's element list is preserved.
func (m *Model) Children(parentID string) []*Element {
	var out []*Element
	for _, e := range m.Elements {
		if e.ParentID == parentID {
			out = append(out, e)
		}
	}
	return out
}

// Validate checks the model and all its elements. Element IDs must be
// unique within the model; duplicates return ErrDuplicateElement.
// Metadata defaults are applied to empty fields.
func (m *Model) Validate() error {
	if m.Name == "" {
		m.Name = DefaultModelName
	}
	if m.Version == "" {
		m.Version = DefaultModelVersion
	}
	if m.Date == "" {
		m.Date = DefaultModelDate
	}
	seen := make(map[string]bool, len(m.Elements))
	for _, e := range m.Elements {
		if err := e.Validate(); err != nil {
			return err
		}
		if seen[e.ElementID] {
			return ErrDuplicateElement
		}
		seen[e.ElementID] = true
	}
	return nil
}
