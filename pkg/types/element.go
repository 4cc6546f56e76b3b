package types

import (
	"strings"
	"time"
)

// Element types. Every element in a model carries exactly one of these.
// Elements without a declared type default to TypeOther.
const (
	TypeBuilding = "BUILDING"
	TypeFloor    = "FLOOR"
	TypeSpace    = "SPACE"
	TypeWall     = "WALL"
	TypeColumn   = "COLUMN"
	TypeBeam     = "BEAM"
	TypeWindow   = "WINDOW"
	TypeDoor     = "DOOR"
	TypeSlab     = "SLAB"
	TypeRoof     = "ROOF"
	TypeOther    = "OTHER"
)

// Materials recognized for elements. Elements without a declared material
// default to MaterialOther.
const (
	MaterialConcrete   = "CONCRETE"
	MaterialSteel      = "STEEL"
	MaterialWood       = "WOOD"
	MaterialGlass      = "GLASS"
	MaterialBrick      = "BRICK"
	MaterialPlaster    = "PLASTER"
	MaterialInsulation = "INSULATION"
	MaterialAluminum   = "ALUMINUM"
	MaterialOther      = "OTHER"
)

// validElementTypes is the set of recognized element type values.
var validElementTypes = map[string]bool{
	TypeBuilding: true,
	TypeFloor:    true,
	TypeSpace:    true,
	TypeWall:     true,
	TypeColumn:   true,
	TypeBeam:     true,
	TypeWindow:   true,
	TypeDoor:     true,
	TypeSlab:     true,
	TypeRoof:     true,
	TypeOther:    true,
}

// validMaterials is the set of recognized material values.
var validMaterials = map[string]bool{
	MaterialConcrete:   true,
	MaterialSteel:      true,
	MaterialWood:       true,
	MaterialGlass:      true,
	MaterialBrick:      true,
	MaterialPlaster:    true,
	MaterialInsulation: true,
	MaterialAluminum:   true,
	MaterialOther:      true,
}

// StandardElementTypes lists all element type values for enumeration.
var StandardElementTypes = []string{
	TypeBuilding, TypeFloor, TypeSpace, TypeWall, TypeColumn,
	TypeBeam, TypeWindow, TypeDoor, TypeSlab, TypeRoof, TypeOther,
}

// StandardMaterials lists all material values for enumeration.
var StandardMaterials = []string{
	MaterialConcrete, MaterialSteel, MaterialWood, MaterialGlass,
	MaterialBrick, MaterialPlaster, MaterialInsulation,
	MaterialAluminum, MaterialOther,
}

// NormalizeElementType upper-cases and validates an element type value.
// The empty string normalizes to TypeOther; any other unrecognized value
// returns ErrInvalidElementType.
func NormalizeElementType(s string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	if t == "" {
		return TypeOther, nil
	}
	if !validElementTypes[t] {
		return "", ErrInvalidElementType
	}
	return t, nil
}

// NormalizeMaterial upper-cases and validates a material value. The empty
// string normalizes to MaterialOther; any other unrecognized value returns
// ErrInvalidMaterial.
func NormalizeMaterial(s string) (string, error) {
	m := strings.ToUpper(strings.TrimSpace(s))
	if m == "" {
		return MaterialOther, nil
	}
	if !validMaterials[m] {
		return "", ErrInvalidMaterial
	}
	return m, nil
}

// Element represents a single architectural element within a model: a wall,
// a floor, a window, and so on. Elements form a hierarchy through ParentID
// (a wall belongs to a floor, a window to a wall).
type Element struct {
	ElementID  string         // Stable identifier, unique within the model.
	ModelID    string         // Owning model; set by the store on save.
	Name       string         // Human-readable name; defaults to ElementID.
	Type       string         // One of the Type* constants.
	Material   string         // One of the Material* constants.
	Properties map[string]any // Free-form domain properties (fire rating, u-value, ...).
	Geometry   Geometry       // Geometric measures; absent values are nil.
	ParentID   string         // Enclosing element, empty for roots.
	CreatedAt  time.Time      // Set by the store on first save.
	UpdatedAt  time.Time      // Set by the store on every save.
}

// Validate checks that the element is well-formed: a non-empty ID and
// recognized type and material values. Normalized forms are written back.
func (e *Element) Validate() error {
	if e.ElementID == "" {
		return ErrInvalidID
	}
	t, err := NormalizeElementType(e.Type)
	if err != nil {
		return err
	}
	e.Type = t
	m, err := NormalizeMaterial(e.Material)
	if err != nil {
		return err
	}
	e.Material = m
	if e.Name == "" {
		e.Name = e.ElementID
	}
	return nil
}

// Property returns the value of a free-form property, or def when the key
// is absent.
func (e *Element) Property(key string, def any) any {
	if v, ok := e.Properties[key]; ok {
		return v
	}
	return def
}

// SetProperty sets a free-form property value, allocating the map on first
// use.
func (e *Element) SetProperty(key string, value any) {
	if e.Properties == nil {
		e.Properties = make(map[string]any)
	}
	e.Properties[key] = value
}

// HasProperty reports whether the element carries the given property key.
func (e *Element) HasProperty(key string) bool {
	_, ok := e.Properties[key]
	return ok
}
