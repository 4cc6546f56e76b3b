package analysis

import (
	"github.com/Reazonay/ArchitechLens/pkg/types"
)

// Filter narrows an element set step by step. Each method returns a new
// Filter over the matching elements, so calls chain:
//
//	walls := analysis.NewFilter(m.Elements).ByType(types.TypeWall).ByMaterial(types.MaterialConcrete).Elements()
type Filter struct {
	elements []*types.Element
}

// NewFilter returns a filter over the given elements.
func NewFilter(elements []*types.Element) *Filter {
	return &Filter{elements: elements}
}

// Elements returns the current element set.
func (f *Filter) Elements() []*types.Element {
	return f.elements
}

// Len returns the size of the current element set.
func (f *Filter) Len() int {
	return len(f.elements)
}

// ByType keeps elements of the given type. The value is normalized, so
// "wall" and "WALL" match the same elements; an unrecognized type matches
// nothing.
func (f *Filter) ByType(elementType string) *Filter {
	t, err := types.NormalizeElementType(elementType)
	if err != nil {
		return &Filter{}
	}
	var out []*types.Element
	for _, e := range f.elements {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return &Filter{elements: out}
}

// ByMaterial keeps elements of the given material, normalized like ByType.
func (f *Filter) ByMaterial(material string) *Filter {
	m, err := types.NormalizeMaterial(material)
	if err != nil {
		return &Filter{}
	}
	var out []*types.Element
	for _, e := range f.elements {
		if e.Material == m {
			out = append(out, e)
		}
	}
	return &Filter{elements: out}
}

// ByProperty keeps elements whose property key equals value. Numeric
// values match by magnitude, so a float64 decoded from JSON matches an
// int decoded from YAML.
func (f *Filter) ByProperty(key string, value any) *Filter {
	var out []*types.Element
	for _, e := range f.elements {
		if v, ok := e.Properties[key]; ok && propertyEqual(v, value) {
			out = append(out, e)
		}
	}
	return &Filter{elements: out}
}

func propertyEqual(a, b any) bool {
	if a == b {
		return true
	}
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	return aok && bok && af == bf
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// ByGeometryRange keeps elements whose named measure lies in [min, max].
// Nil bounds are open. Elements without the measure are excluded.
// Returns ErrInvalidMeasure for measure names outside StandardMeasures.
func (f *Filter) ByGeometryRange(measure string, min, max *float64) (*Filter, error) {
	// Validate the measure name once up front.
	if _, _, err := (&types.Geometry{}).Measure(measure); err != nil {
		return nil, err
	}
	var out []*types.Element
	for _, e := range f.elements {
		v, ok, _ := e.Geometry.Measure(measure)
		if !ok {
			continue
		}
		if min != nil && v < *min {
			continue
		}
		if max != nil && v > *max {
			continue
		}
		out = append(out, e)
	}
	return &Filter{elements: out}, nil
}
