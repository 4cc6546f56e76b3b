package types

// Geometry holds the geometric measures of an element. All fields are
// optional: a nil pointer means the measure is unknown, which is distinct
// from a zero value. Lengths are meters, areas m², volumes m³.
type Geometry struct {
	Length    *float64 `json:"length,omitempty" yaml:"length,omitempty"`
	Width     *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height    *float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Thickness *float64 `json:"thickness,omitempty" yaml:"thickness,omitempty"`
	Area      *float64 `json:"area,omitempty" yaml:"area,omitempty"`
	Volume    *float64 `json:"volume,omitempty" yaml:"volume,omitempty"`
}

// Geometric measure names accepted by Measure and the range filter.
const (
	MeasureLength    = "length"
	MeasureWidth     = "width"
	MeasureHeight    = "height"
	MeasureThickness = "thickness"
	MeasureArea      = "area"
	MeasureVolume    = "volume"
)

// StandardMeasures lists all measure names for enumeration.
var StandardMeasures = []string{
	MeasureLength, MeasureWidth, MeasureHeight,
	MeasureThickness, MeasureArea, MeasureVolume,
}

// Derive fills in measures that can be computed from the ones present.
// Area is derived from Length×Width; Volume from Area×Height, falling back
// to Length×Width×Thickness. Measures already set are never overwritten.
func (g *Geometry) Derive() {
	if g.Area == nil && g.Length != nil && g.Width != nil {
		a := *g.Length * *g.Width
		g.Area = &a
	}
	if g.Volume == nil {
		switch {
		case g.Area != nil && g.Height != nil:
			v := *g.Area * *g.Height
			g.Volume = &v
		case g.Length != nil && g.Width != nil && g.Thickness != nil:
			v := *g.Length * *g.Width * *g.Thickness
			g.Volume = &v
		}
	}
}

// Measure returns the named measure and whether it is set.
// Returns ErrInvalidMeasure for names outside StandardMeasures.
func (g *Geometry) Measure(name string) (float64, bool, error) {
	var p *float64
	switch name {
	case MeasureLength:
		p = g.Length
	case MeasureWidth:
		p = g.Width
	case MeasureHeight:
		p = g.Height
	case MeasureThickness:
		p = g.Thickness
	case MeasureArea:
		p = g.Area
	case MeasureVolume:
		p = g.Volume
	default:
		return 0, false, ErrInvalidMeasure
	}
	if p == nil {
		return 0, false, nil
	}
	return *p, true, nil
}

// Float returns a pointer to v. Convenience for building Geometry literals.
func Float(v float64) *float64 {
	return &v
}
