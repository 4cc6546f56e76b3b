// Package analysis computes aggregate statistics over architectural models
// and filters element sets by type, material, property, and geometry.
package analysis

import (
	"go.uber.org/zap"

	"github.com/Reazonay/ArchitechLens/pkg/types"
)

// Analyzer computes aggregations over a single model.
type Analyzer struct {
	model *types.Model
	log   *zap.Logger
}

// NewAnalyzer returns an analyzer for the given model.
func NewAnalyzer(model *types.Model, log *zap.Logger) *Analyzer {
	return &Analyzer{model: model, log: log}
}

// Summary bundles the standard aggregations for reporting.
type Summary struct {
	ModelName        string
	ModelVersion     string
	ModelDate        string
	TotalElements    int
	CountByType      map[string]int
	AreaByType       map[string]float64
	VolumeByMaterial map[string]float64
}

// Summarize computes all standard aggregations for the model.
func (a *Analyzer) Summarize() *Summary {
	return &Summary{
		ModelName:        a.model.Name,
		ModelVersion:     a.model.Version,
		ModelDate:        a.model.Date,
		TotalElements:    len(a.model.Elements),
		CountByType:      a.CountByType(),
		AreaByType:       a.TotalAreaByType(),
		VolumeByMaterial: a.TotalVolumeByMaterial(),
	}
}

// TotalAreaByType sums element areas grouped by element type. Elements
// without a defined area are excluded from the sums.
func (a *Analyzer) TotalAreaByType() map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range a.model.Elements {
		if e.Geometry.Area == nil {
			a.log.Debug("element has no defined area",
				zap.String("element_id", e.ElementID),
				zap.String("type", e.Type))
			continue
		}
		totals[e.Type] += *e.Geometry.Area
	}
	return totals
}

// TotalVolumeByMaterial sums element volumes grouped by material. Elements
// without a defined volume are excluded from the sums.
func (a *Analyzer) TotalVolumeByMaterial() map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range a.model.Elements {
		if e.Geometry.Volume == nil {
			a.log.Debug("element has no defined volume",
				zap.String("element_id", e.ElementID),
				zap.String("material", e.Material))
			continue
		}
		totals[e.Material] += *e.Geometry.Volume
	}
	return totals
}

// CountByType counts elements grouped by element type.
func (a *Analyzer) CountByType() map[string]int {
	counts := make(map[string]int)
	for _, e := range a.model.Elements {
		counts[e.Type]++
	}
	return counts
}

// ElementsWithProperty returns all elements carrying the given property key.
func (a *Analyzer) ElementsWithProperty(key string) []*types.Element {
	var out []*types.Element
	for _, e := range a.model.Elements {
		if e.HasProperty(key) {
			out = append(out, e)
		}
	}
	return out
}
