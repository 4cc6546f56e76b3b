// Document structures shared by the JSON and YAML loaders. These mirror
// the on-disk model format; conversion to types.Model applies validation,
// defaults, and geometry derivation.
package loader

import (
	"go.uber.org/zap"

	"github.com/Reazonay/ArchitechLens/pkg/types"
)

// modelDocument is the top-level document shape.
type modelDocument struct {
	Metadata map[string]any    `json:"metadata" yaml:"metadata"`
	Elements []elementDocument `json:"elements" yaml:"elements"`
}

// elementDocument is one element record in a document.
type elementDocument struct {
	ID         string         `json:"id" yaml:"id"`
	Name       string         `json:"name" yaml:"name"`
	Type       string         `json:"type" yaml:"type"`
	Material   string         `json:"material" yaml:"material"`
	Properties map[string]any `json:"properties" yaml:"properties"`
	Geometry   types.Geometry `json:"geometry" yaml:"geometry"`
	ParentID   string         `json:"parent_id" yaml:"parent_id"`
}

// metadataString pulls a string field out of document metadata.
func metadataString(meta map[string]any, key string) string {
	if v, ok := meta[key].(string); ok {
		return v
	}
	return ""
}

// toModel converts a parsed document into a Model. Elements that fail
// validation or repeat an ID are skipped with a warning; the rest of the
// model loads normally. Metadata keys name/version/date are lifted into
// the model fields and the full map is retained.
func (d *modelDocument) toModel(log *zap.Logger) *types.Model {
	model := &types.Model{
		Name:     metadataString(d.Metadata, "name"),
		Version:  metadataString(d.Metadata, "version"),
		Date:     metadataString(d.Metadata, "date"),
		Metadata: d.Metadata,
	}
	if model.Name == "" {
		model.Name = types.DefaultModelName
	}
	if model.Version == "" {
		model.Version = types.DefaultModelVersion
	}
	if model.Date == "" {
		model.Date = types.DefaultModelDate
	}

	seen := make(map[string]bool, len(d.Elements))
	for _, ed := range d.Elements {
		elem := &types.Element{
			ElementID:  ed.ID,
			Name:       ed.Name,
			Type:       ed.Type,
			Material:   ed.Material,
			Properties: ed.Properties,
			Geometry:   ed.Geometry,
			ParentID:   ed.ParentID,
		}
		if err := elem.Validate(); err != nil {
			log.Warn("skipping element",
				zap.String("element_id", ed.ID),
				zap.String("type", ed.Type),
				zap.Error(err))
			continue
		}
		if seen[elem.ElementID] {
			log.Warn("skipping duplicate element",
				zap.String("element_id", elem.ElementID))
			continue
		}
		seen[elem.ElementID] = true

		elem.Geometry.Derive()
		model.AddElement(elem)
	}

	log.Info("model loaded",
		zap.String("name", model.Name),
		zap.Int("elements", len(model.Elements)),
		zap.Int("skipped", len(d.Elements)-len(model.Elements)))
	return model
}

// fromModel converts a Model back into the document shape for export.
func fromModel(m *types.Model) *modelDocument {
	meta := make(map[string]any, len(m.Metadata)+3)
	for k, v := range m.Metadata {
		meta[k] = v
	}
	meta["name"] = m.Name
	meta["version"] = m.Version
	meta["date"] = m.Date

	doc := &modelDocument{Metadata: meta}
	for _, e := range m.Elements {
		doc.Elements = append(doc.Elements, elementDocument{
			ID:         e.ElementID,
			Name:       e.Name,
			Type:       e.Type,
			Material:   e.Material,
			Properties: e.Properties,
			Geometry:   e.Geometry,
			ParentID:   e.ParentID,
		})
	}
	return doc
}
