// Package types defines the architectural model entities (Model, Element,
// Geometry), the element type and material vocabularies, the Store and
// Table interfaces for model persistence, and the standard error values
// shared across ArchitechLens.
package types
