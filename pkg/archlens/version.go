// Package archlens holds project-level metadata shared by the CLI and
// library consumers.
package archlens

// Version is the ArchitechLens release version.
const Version = "0.1.0"
