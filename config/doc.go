// Package config loads and validates the router's tunable knobs: cell
// geometry, cost multipliers, the re-equilibration window, DRC reporting
// caps, and the concurrency settings the driver's worker pool reads.
//
// Config is unmarshaled from YAML via gopkg.in/yaml.v3 — the teacher's own
// choice of serialization format is Go-native struct tags and standard
// library encoding/json; this package follows the same field-tag
// convention but targets YAML, the format the rest of the pack (any repo
// shipping an operator-facing config file) consistently reaches for over
// hand-rolled flag parsing.
package config
