// Package taskdef owns the boundary between this engine and externally
// supplied container task configurations. It contains pure functions for
// parsing the ECS-style task shape from JSON, validating its structure,
// substituting resolved-name placeholders inside environment variable
// values, and deriving a task shape from a docker-compose document.
//
// Validation fails fast with a ShapeError naming the offending service,
// container or field; nothing is ever emitted half-validated.
package taskdef
