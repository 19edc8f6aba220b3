// Package maskconfig loads named mask definitions from JSON or YAML documents
// so form definitions can reference masks by name instead of repeating
// patterns inline. Every definition is validated by building an engine while
// loading; a Store hands out a fresh engine per field.
package maskconfig
