// Package plan resolves a layout file against the loaded entity types and
// produces the Plan consumed by code generation.
//
// Resolution:
//  1. Validate the layout structure
//  2. Look up every entity type in the type graph
//  3. Resolve each column field (promoted fields included) and pick the
//     access shape the generator emits for it
//  4. Number the bound columns with their value array slots
//
// Problems are collected as diagnostics rather than returned one at a time,
// so a single run reports every broken column.
package plan
