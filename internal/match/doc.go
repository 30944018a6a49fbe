// Package match finds the closest known identifier for a misspelled one.
//
// It backs the "did you mean" hints attached to unknown-field errors, both when
// mappings are declared in Go and when layout files name entity fields.
package match
