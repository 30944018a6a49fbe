// Package diagnostic collects the errors and warnings found while a layout
// file is checked and resolved against the entity types.
package diagnostic
