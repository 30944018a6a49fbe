// Package binder moves values between entity structs and positional value arrays.
//
// Given the ordered mappings of an entity type, the package builds two functions:
//
//   - populate(entity, values) assigns values[k] to the k-th bound member
//   - extract(entity) returns the bound members' values in the same order
//
// Ignored mappings are skipped by both and take no slot in the value array.
//
// Two strategies produce these functions. The compiled strategy resolves field
// offsets once and picks a typed accessor per member, so exact primitive fields
// are read and written without reflection on every record. The reflective
// strategy walks the mappings with reflect on every call. Both follow the same
// assignment rules:
//
//   - nil is stored as the zero value of pointer, interface, slice, map, func and
//     chan members; for other members it is a type mismatch
//   - a value whose dynamic type is assignable to the member type is stored as is
//   - a value assignable to the element type of a pointer member is stored in a
//     newly allocated pointer
//   - anything else fails with a *TypeMismatchError
//
// Extract unwraps pointers to primitive values: a nil pointer becomes nil and a
// non-nil one becomes the pointed-to value, so extract followed by populate
// reproduces the member values.
//
// The value array passed to populate must have one entry per bound mapping.
// A shorter array panics with an index out of range error on both strategies.
//
// Built functions keep no mutable state and may be called concurrently on
// distinct entities. Mappings must not be reconfigured after a build.
package binder
