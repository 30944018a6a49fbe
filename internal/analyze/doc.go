// Package analyze loads entity packages and extracts their struct types.
//
// It uses golang.org/x/tools/go/packages with go/types so that the generator
// can see field types exactly as the compiler does.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: a struct type with its fields
//   - FieldInfo: field name, go/types type, export and embedding flags
package analyze
