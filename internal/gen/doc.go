// Package gen writes ahead-of-time binding code for resolved layouts.
//
// Generation uses text/template + go/format. For each entity it emits a
// populate function and an extract function with the same behaviour as the
// binders built at run time by package binder:
//   - exact primitive fields are stored after a type assertion
//   - pointers to exact primitives accept nil or the element type
//   - any other value goes through binder.Assign, which applies the shared
//     assignment rules and reports a TypeMismatchError
package gen
