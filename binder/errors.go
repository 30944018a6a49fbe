package binder

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrTypeMismatch  = errors.New("binder: type mismatch")
	ErrNotStruct     = errors.New("binder: entity type is not a struct")
	ErrOwnerMismatch = errors.New("binder: member belongs to another entity type")
	ErrNilColumn     = errors.New("binder: mapping has no column definition")
)

// TypeMismatchError reports a value that cannot be stored in its member.
type TypeMismatchError struct {
	Column string
	Member string
	Want   reflect.Type
	Got    reflect.Type // nil for an untyped nil value
}

func (e *TypeMismatchError) Error() string {
	got := "nil"
	if e.Got != nil {
		got = e.Got.String()
	}

	return fmt.Sprintf("binder: column %q: cannot assign %s to %s (%s)", e.Column, got, e.Member, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
