package binder

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/sirupsen/logrus"

	"flatbind/mapping"
)

// PopulateFunc assigns values to the bound members of entity, in mapping order.
type PopulateFunc[T any] func(entity *T, values []any) error

// ExtractFunc reads the bound members of entity into a new value array.
type ExtractFunc[T any] func(entity *T) []any

// Strategy selects how populate and extract functions are built.
type Strategy int

const (
	StrategyCompiled Strategy = iota
	StrategyReflective
)

func (s Strategy) String() string {
	switch s {
	case StrategyCompiled:
		return "compiled"
	case StrategyReflective:
		return "reflective"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Binder bundles the populate and extract functions of one entity type.
type Binder[T any] struct {
	Populate PopulateFunc[T]
	Extract  ExtractFunc[T]

	strategy Strategy
	columns  []string
	bound    int
}

// New builds a Binder for T with the given strategy.
func New[T any](mappings []mapping.PropertyMapping, strategy Strategy) (*Binder[T], error) {
	var (
		populate PopulateFunc[T]
		extract  ExtractFunc[T]
		err      error
	)

	switch strategy {
	case StrategyCompiled:
		if populate, err = CompilePopulate[T](mappings); err == nil {
			extract, err = CompileExtract[T](mappings)
		}
	case StrategyReflective:
		if populate, err = ReflectPopulate[T](mappings); err == nil {
			extract, err = ReflectExtract[T](mappings)
		}
	default:
		err = fmt.Errorf("binder: unknown strategy %v", strategy)
	}

	if err != nil {
		return nil, err
	}

	b := &Binder[T]{
		Populate: populate,
		Extract:  extract,
		strategy: strategy,
		columns:  mapping.ColumnNames(mappings),
		bound:    mapping.BoundCount(mappings),
	}

	logrus.WithFields(logrus.Fields{
		"entity":   reflect.TypeFor[T]().String(),
		"strategy": strategy.String(),
		"columns":  len(b.columns),
		"bound":    b.bound,
	}).Debug("binder built")

	return b, nil
}

// ColumnNames lists all columns in file order, ignored ones included.
func (b *Binder[T]) ColumnNames() []string {
	return slices.Clone(b.columns)
}

// BoundCount is the length of the value arrays exchanged by Populate and Extract.
func (b *Binder[T]) BoundCount() int {
	return b.bound
}

func (b *Binder[T]) Strategy() Strategy {
	return b.strategy
}

// boundMember is a mapping that owns a value slot.
type boundMember struct {
	column string
	member mapping.Member
}

// bind validates mappings against T and returns the bound members in order.
func bind[T any](mappings []mapping.PropertyMapping) ([]boundMember, error) {
	owner := reflect.TypeFor[T]()
	if owner.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, owner)
	}

	bound := make([]boundMember, 0, len(mappings))
	for i, m := range mappings {
		def := m.ColumnDefinition()
		if def == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilColumn, i)
		}

		member, ok := m.Member()
		if !ok {
			continue
		}

		if err := checkMember(owner, member); err != nil {
			return nil, fmt.Errorf("column %q: %w", def.ColumnName(), err)
		}

		bound = append(bound, boundMember{column: def.ColumnName(), member: member})
	}

	return bound, nil
}

// checkMember makes sure member describes a field of owner exactly as FieldOf would.
func checkMember(owner reflect.Type, member mapping.Member) error {
	if member.Owner != owner {
		return fmt.Errorf("%w: %s is not a field of %s", ErrOwnerMismatch, member, owner)
	}

	resolved, err := mapping.FieldOf(owner, member.Name)
	if err != nil {
		return err
	}

	if resolved.Type != member.Type || resolved.Offset != member.Offset || !slices.Equal(resolved.Index, member.Index) {
		return fmt.Errorf("%w: %s does not match the declared field", ErrOwnerMismatch, member)
	}

	return nil
}
