package binder_test

import (
	"time"

	"github.com/Pallinder/go-randomdata"

	"flatbind/binder"
	"flatbind/column"
	"flatbind/mapping"
)

var strategies = []binder.Strategy{binder.StrategyCompiled, binder.StrategyReflective}

type Status string

type Dimensions struct {
	Width  uint32
	Height uint32
}

type Item struct {
	Dimensions
	A       uint32
	C       uint32
	Qty     *uint32
	Name    string
	Active  bool
	Price   float64
	Due     time.Time
	Tags    []string
	Status  Status
	Prev    *Status
	Comment *string
	Extra   any
}

// valueMapping binds any member to a text column; the binder never looks past
// the column name.
type valueMapping struct {
	member mapping.Member
	column *column.StringColumn
}

func value(name string) *valueMapping {
	return &valueMapping{
		member: mapping.MustField[Item](name),
		column: column.NewStringColumn(name),
	}
}

func (m *valueMapping) Member() (mapping.Member, bool)      { return m.member, true }
func (m *valueMapping) ColumnDefinition() column.Definition { return m.column }

func ignored(name string) mapping.PropertyMapping {
	return mapping.Ignored().ColumnName(name)
}

// itemMappings binds every member of Item with a few ignored columns in between.
func itemMappings() []mapping.PropertyMapping {
	return []mapping.PropertyMapping{
		mapping.UInt32(mapping.MustField[Item]("A")),
		ignored("filler1"),
		mapping.UInt32(mapping.MustField[Item]("C")),
		mapping.UInt32(mapping.MustField[Item]("Qty")).NullValue("NULL"),
		mapping.UInt32(mapping.MustField[Item]("Width")),
		mapping.String(mapping.MustField[Item]("Name")),
		ignored("filler2"),
		mapping.Boolean(mapping.MustField[Item]("Active")),
		value("Price"),
		value("Due"),
		value("Tags"),
		value("Status"),
		value("Prev"),
		mapping.String(mapping.MustField[Item]("Comment")),
		value("Extra"),
		ignored("filler3"),
	}
}

func randomItem() Item {
	item := Item{
		Dimensions: Dimensions{Width: uint32(randomdata.Number(0, 1<<30)), Height: 7},
		A:          uint32(randomdata.Number(0, 1<<30)),
		C:          uint32(randomdata.Number(0, 1<<30)),
		Name:       randomdata.SillyName(),
		Active:     randomdata.Boolean(),
		Price:      float64(randomdata.Number(0, 100000)) / 100,
		Due:        time.Unix(int64(randomdata.Number(0, 1<<30)), 0).UTC(),
		Tags:       []string{randomdata.Noun(), randomdata.Adjective()},
		Status:     Status(randomdata.StringSample("open", "closed", "held")),
		Extra:      randomdata.Number(0, 100),
	}

	if randomdata.Boolean() {
		qty := uint32(randomdata.Number(0, 500))
		item.Qty = &qty
	}

	if randomdata.Boolean() {
		prev := Status(randomdata.StringSample("open", "closed"))
		item.Prev = &prev
	}

	if randomdata.Boolean() {
		comment := randomdata.Paragraph()
		item.Comment = &comment
	}

	return item
}

// boundOnly clears what itemMappings does not bind.
func boundOnly(item Item) Item {
	item.Height = 0
	return item
}
