// Package mapping pairs entity struct fields with column definitions.
//
// A mapping list is ordered: the position of a PropertyMapping is the position
// of its column in the file. Mappings backed by a struct field are "bound" and
// own a slot in the value array exchanged with the binder; ignored mappings only
// hold a place in the column order.
//
//	type Line struct {
//		Order uint32
//		Qty   *uint32
//	}
//
//	mappings := []mapping.PropertyMapping{
//		mapping.UInt32(mapping.MustField[Line]("Order")).ColumnName("order_no"),
//		mapping.Ignored().ColumnName("filler"),
//		mapping.UInt32(mapping.MustField[Line]("Qty")).NullValue("NULL"),
//	}
//
// The fluent configuration methods mutate the owned column definition in place.
// Configure mappings once, before a binder is built from them.
package mapping
