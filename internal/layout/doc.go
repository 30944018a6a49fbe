// Package layout reads the YAML files that describe, per entity type, the
// ordered columns of a flat file. The generator turns each entity into
// ahead-of-time populate and extract functions.
//
// # Schema Overview
//
//	version: "1"
//	package: flatbind/store        # import path of the entity package
//	output: store_binding.go       # optional output file name
//	entities:
//	  - type: StockLine
//	    populate: PopulateStockLine # optional, defaults to Populate<Type>
//	    extract: ExtractStockLine   # optional, defaults to Extract<Type>
//	    columns:
//	      - SKU                    # shorthand for {field: ID}
//	      - field: Quantity
//	        name: qty              # column name, defaults to the field name
//	      - ignore: true           # placeholder column without a field
//	        name: filler
//	      - "-"                    # shorthand for an unnamed ignored column
//
// Column order in the file is the order of the list. Only columns with a
// field take a slot in the value array.
package layout
