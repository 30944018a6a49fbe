// Package storebind holds the generated bindings of the store entities.
package storebind

//go:generate go run flatbind/cmd/flatbind-gen --layout ../testdata/stock.yaml --layout ../testdata/supplier.yaml --out . --package storebind --package-path flatbind/store/storebind
