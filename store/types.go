// Package store holds the flat-file record entities of a small inventory feed.
// The layouts under testdata bind them to column orders.
package store

import (
	"time"
)

// Status is the lifecycle state of a stock line.
type Status string

const (
	StatusActive       Status = "active"
	StatusDiscontinued Status = "discontinued"
)

// Audit carries bookkeeping columns shared by several records.
type Audit struct {
	UpdatedAt time.Time
	UpdatedBy string
}

// StockLine is one row of the nightly stock export.
type StockLine struct {
	Audit

	SKU      string
	Quantity uint32
	Reserved *uint32
	Status   Status
	Active   bool
	Note     *string
	TTL      time.Duration
	Tags     []string
	internal int
}

// Supplier is one row of the supplier master file.
type Supplier struct {
	*Audit

	Code   string
	Name   string
	Rating *float64
	Since  *time.Time
}
