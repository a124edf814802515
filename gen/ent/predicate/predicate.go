// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractJob is the predicate function for extractjob builders.
type ExtractJob func(*sql.Selector)

// Lease is the predicate function for lease builders.
type Lease func(*sql.Selector)

// LeaseFile is the predicate function for leasefile builders.
type LeaseFile func(*sql.Selector)

// Portfolio is the predicate function for portfolio builders.
type Portfolio func(*sql.Selector)
