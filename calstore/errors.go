// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calstore

import (
	"fmt"

	"cloudeng.io/errors"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a named value does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmptyName is returned when a value is stored without a name.
	ErrEmptyName = errors.New("empty name")
	// ErrInvalidValue is returned for values that have no valid encoding.
	ErrInvalidValue = errors.New("invalid value")
)

// QueryError is returned for all errors reported by the database and
// records the query that failed.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	if len(e.Query) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: query: %s", e.Err, e.Query)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func queryError(tx *gorm.DB) error {
	if tx.Error == nil {
		return nil
	}
	return &QueryError{Query: tx.Statement.SQL.String(), Err: tx.Error}
}
