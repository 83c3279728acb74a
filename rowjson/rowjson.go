// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package rowjson converts the rows returned by a database query into
// a JSON array with one object per row, keyed by column name.
//
// NULL values are encoded as null, integers and reals as JSON numbers,
// text as strings and blobs as standard base64 strings. Dates and times
// returned by the driver as time.Time are encoded as caltext time points
// with second resolution. Object keys are written in sorted order so that
// the output for a given result set is stable.
package rowjson

import (
	"fmt"
	"io"
	"time"

	"cloudeng.io/caltext"
	"github.com/go-json-experiment/json"
)

// Rows is the subset of *sql.Rows used by this package.
type Rows interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// Object represents a single row.
type Object map[string]any

// Collect reads all of the remaining rows and returns them as Objects.
// Blobs are returned as []byte and are base64 encoded when marshaled.
func Collect(rows Rows) ([]Object, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	out := []Object{}
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		obj := make(Object, len(cols))
		for i, name := range cols {
			v, err := convert(vals[i])
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", name, err)
			}
			obj[name] = v
		}
		out = append(out, obj)
	}
	return out, rows.Err()
}

func convert(v any) (any, error) {
	switch v := v.(type) {
	case nil, string, bool, float64, int64:
		return v, nil
	case []byte:
		return append([]byte(nil), v...), nil
	case float32:
		return float64(v), nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case time.Time:
		return caltext.NewTimePoint(v, caltext.ResolutionSecond).String(), nil
	}
	return nil, fmt.Errorf("unsupported type %T", v)
}

// Encode returns the JSON encoding of all of the remaining rows.
func Encode(rows Rows) ([]byte, error) {
	objs, err := Collect(rows)
	if err != nil {
		return nil, err
	}
	return json.Marshal(objs, json.Deterministic(true))
}

// Write writes the JSON encoding of all of the remaining rows to w.
func Write(w io.Writer, rows Rows) error {
	objs, err := Collect(rows)
	if err != nil {
		return err
	}
	return json.MarshalWrite(w, objs, json.Deterministic(true))
}
