// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package column

import (
	"database/sql/driver"
	"fmt"
	"time"

	"cloudeng.io/caltext"
)

// TimePoint stores a caltext.TimePoint in a TEXT column. Since a column
// may contain both dates and date-times the resolution of a scanned value
// is determined by the text itself: a date has day resolution, a date-time
// has second, millisecond, microsecond or nanosecond resolution according
// to the number of fractional digits.
//
// Drivers that return time.Time for DATE, DATETIME or TIMESTAMP columns are
// also supported, in which case the resolution of V is retained if it is
// finer than a day and otherwise inferred from the value.
type TimePoint struct {
	V caltext.TimePoint
}

// Scan implements sql.Scanner.
func (c *TimePoint) Scan(src any) error {
	if src == nil {
		return ErrNull
	}
	return scanTimePoint(&c.V, src)
}

// Value implements driver.Valuer.
func (c TimePoint) Value() (driver.Value, error) {
	return caltext.FormatTimePoint(c.V), nil
}

func (c TimePoint) String() string {
	return c.V.String()
}

// NullTimePoint is the nullable version of TimePoint.
type NullTimePoint struct {
	V     caltext.TimePoint
	Valid bool
}

// Scan implements sql.Scanner.
func (c *NullTimePoint) Scan(src any) error {
	if src == nil {
		c.V, c.Valid = caltext.TimePoint{}, false
		return nil
	}
	if err := scanTimePoint(&c.V, src); err != nil {
		c.Valid = false
		return err
	}
	c.Valid = true
	return nil
}

// Value implements driver.Valuer.
func (c NullTimePoint) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}
	return caltext.FormatTimePoint(c.V), nil
}

func scanTimePoint(dst *caltext.TimePoint, src any) error {
	var text string
	switch v := src.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	case time.Time:
		res := dst.Resolution
		if !res.SubDay() {
			res = timeResolution(v.UTC())
		}
		*dst = caltext.NewTimePoint(v, res)
		return nil
	default:
		return fmt.Errorf("column: cannot scan %T into %T", src, *dst)
	}
	tp, err := caltext.ParseTimePoint(text, caltext.ResolutionOf(text))
	if err != nil {
		return err
	}
	*dst = tp
	return nil
}

func timeResolution(t time.Time) caltext.Resolution {
	ns := t.Nanosecond()
	switch {
	case ns == 0 && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0:
		return caltext.ResolutionDay
	case ns == 0:
		return caltext.ResolutionSecond
	case ns%int(time.Millisecond) == 0:
		return caltext.ResolutionMillisecond
	case ns%int(time.Microsecond) == 0:
		return caltext.ResolutionMicrosecond
	}
	return caltext.ResolutionNanosecond
}
