// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package column provides database/sql Scanner and Valuer implementations
// that store caltext values in TEXT columns using their caltext encodings.
//
// Text and Null are generic over any value type whose pointer implements
// encoding.TextMarshaler and encoding.TextUnmarshaler, which includes every
// caltext value type. Aliases are provided for the common instantiations.
package column

import (
	"database/sql/driver"
	"encoding"
	"fmt"

	"cloudeng.io/caltext"
	"cloudeng.io/errors"
)

// ErrNull is returned when a NULL is scanned into a non-nullable column.
var ErrNull = errors.New("column: NULL scanned into non-nullable column")

// Codec is the constraint satisfied by pointers to caltext values.
type Codec[T any] interface {
	*T
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

// Text stores V in a TEXT column using its text encoding.
type Text[T any, PT Codec[T]] struct {
	V T
}

// NewText returns a Text for v.
func NewText[T any, PT Codec[T]](v T) Text[T, PT] {
	return Text[T, PT]{V: v}
}

// Scan implements sql.Scanner. It accepts string and []byte sources.
func (c *Text[T, PT]) Scan(src any) error {
	if src == nil {
		return ErrNull
	}
	return scanText[T, PT](&c.V, src)
}

// Value implements driver.Valuer.
func (c Text[T, PT]) Value() (driver.Value, error) {
	return valueText[T, PT](&c.V)
}

func (c Text[T, PT]) String() string {
	buf, err := PT(&c.V).MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(buf)
}

// Null is the nullable version of Text, Valid is false for NULL.
type Null[T any, PT Codec[T]] struct {
	V     T
	Valid bool
}

// NewNull returns a valid Null for v.
func NewNull[T any, PT Codec[T]](v T) Null[T, PT] {
	return Null[T, PT]{V: v, Valid: true}
}

// Scan implements sql.Scanner.
func (c *Null[T, PT]) Scan(src any) error {
	if src == nil {
		var zero T
		c.V, c.Valid = zero, false
		return nil
	}
	if err := scanText[T, PT](&c.V, src); err != nil {
		c.Valid = false
		return err
	}
	c.Valid = true
	return nil
}

// Value implements driver.Valuer.
func (c Null[T, PT]) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}
	return valueText[T, PT](&c.V)
}

func scanText[T any, PT Codec[T]](dst *T, src any) error {
	switch v := src.(type) {
	case string:
		return PT(dst).UnmarshalText([]byte(v))
	case []byte:
		return PT(dst).UnmarshalText(v)
	}
	return fmt.Errorf("column: cannot scan %T into %T", src, *dst)
}

func valueText[T any, PT Codec[T]](v *T) (driver.Value, error) {
	buf, err := PT(v).MarshalText()
	if err != nil {
		return nil, err
	}
	return string(buf), nil
}

type (
	Duration             = Text[caltext.DurationValue, *caltext.DurationValue]
	Weekday              = Text[caltext.Weekday, *caltext.Weekday]
	Month                = Text[caltext.Month, *caltext.Month]
	WeekdayIndexed       = Text[caltext.WeekdayIndexed, *caltext.WeekdayIndexed]
	WeekdayLast          = Text[caltext.WeekdayLast, *caltext.WeekdayLast]
	MonthDay             = Text[caltext.MonthDay, *caltext.MonthDay]
	MonthDayLast         = Text[caltext.MonthDayLast, *caltext.MonthDayLast]
	MonthWeekday         = Text[caltext.MonthWeekday, *caltext.MonthWeekday]
	MonthWeekdayLast     = Text[caltext.MonthWeekdayLast, *caltext.MonthWeekdayLast]
	YearMonth            = Text[caltext.YearMonth, *caltext.YearMonth]
	YearMonthDay         = Text[caltext.YearMonthDay, *caltext.YearMonthDay]
	YearMonthDayLast     = Text[caltext.YearMonthDayLast, *caltext.YearMonthDayLast]
	YearMonthWeekday     = Text[caltext.YearMonthWeekday, *caltext.YearMonthWeekday]
	YearMonthWeekdayLast = Text[caltext.YearMonthWeekdayLast, *caltext.YearMonthWeekdayLast]

	NullDuration     = Null[caltext.DurationValue, *caltext.DurationValue]
	NullWeekday      = Null[caltext.Weekday, *caltext.Weekday]
	NullMonth        = Null[caltext.Month, *caltext.Month]
	NullYearMonthDay = Null[caltext.YearMonthDay, *caltext.YearMonthDay]
)
