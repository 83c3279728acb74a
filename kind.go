// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caltext

import (
	"fmt"
	"slices"
	"time"

	"cloudeng.io/errors"
)

// Kind identifies one of the value types supported by this package.
type Kind string

const (
	KindDuration             Kind = "duration"
	KindDate                 Kind = "date"
	KindDateTime             Kind = "datetime"
	KindWeekday              Kind = "weekday"
	KindMonth                Kind = "month"
	KindWeekdayIndexed       Kind = "weekday-indexed"
	KindWeekdayLast          Kind = "weekday-last"
	KindMonthDay             Kind = "month-day"
	KindMonthDayLast         Kind = "month-day-last"
	KindMonthWeekday         Kind = "month-weekday"
	KindMonthWeekdayLast     Kind = "month-weekday-last"
	KindYearMonth            Kind = "year-month"
	KindYearMonthDay         Kind = "year-month-day"
	KindYearMonthDayLast     Kind = "year-month-day-last"
	KindYearMonthWeekday     Kind = "year-month-weekday"
	KindYearMonthWeekdayLast Kind = "year-month-weekday-last"
)

// Value is implemented by all of the value types in this package. String
// returns the encoding accepted by the parser for Kind.
type Value interface {
	Kind() Kind
	String() string
}

// DurationValue is a time.Duration that implements Value.
type DurationValue time.Duration

func (d DurationValue) String() string {
	return FormatDuration(time.Duration(d))
}

// Kind implements Value.
func (DurationValue) Kind() Kind { return KindDuration }

// Kind implements Value.
func (tp TimePoint) Kind() Kind {
	if tp.Resolution.SubDay() {
		return KindDateTime
	}
	return KindDate
}

// Kind implements Value.
func (Weekday) Kind() Kind { return KindWeekday }

// Kind implements Value.
func (Month) Kind() Kind { return KindMonth }

// Kind implements Value.
func (WeekdayIndexed) Kind() Kind { return KindWeekdayIndexed }

// Kind implements Value.
func (WeekdayLast) Kind() Kind { return KindWeekdayLast }

// Kind implements Value.
func (MonthDay) Kind() Kind { return KindMonthDay }

// Kind implements Value.
func (MonthDayLast) Kind() Kind { return KindMonthDayLast }

// Kind implements Value.
func (MonthWeekday) Kind() Kind { return KindMonthWeekday }

// Kind implements Value.
func (MonthWeekdayLast) Kind() Kind { return KindMonthWeekdayLast }

// Kind implements Value.
func (YearMonth) Kind() Kind { return KindYearMonth }

// Kind implements Value.
func (YearMonthDay) Kind() Kind { return KindYearMonthDay }

// Kind implements Value.
func (YearMonthDayLast) Kind() Kind { return KindYearMonthDayLast }

// Kind implements Value.
func (YearMonthWeekday) Kind() Kind { return KindYearMonthWeekday }

// Kind implements Value.
func (YearMonthWeekdayLast) Kind() Kind { return KindYearMonthWeekdayLast }

type parser func(string) (Value, error)

func asValue[T Value](fn func(string) (T, error)) parser {
	return func(s string) (Value, error) {
		v, err := fn(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

var parsers = map[Kind]parser{
	KindDuration: func(s string) (Value, error) {
		d, err := ParseDuration(s)
		if err != nil {
			return nil, err
		}
		return DurationValue(d), nil
	},
	KindDate: func(s string) (Value, error) {
		tp, err := ParseTimePoint(s, ResolutionDay)
		if err != nil {
			return nil, err
		}
		return tp, nil
	},
	KindDateTime: func(s string) (Value, error) {
		res := ResolutionOf(s)
		if !res.SubDay() {
			res = ResolutionSecond
		}
		tp, err := ParseTimePoint(s, res)
		if err != nil {
			return nil, err
		}
		return tp, nil
	},
	KindWeekday:              asValue(ParseWeekday),
	KindMonth:                asValue(ParseMonth),
	KindWeekdayIndexed:       asValue(ParseWeekdayIndexed),
	KindWeekdayLast:          asValue(ParseWeekdayLast),
	KindMonthDay:             asValue(ParseMonthDay),
	KindMonthDayLast:         asValue(ParseMonthDayLast),
	KindMonthWeekday:         asValue(ParseMonthWeekday),
	KindMonthWeekdayLast:     asValue(ParseMonthWeekdayLast),
	KindYearMonth:            asValue(ParseYearMonth),
	KindYearMonthDay:         asValue(ParseYearMonthDay),
	KindYearMonthDayLast:     asValue(ParseYearMonthDayLast),
	KindYearMonthWeekday:     asValue(ParseYearMonthWeekday),
	KindYearMonthWeekdayLast: asValue(ParseYearMonthWeekdayLast),
}

// ErrUnknownKind is returned for unsupported kinds.
var ErrUnknownKind = errors.New("unknown kind")

// Kinds returns all supported kinds in lexical order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(parsers))
	for k := range parsers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// ParseKind parses the name of a kind.
func ParseKind(s string) (Kind, error) {
	if _, ok := parsers[Kind(s)]; !ok {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownKind)
	}
	return Kind(s), nil
}

// Parse parses s as a value of the specified kind. Values of KindDate are
// returned as a TimePoint with day resolution and those of KindDateTime with
// the resolution implied by the number of fractional digits, if any.
func Parse(kind Kind, s string) (Value, error) {
	p, ok := parsers[kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	return p(s)
}

// ParseAll parses all of the supplied values as the specified kind. The
// returned slice contains nil for every value that failed to parse and
// the returned error, an errors.M, contains all of the parse errors.
func ParseAll(kind Kind, values ...string) ([]Value, error) {
	p, ok := parsers[kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	errs := &errors.M{}
	out := make([]Value, len(values))
	for i, s := range values {
		v, err := p(s)
		errs.Append(err)
		out[i] = v
	}
	return out, errs.Err()
}
