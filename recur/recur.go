// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package recur expands caltext values that denote recurring dates, such
// as 'Jan/Mon[2]' or 'Feb/last', into the dates they denote using RFC 5545
// recurrence rules, and renders them as iCalendar documents.
package recur

import (
	"fmt"
	"time"

	"cloudeng.io/caltext"
	"cloudeng.io/errors"
	"github.com/teambition/rrule-go"
)

// ErrNotRecurring is returned for values, such as durations and time
// points, that do not denote a set of calendar dates.
var ErrNotRecurring = errors.New("value does not denote calendar dates")

// ErrInvalidValue is returned for values that are out of range, such as
// a Weekday of 7.
var ErrInvalidValue = errors.New("invalid value")

var weekdays = [...]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

func weekday(wd caltext.Weekday, n int) rrule.Weekday {
	rwd := weekdays[wd]
	if n == 0 {
		return rwd
	}
	return rwd.Nth(n)
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// withinYear restricts opts to the specified year.
func withinYear(opts rrule.ROption, year int) rrule.ROption {
	opts.Dtstart = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	opts.Until = time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return opts
}

// yearScoped returns true for values that denote at most one date.
func yearScoped(v caltext.Value) bool {
	switch v.(type) {
	case caltext.YearMonth, caltext.YearMonthDay, caltext.YearMonthDayLast,
		caltext.YearMonthWeekday, caltext.YearMonthWeekdayLast:
		return true
	}
	return false
}

func options(v caltext.Value, dtstart time.Time) (rrule.ROption, error) {
	opts := rrule.ROption{Dtstart: midnight(dtstart)}
	switch v := v.(type) {
	case caltext.Weekday:
		opts.Freq = rrule.WEEKLY
		opts.Byweekday = []rrule.Weekday{weekday(v, 0)}
	case caltext.Month:
		opts.Freq = rrule.YEARLY
		opts.Bymonth = []int{int(v)}
		opts.Bymonthday = []int{1}
	case caltext.WeekdayIndexed:
		opts.Freq = rrule.MONTHLY
		opts.Byweekday = []rrule.Weekday{weekday(v.Weekday, v.Index)}
	case caltext.WeekdayLast:
		opts.Freq = rrule.MONTHLY
		opts.Byweekday = []rrule.Weekday{weekday(v.Weekday, -1)}
	case caltext.MonthDay:
		opts.Freq = rrule.YEARLY
		opts.Bymonth = []int{int(v.Month)}
		opts.Bymonthday = []int{v.Day}
	case caltext.MonthDayLast:
		opts.Freq = rrule.YEARLY
		opts.Bymonth = []int{int(v.Month)}
		opts.Bymonthday = []int{-1}
	case caltext.MonthWeekday:
		opts.Freq = rrule.YEARLY
		opts.Bymonth = []int{int(v.Month)}
		opts.Byweekday = []rrule.Weekday{weekday(v.Weekday, v.Index)}
	case caltext.MonthWeekdayLast:
		opts.Freq = rrule.YEARLY
		opts.Bymonth = []int{int(v.Month)}
		opts.Byweekday = []rrule.Weekday{weekday(v.Weekday, -1)}
	case caltext.YearMonth:
		o, err := options(v.Month, dtstart)
		return withinYear(o, v.Year), err
	case caltext.YearMonthDay:
		o, err := options(caltext.MonthDay{Month: v.Month, Day: v.Day}, dtstart)
		return withinYear(o, v.Year), err
	case caltext.YearMonthDayLast:
		o, err := options(v.MonthDayLast, dtstart)
		return withinYear(o, v.Year), err
	case caltext.YearMonthWeekday:
		o, err := options(v.MonthWeekday, dtstart)
		return withinYear(o, v.Year), err
	case caltext.YearMonthWeekdayLast:
		o, err := options(v.MonthWeekdayLast, dtstart)
		return withinYear(o, v.Year), err
	default:
		return opts, fmt.Errorf("%v: %w", v.Kind(), ErrNotRecurring)
	}
	return opts, nil
}

// RRule returns the recurrence rule for the dates denoted by v starting
// on the day of dtstart. Values that are scoped to a year, such as
// '2024/Jan/Mon[2]', yield rules that are limited to that year and
// ignore dtstart.
func RRule(v caltext.Value, dtstart time.Time) (*rrule.RRule, error) {
	text := v.String()
	if p, err := caltext.Parse(v.Kind(), text); err != nil || p.String() != text {
		return nil, fmt.Errorf("%v %q: %w", v.Kind(), text, ErrInvalidValue)
	}
	opts, err := options(v, dtstart)
	if err != nil {
		return nil, err
	}
	return rrule.NewRRule(opts)
}

// Occurrences returns the dates denoted by v between from and to
// inclusive.
func Occurrences(v caltext.Value, from, to time.Time) ([]caltext.YearMonthDay, error) {
	r, err := RRule(v, from)
	if err != nil {
		return nil, err
	}
	times := r.Between(midnight(from), midnight(to), true)
	dates := make([]caltext.YearMonthDay, len(times))
	for i, t := range times {
		dates[i] = caltext.YearMonthDay{Year: t.Year(), Month: caltext.Month(t.Month()), Day: t.Day()}
	}
	return dates, nil
}
