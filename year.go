// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caltext

import (
	"fmt"
	"strings"
	"time"
)

// formatYear formats a year with at least four digits and a leading
// '-' for negative years.
func formatYear(y int) string {
	if y < 0 {
		return fmt.Sprintf("-%04d", -y)
	}
	return fmt.Sprintf("%04d", y)
}

// YearMonth represents a month in a specific year.
type YearMonth struct {
	Year  int
	Month Month
}

func (ym YearMonth) String() string {
	return formatYear(ym.Year) + "/" + ym.Month.String()
}

// YearMonthDay represents a calendar date.
type YearMonthDay struct {
	Year  int
	Month Month
	Day   int
}

// NewYearMonthDay returns the YearMonthDay for the specified year, month
// and day, or false if the month or day is out of range for that year.
func NewYearMonthDay(year int, month Month, day int) (YearMonthDay, bool) {
	if year < MinYear || year > MaxYear || !month.Valid() || day < 1 || day > month.daysIn(year) {
		return YearMonthDay{}, false
	}
	return YearMonthDay{Year: year, Month: month, Day: day}, true
}

func (ymd YearMonthDay) String() string {
	return fmt.Sprintf("%s-%02d-%02d", formatYear(ymd.Year), int(ymd.Month), ymd.Day)
}

// Time returns midnight UTC of the date.
func (ymd YearMonthDay) Time() time.Time {
	return time.Date(ymd.Year, time.Month(ymd.Month), ymd.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week of the date.
func (ymd YearMonthDay) Weekday() Weekday {
	return Weekday(ymd.Time().Weekday())
}

// YearMonthDayLast represents the last day of a month in a specific year.
type YearMonthDayLast struct {
	Year int
	MonthDayLast
}

func (yl YearMonthDayLast) String() string {
	return formatYear(yl.Year) + "/" + yl.MonthDayLast.String()
}

// Date returns the calendar date of the last day of the month.
func (yl YearMonthDayLast) Date() YearMonthDay {
	return YearMonthDay{Year: yl.Year, Month: yl.Month, Day: yl.Month.daysIn(yl.Year)}
}

// YearMonthWeekday represents the n'th occurrence of a weekday in a month
// of a specific year.
type YearMonthWeekday struct {
	Year int
	MonthWeekday
}

func (yw YearMonthWeekday) String() string {
	return formatYear(yw.Year) + "/" + yw.MonthWeekday.String()
}

// Date returns the calendar date of the weekday occurrence, ok is false if
// the month does not contain that many occurrences of the weekday.
func (yw YearMonthWeekday) Date() (date YearMonthDay, ok bool) {
	first := YearMonthDay{Year: yw.Year, Month: yw.Month, Day: 1}.Weekday()
	day := 1 + (int(yw.Weekday)-int(first)+7)%7 + 7*(yw.Index-1)
	if yw.Index < 1 || day > yw.Month.daysIn(yw.Year) {
		return YearMonthDay{}, false
	}
	return YearMonthDay{Year: yw.Year, Month: yw.Month, Day: day}, true
}

// YearMonthWeekdayLast represents the last occurrence of a weekday in
// a month of a specific year.
type YearMonthWeekdayLast struct {
	Year int
	MonthWeekdayLast
}

func (yl YearMonthWeekdayLast) String() string {
	return formatYear(yl.Year) + "/" + yl.MonthWeekdayLast.String()
}

// Date returns the calendar date of the last occurrence of the weekday.
func (yl YearMonthWeekdayLast) Date() YearMonthDay {
	last := YearMonthDay{Year: yl.Year, Month: yl.Month, Day: yl.Month.daysIn(yl.Year)}
	last.Day -= (int(last.Weekday()) - int(yl.Weekday) + 7) % 7
	return last
}

// ParseYearMonth parses values of the form '2024/Jan'.
func ParseYearMonth(s string) (YearMonth, error) {
	sc := scanner{s: s}
	y, ok := sc.year()
	if !ok || !sc.accept('/') || len(s)-sc.pos != 3 {
		return YearMonth{}, newFormatError(yearMonthGrammar, s)
	}
	m, err := ParseMonth(s[sc.pos:])
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonth{Year: y, Month: m}, nil
}

// ParseYearMonthDay parses values of the form '2024-02-29'. The date must
// exist in the calendar.
func ParseYearMonthDay(s string) (YearMonthDay, error) {
	sc := scanner{s: s}
	y, ok := sc.year()
	if !ok || !sc.accept('-') {
		return YearMonthDay{}, newFormatError(yearMonthDayGrammar, s)
	}
	m, ok := sc.unsigned(2)
	if !ok || !sc.accept('-') {
		return YearMonthDay{}, newFormatError(yearMonthDayGrammar, s)
	}
	d, ok := sc.unsigned(2)
	if !ok || !sc.done() {
		return YearMonthDay{}, newFormatError(yearMonthDayGrammar, s)
	}
	ymd, ok := NewYearMonthDay(y, Month(m), int(d))
	if !ok {
		return YearMonthDay{}, newFormatError(yearMonthDayGrammar, s)
	}
	return ymd, nil
}

// splitYear returns the year preceding the first '/' in s and the
// remainder of s following that '/'.
func splitYear(s string) (int, string, bool) {
	pos := strings.IndexByte(s, '/')
	if pos < 0 {
		return 0, "", false
	}
	y, ok := parseYear(s[:pos])
	return y, s[pos+1:], ok
}

// ParseYearMonthDayLast parses values of the form '2024/Feb/last'.
func ParseYearMonthDayLast(s string) (YearMonthDayLast, error) {
	y, rest, ok := splitYear(s)
	if !ok {
		return YearMonthDayLast{}, newFormatError(yearMonthDayLastGrammar, s)
	}
	ml, err := ParseMonthDayLast(rest)
	if err != nil {
		return YearMonthDayLast{}, err
	}
	return YearMonthDayLast{Year: y, MonthDayLast: ml}, nil
}

// ParseYearMonthWeekday parses values of the form '2024/Jan/Mon[2]'.
func ParseYearMonthWeekday(s string) (YearMonthWeekday, error) {
	y, rest, ok := splitYear(s)
	if !ok {
		return YearMonthWeekday{}, newFormatError(yearMonthWeekdayGrammar, s)
	}
	mw, err := ParseMonthWeekday(rest)
	if err != nil {
		return YearMonthWeekday{}, err
	}
	return YearMonthWeekday{Year: y, MonthWeekday: mw}, nil
}

// ParseYearMonthWeekdayLast parses values of the form '2024/May/Mon[last]'.
func ParseYearMonthWeekdayLast(s string) (YearMonthWeekdayLast, error) {
	y, rest, ok := splitYear(s)
	if !ok {
		return YearMonthWeekdayLast{}, newFormatError(yearMonthWeekdayLastGrammar, s)
	}
	ml, err := ParseMonthWeekdayLast(rest)
	if err != nil {
		return YearMonthWeekdayLast{}, err
	}
	return YearMonthWeekdayLast{Year: y, MonthWeekdayLast: ml}, nil
}
