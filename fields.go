// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caltext

import (
	"strconv"
	"time"

	"cloudeng.io/datetime"
)

// Weekday is a day of the week, Sunday = 0.
type Weekday time.Weekday

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Valid returns true for Sunday through Saturday.
func (wd Weekday) Valid() bool {
	return wd >= Sunday && wd <= Saturday
}

// String returns the three letter abbreviation for the weekday.
func (wd Weekday) String() string {
	if !wd.Valid() {
		return "Weekday(" + strconv.Itoa(int(wd)) + ")"
	}
	return weekdayNames[wd]
}

// Month is a month of the year, January = 1. It shares its representation
// with cloudeng.io/datetime.Month.
type Month datetime.Month

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Valid returns true for January through December.
func (m Month) Valid() bool {
	return m >= January && m <= December
}

// String returns the three letter abbreviation for the month.
func (m Month) String() string {
	if !m.Valid() {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}

// daysIn returns the number of days in m for the specified year.
func (m Month) daysIn(year int) int {
	return datetime.DaysInMonth(year, datetime.Month(m))
}

// maxDays returns the largest number of days that m can have in any year.
func (m Month) maxDays() int {
	return m.daysIn(2000)
}

// weekdayFromPrefix maps the first three characters of a weekday
// abbreviation to a Weekday. Only as many characters as are needed to tell
// the weekdays apart are examined.
func weekdayFromPrefix(p string) (Weekday, bool) {
	switch p[0] {
	case 'S':
		if p[1] == 'u' {
			return Sunday, true
		}
		return Saturday, true
	case 'M':
		return Monday, true
	case 'T':
		if p[1] == 'u' {
			return Tuesday, true
		}
		return Thursday, true
	case 'W':
		return Wednesday, true
	case 'F':
		return Friday, true
	}
	return 0, false
}

// monthFromPrefix is like weekdayFromPrefix for months.
func monthFromPrefix(p string) (Month, bool) {
	switch p[0] {
	case 'J':
		switch {
		case p[1] == 'a':
			return January, true
		case p[2] == 'n':
			return June, true
		}
		return July, true
	case 'F':
		return February, true
	case 'M':
		if p[2] == 'r' {
			return March, true
		}
		return May, true
	case 'A':
		if p[1] == 'p' {
			return April, true
		}
		return August, true
	case 'S':
		return September, true
	case 'O':
		return October, true
	case 'N':
		return November, true
	case 'D':
		return December, true
	}
	return 0, false
}

// ParseWeekday parses a weekday from the first three characters of s,
// eg. 'Mon'. Any characters beyond the third are ignored.
func ParseWeekday(s string) (Weekday, error) {
	if len(s) < 3 {
		return 0, newFormatError(weekdayGrammar, s)
	}
	wd, ok := weekdayFromPrefix(s[:3])
	if !ok {
		return 0, newFormatError(weekdayGrammar, s)
	}
	return wd, nil
}

// ParseMonth parses a month from the first three characters of s,
// eg. 'Jan'. Any characters beyond the third are ignored.
func ParseMonth(s string) (Month, error) {
	if len(s) < 3 {
		return 0, newFormatError(monthGrammar, s)
	}
	m, ok := monthFromPrefix(s[:3])
	if !ok {
		return 0, newFormatError(monthGrammar, s)
	}
	return m, nil
}
