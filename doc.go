// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package caltext provides a textual codec for durations, time points and
// calendar field values such as weekdays, months and composite expressions
// like 'the second Monday of January' or 'the last day of February 2024'.
// It is intended for storing calendar values in media, such as SQLite TEXT
// columns, that have no native calendar types.
//
// The supported encodings are:
//
//	Duration              [-]H:MM:SS.mmm         -1:02:03.004
//	TimePoint             YYYY-MM-DD             2024-02-29
//	                      YYYY-MM-DD HH:MM:SS    2024-02-29 13:04:05
//	Weekday               Xxx                    Mon
//	Month                 Xxx                    Jan
//	WeekdayIndexed        Xxx[n]                 Mon[2]
//	WeekdayLast           Xxx[last]              Fri[last]
//	MonthDay              Xxx/dd                 Feb/29
//	MonthDayLast          Xxx/last               Feb/last
//	MonthWeekday          Xxx/Yyy[n]             Jan/Mon[2]
//	MonthWeekdayLast      Xxx/Yyy[last]          May/Mon[last]
//	YearMonth             yyyy/Xxx               2024/Jan
//	YearMonthDay          yyyy-mm-dd             2024-02-29
//	YearMonthDayLast      yyyy/Xxx/last          2024/Feb/last
//	YearMonthWeekday      yyyy/Xxx/Yyy[n]        2024/Jan/Mon[2]
//	YearMonthWeekdayLast  yyyy/Xxx/Yyy[last]     2024/May/Mon[last]
//
// Duration hours are written without padding, so one hour is 1:00:00.000
// rather than the 01:00:00.000 produced by writers that use two digit hours.
// ParseDuration accepts both.
//
// Weekday and month names are recognised from their first three characters
// only, using the smallest number of characters needed to tell them apart.
// Composite parsers validate the length and the delimiters of their input
// before handing any part of it to a simpler parser. All failures are reported
// as a *FormatError that carries the offending input. All of the functions
// in this package are safe for concurrent use.
package caltext
