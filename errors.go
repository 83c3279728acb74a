// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caltext

import (
	"fmt"

	"cloudeng.io/errors"
)

// ErrInvalidFormat is matched, via errors.Is, by every *FormatError.
var ErrInvalidFormat = errors.New("invalid format")

// FormatError is returned by all of the parsers in this package.
type FormatError struct {
	// Expected describes the expected grammar, eg. 'month/day (Xxx/dd)'.
	Expected string
	// Input is the original, complete, input string.
	Input string
}

func newFormatError(expected, input string) error {
	return &FormatError{Expected: expected, Input: input}
}

// Error implements error.
func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s format: %q", e.Expected, e.Input)
}

// Is supports errors.Is for ErrInvalidFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// Static descriptions of each grammar.
const (
	durationGrammar             = "duration ([-]H:MM:SS.mmm)"
	dateGrammar                 = "time point (YYYY-MM-DD)"
	dateTimeGrammar             = "time point (YYYY-MM-DD HH:MM:SS)"
	weekdayGrammar              = "weekday (Xxx)"
	monthGrammar                = "month (Xxx)"
	weekdayIndexedGrammar       = "weekday[index] (Xxx[n])"
	weekdayLastGrammar          = "weekday[last] (Xxx[last])"
	monthDayGrammar             = "month/day (Xxx/dd)"
	monthDayLastGrammar         = "month/last (Xxx/last)"
	monthWeekdayGrammar         = "month/weekday[index] (Xxx/Yyy[n])"
	monthWeekdayLastGrammar     = "month/weekday[last] (Xxx/Yyy[last])"
	yearMonthGrammar            = "year/month (yyyy/Xxx)"
	yearMonthDayGrammar         = "year-month-day (yyyy-mm-dd)"
	yearMonthDayLastGrammar     = "year/month/last (yyyy/Xxx/last)"
	yearMonthWeekdayGrammar     = "year/month/weekday[index] (yyyy/Xxx/Yyy[n])"
	yearMonthWeekdayLastGrammar = "year/month/weekday[last] (yyyy/Xxx/Yyy[last])"
)
