// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caltext

import (
	"fmt"
	"strings"
	"time"
)

// Resolution is the declared precision of a TimePoint. The zero value
// is ResolutionDay.
type Resolution int

const (
	ResolutionDay Resolution = iota
	ResolutionSecond
	ResolutionMillisecond
	ResolutionMicrosecond
	ResolutionNanosecond
)

var resolutionNames = [...]string{"day", "second", "millisecond", "microsecond", "nanosecond"}

func (r Resolution) String() string {
	if r < ResolutionDay || r > ResolutionNanosecond {
		return fmt.Sprintf("Resolution(%d)", int(r))
	}
	return resolutionNames[r]
}

// ResolutionOf returns the resolution implied by the format of an encoded
// time point: day for a date, and second, millisecond, microsecond or
// nanosecond for a date-time according to the number of fractional digits.
// It does not validate text.
func ResolutionOf(text string) Resolution {
	sp := strings.IndexByte(text, ' ')
	if sp < 0 {
		return ResolutionDay
	}
	dot := strings.IndexByte(text[sp:], '.')
	if dot < 0 {
		return ResolutionSecond
	}
	switch n := len(text) - sp - dot - 1; {
	case n <= 3:
		return ResolutionMillisecond
	case n <= 6:
		return ResolutionMicrosecond
	}
	return ResolutionNanosecond
}

// ParseResolution parses the names returned by Resolution.String.
func ParseResolution(s string) (Resolution, error) {
	for i, n := range resolutionNames {
		if strings.EqualFold(s, n) {
			return Resolution(i), nil
		}
	}
	return 0, fmt.Errorf("unknown resolution %q", s)
}

// SubDay returns true if r is strictly finer than a day.
func (r Resolution) SubDay() bool {
	return r > ResolutionDay
}

// Duration returns the length of one unit of r.
func (r Resolution) Duration() time.Duration {
	switch r {
	case ResolutionSecond:
		return time.Second
	case ResolutionMillisecond:
		return time.Millisecond
	case ResolutionMicrosecond:
		return time.Microsecond
	case ResolutionNanosecond:
		return time.Nanosecond
	}
	return 24 * time.Hour
}

// fractionDigits returns the number of sub-second digits used by r.
func (r Resolution) fractionDigits() int {
	switch r {
	case ResolutionMillisecond:
		return 3
	case ResolutionMicrosecond:
		return 6
	case ResolutionNanosecond:
		return 9
	}
	return 0
}

var pow10 = [...]int{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

// TimePoint is an instant, in UTC, with a declared Resolution. The
// Resolution, and not the value of Time, determines how the TimePoint
// is formatted and parsed.
type TimePoint struct {
	Time       time.Time
	Resolution Resolution
}

// NewTimePoint returns a TimePoint for t, in UTC, truncated to res.
func NewTimePoint(t time.Time, res Resolution) TimePoint {
	t = t.UTC()
	if !res.SubDay() {
		return TimePoint{
			Time:       time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
			Resolution: res,
		}
	}
	return TimePoint{Time: t.Truncate(res.Duration()), Resolution: res}
}

// Equal returns true if tp and o have the same Resolution and represent
// the same instant.
func (tp TimePoint) Equal(o TimePoint) bool {
	return tp.Resolution == o.Resolution && tp.Time.Equal(o.Time)
}

func (tp TimePoint) String() string {
	return FormatTimePoint(tp)
}

// FormatTimePoint formats tp as YYYY-MM-DD for day resolution and as
// YYYY-MM-DD HH:MM:SS for finer resolutions, with 3, 6 or 9 fractional
// digits for millisecond, microsecond and nanosecond resolutions.
func FormatTimePoint(tp TimePoint) string {
	t := tp.Time.UTC()
	year, month, day := t.Date()
	date := fmt.Sprintf("%s-%02d-%02d", formatYear(year), int(month), day)
	if !tp.Resolution.SubDay() {
		return date
	}
	hour, minute, sec := t.Clock()
	out := fmt.Sprintf("%s %02d:%02d:%02d", date, hour, minute, sec)
	if n := tp.Resolution.fractionDigits(); n > 0 {
		out += fmt.Sprintf(".%0*d", n, t.Nanosecond()/pow10[9-n])
	}
	return out
}

// ParseTimePoint parses s according to res: as YYYY-MM-DD for day resolution
// and YYYY-MM-DD HH:MM:SS otherwise. For resolutions finer than a second
// the seconds may be followed by a fraction with at most as many digits as
// the resolution supports.
func ParseTimePoint(s string, res Resolution) (TimePoint, error) {
	grammar := dateGrammar
	if res.SubDay() {
		grammar = dateTimeGrammar
	}
	sc := scanner{s: s}
	y, ok := sc.year()
	if !ok || !sc.accept('-') {
		return TimePoint{}, newFormatError(grammar, s)
	}
	m, ok := sc.unsigned(2)
	if !ok || !sc.accept('-') {
		return TimePoint{}, newFormatError(grammar, s)
	}
	d, ok := sc.unsigned(2)
	if !ok {
		return TimePoint{}, newFormatError(grammar, s)
	}
	date, ok := NewYearMonthDay(y, Month(m), int(d))
	if !ok {
		return TimePoint{}, newFormatError(grammar, s)
	}
	if !res.SubDay() {
		if !sc.done() {
			return TimePoint{}, newFormatError(grammar, s)
		}
		return TimePoint{Time: date.Time(), Resolution: res}, nil
	}
	if !sc.accept(' ') {
		return TimePoint{}, newFormatError(grammar, s)
	}
	var clock [3]int64
	for i := range clock {
		if i > 0 && !sc.accept(':') {
			return TimePoint{}, newFormatError(grammar, s)
		}
		if clock[i], ok = sc.unsigned(2); !ok {
			return TimePoint{}, newFormatError(grammar, s)
		}
	}
	var nsec int64
	if n := res.fractionDigits(); n > 0 && sc.accept('.') {
		frac := sc.digits(n)
		if len(frac) == 0 {
			return TimePoint{}, newFormatError(grammar, s)
		}
		for _, c := range frac {
			nsec = nsec*10 + int64(c-'0')
		}
		nsec *= int64(pow10[9-len(frac)])
	}
	if !sc.done() || clock[0] > 23 || clock[1] > 59 || clock[2] > 59 {
		return TimePoint{}, newFormatError(grammar, s)
	}
	t := time.Date(date.Year, time.Month(date.Month), date.Day,
		int(clock[0]), int(clock[1]), int(clock[2]), int(nsec), time.UTC)
	return TimePoint{Time: t, Resolution: res}, nil
}
