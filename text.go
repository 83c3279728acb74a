// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caltext

import "time"

// All of the value types implement encoding.TextMarshaler and
// encoding.TextUnmarshaler using their String methods and parsers
// respectively and hence can be used with encoding/json, gopkg.in/yaml.v3
// and any other package that honours those interfaces.

func unmarshalText[T any](dst *T, text []byte, parse func(string) (T, error)) error {
	v, err := parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d DurationValue) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DurationValue) UnmarshalText(text []byte) error {
	v, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = DurationValue(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (tp TimePoint) MarshalText() ([]byte, error) {
	return []byte(FormatTimePoint(tp)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is parsed
// according to the Resolution already set in tp.
func (tp *TimePoint) UnmarshalText(text []byte) error {
	v, err := ParseTimePoint(string(text), tp.Resolution)
	if err != nil {
		return err
	}
	*tp = v
	return nil
}

// Duration returns d as a time.Duration.
func (d DurationValue) Duration() time.Duration {
	return time.Duration(d)
}

// MarshalText implements encoding.TextMarshaler.
func (wd Weekday) MarshalText() ([]byte, error) {
	return []byte(wd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (wd *Weekday) UnmarshalText(text []byte) error {
	return unmarshalText(wd, text, ParseWeekday)
}

// MarshalText implements encoding.TextMarshaler.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(text []byte) error {
	return unmarshalText(m, text, ParseMonth)
}

// MarshalText implements encoding.TextMarshaler.
func (wi WeekdayIndexed) MarshalText() ([]byte, error) {
	return []byte(wi.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (wi *WeekdayIndexed) UnmarshalText(text []byte) error {
	return unmarshalText(wi, text, ParseWeekdayIndexed)
}

// MarshalText implements encoding.TextMarshaler.
func (wl WeekdayLast) MarshalText() ([]byte, error) {
	return []byte(wl.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (wl *WeekdayLast) UnmarshalText(text []byte) error {
	return unmarshalText(wl, text, ParseWeekdayLast)
}

// MarshalText implements encoding.TextMarshaler.
func (md MonthDay) MarshalText() ([]byte, error) {
	return []byte(md.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (md *MonthDay) UnmarshalText(text []byte) error {
	return unmarshalText(md, text, ParseMonthDay)
}

// MarshalText implements encoding.TextMarshaler.
func (ml MonthDayLast) MarshalText() ([]byte, error) {
	return []byte(ml.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ml *MonthDayLast) UnmarshalText(text []byte) error {
	return unmarshalText(ml, text, ParseMonthDayLast)
}

// MarshalText implements encoding.TextMarshaler.
func (mw MonthWeekday) MarshalText() ([]byte, error) {
	return []byte(mw.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (mw *MonthWeekday) UnmarshalText(text []byte) error {
	return unmarshalText(mw, text, ParseMonthWeekday)
}

// MarshalText implements encoding.TextMarshaler.
func (ml MonthWeekdayLast) MarshalText() ([]byte, error) {
	return []byte(ml.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ml *MonthWeekdayLast) UnmarshalText(text []byte) error {
	return unmarshalText(ml, text, ParseMonthWeekdayLast)
}

// MarshalText implements encoding.TextMarshaler.
func (ym YearMonth) MarshalText() ([]byte, error) {
	return []byte(ym.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ym *YearMonth) UnmarshalText(text []byte) error {
	return unmarshalText(ym, text, ParseYearMonth)
}

// MarshalText implements encoding.TextMarshaler.
func (ymd YearMonthDay) MarshalText() ([]byte, error) {
	return []byte(ymd.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ymd *YearMonthDay) UnmarshalText(text []byte) error {
	return unmarshalText(ymd, text, ParseYearMonthDay)
}

// MarshalText implements encoding.TextMarshaler.
func (yl YearMonthDayLast) MarshalText() ([]byte, error) {
	return []byte(yl.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (yl *YearMonthDayLast) UnmarshalText(text []byte) error {
	return unmarshalText(yl, text, ParseYearMonthDayLast)
}

// MarshalText implements encoding.TextMarshaler.
func (yw YearMonthWeekday) MarshalText() ([]byte, error) {
	return []byte(yw.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (yw *YearMonthWeekday) UnmarshalText(text []byte) error {
	return unmarshalText(yw, text, ParseYearMonthWeekday)
}

// MarshalText implements encoding.TextMarshaler.
func (yl YearMonthWeekdayLast) MarshalText() ([]byte, error) {
	return []byte(yl.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (yl *YearMonthWeekdayLast) UnmarshalText(text []byte) error {
	return unmarshalText(yl, text, ParseYearMonthWeekdayLast)
}
