// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caltext

import "fmt"

// WeekdayIndexed represents the n'th (1-5) occurrence of a weekday in a month.
type WeekdayIndexed struct {
	Weekday Weekday
	Index   int
}

func (wi WeekdayIndexed) String() string {
	return fmt.Sprintf("%v[%d]", wi.Weekday, wi.Index)
}

// WeekdayLast represents the last occurrence of a weekday in a month.
type WeekdayLast struct {
	Weekday Weekday
}

func (wl WeekdayLast) String() string {
	return wl.Weekday.String() + "[last]"
}

// MonthDay represents a day in a month without a year.
type MonthDay struct {
	Month Month
	Day   int
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%v/%02d", md.Month, md.Day)
}

// MonthDayLast represents the last day of a month.
type MonthDayLast struct {
	Month Month
}

func (ml MonthDayLast) String() string {
	return ml.Month.String() + "/last"
}

// MonthWeekday represents the n'th occurrence of a weekday in a month,
// eg. the second Monday in January.
type MonthWeekday struct {
	Month Month
	WeekdayIndexed
}

func (mw MonthWeekday) String() string {
	return mw.Month.String() + "/" + mw.WeekdayIndexed.String()
}

// MonthWeekdayLast represents the last occurrence of a weekday in a month,
// eg. the last Monday in May.
type MonthWeekdayLast struct {
	Month Month
	WeekdayLast
}

func (ml MonthWeekdayLast) String() string {
	return ml.Month.String() + "/" + ml.WeekdayLast.String()
}

// ParseWeekdayIndexed parses values of the form 'Mon[2]'.
func ParseWeekdayIndexed(s string) (WeekdayIndexed, error) {
	if len(s) < 6 || s[3] != '[' {
		return WeekdayIndexed{}, newFormatError(weekdayIndexedGrammar, s)
	}
	sc := scanner{s: s, pos: 3}
	sc.accept('[')
	idx, ok := sc.unsigned(1)
	if !ok || !sc.accept(']') || !sc.done() || idx < 1 || idx > 5 {
		return WeekdayIndexed{}, newFormatError(weekdayIndexedGrammar, s)
	}
	wd, err := ParseWeekday(s)
	if err != nil {
		return WeekdayIndexed{}, err
	}
	return WeekdayIndexed{Weekday: wd, Index: int(idx)}, nil
}

// ParseWeekdayLast parses values of the form 'Fri[last]'.
func ParseWeekdayLast(s string) (WeekdayLast, error) {
	if len(s) < 9 || s[3:9] != "[last]" || len(s) != 9 {
		return WeekdayLast{}, newFormatError(weekdayLastGrammar, s)
	}
	wd, err := ParseWeekday(s)
	if err != nil {
		return WeekdayLast{}, err
	}
	return WeekdayLast{Weekday: wd}, nil
}

// ParseMonthDay parses values of the form 'Feb/29'. The day must exist
// in the month for at least a leap year.
func ParseMonthDay(s string) (MonthDay, error) {
	if len(s) < 5 || s[3] != '/' {
		return MonthDay{}, newFormatError(monthDayGrammar, s)
	}
	sc := scanner{s: s, pos: 3}
	sc.accept('/')
	day, ok := sc.unsigned(2)
	if !ok || !sc.done() {
		return MonthDay{}, newFormatError(monthDayGrammar, s)
	}
	m, err := ParseMonth(s)
	if err != nil {
		return MonthDay{}, err
	}
	if day < 1 || int(day) > m.maxDays() {
		return MonthDay{}, newFormatError(monthDayGrammar, s)
	}
	return MonthDay{Month: m, Day: int(day)}, nil
}

// ParseMonthDayLast parses values of the form 'Feb/last'.
func ParseMonthDayLast(s string) (MonthDayLast, error) {
	if len(s) < 8 || s[3:8] != "/last" || len(s) != 8 {
		return MonthDayLast{}, newFormatError(monthDayLastGrammar, s)
	}
	m, err := ParseMonth(s)
	if err != nil {
		return MonthDayLast{}, err
	}
	return MonthDayLast{Month: m}, nil
}

// ParseMonthWeekday parses values of the form 'Jan/Mon[2]'.
func ParseMonthWeekday(s string) (MonthWeekday, error) {
	if len(s) < 10 || s[3] != '/' || s[7] != '[' {
		return MonthWeekday{}, newFormatError(monthWeekdayGrammar, s)
	}
	m, err := ParseMonth(s)
	if err != nil {
		return MonthWeekday{}, err
	}
	wi, err := ParseWeekdayIndexed(s[4:])
	if err != nil {
		return MonthWeekday{}, err
	}
	return MonthWeekday{Month: m, WeekdayIndexed: wi}, nil
}

// ParseMonthWeekdayLast parses values of the form 'May/Mon[last]'.
func ParseMonthWeekdayLast(s string) (MonthWeekdayLast, error) {
	if len(s) < 13 || s[3] != '/' || s[7:13] != "[last]" || len(s) != 13 {
		return MonthWeekdayLast{}, newFormatError(monthWeekdayLastGrammar, s)
	}
	m, err := ParseMonth(s[:3])
	if err != nil {
		return MonthWeekdayLast{}, err
	}
	wd, err := ParseWeekday(s[4:7])
	if err != nil {
		return MonthWeekdayLast{}, err
	}
	return MonthWeekdayLast{Month: m, WeekdayLast: WeekdayLast{Weekday: wd}}, nil
}
