// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package recur_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"cloudeng.io/caltext"
	"cloudeng.io/caltext/recur"
	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustParse(t *testing.T, kind caltext.Kind, s string) caltext.Value {
	t.Helper()
	v, err := caltext.Parse(kind, s)
	require.NoError(t, err)
	return v
}

func strs(dates []caltext.YearMonthDay) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}

func TestOccurrences(t *testing.T) {
	for _, tc := range []struct {
		kind     caltext.Kind
		val      string
		from, to time.Time
		want     []string
	}{
		{caltext.KindMonthWeekday, "Jan/Mon[2]", date(2024, 1, 1), date(2026, 12, 31),
			[]string{"2024-01-08", "2025-01-13", "2026-01-12"}},
		{caltext.KindMonthDayLast, "Feb/last", date(2023, 1, 1), date(2025, 12, 31),
			[]string{"2023-02-28", "2024-02-29", "2025-02-28"}},
		{caltext.KindMonthDay, "Feb/29", date(2023, 1, 1), date(2028, 12, 31),
			[]string{"2024-02-29", "2028-02-29"}},
		{caltext.KindWeekdayLast, "Fri[last]", date(2024, 1, 1), date(2024, 3, 31),
			[]string{"2024-01-26", "2024-02-23", "2024-03-29"}},
		{caltext.KindWeekdayIndexed, "Tue[1]", date(2024, 1, 1), date(2024, 3, 31),
			[]string{"2024-01-02", "2024-02-06", "2024-03-05"}},
		{caltext.KindWeekday, "Sun", date(2024, 2, 26), date(2024, 3, 10),
			[]string{"2024-03-03", "2024-03-10"}},
		{caltext.KindMonth, "Mar", date(2024, 1, 1), date(2025, 12, 31),
			[]string{"2024-03-01", "2025-03-01"}},
		{caltext.KindMonthWeekdayLast, "May/Mon[last]", date(2024, 6, 1), date(2025, 12, 31),
			[]string{"2025-05-26"}},
		{caltext.KindYearMonthWeekdayLast, "2024/May/Mon[last]", date(2020, 1, 1), date(2030, 12, 31),
			[]string{"2024-05-27"}},
		{caltext.KindYearMonthDayLast, "2024/Feb/last", date(2020, 1, 1), date(2030, 12, 31),
			[]string{"2024-02-29"}},
		{caltext.KindYearMonthDay, "2024-07-04", date(2020, 1, 1), date(2030, 12, 31),
			[]string{"2024-07-04"}},
		{caltext.KindYearMonth, "2025/Dec", date(2020, 1, 1), date(2030, 12, 31),
			[]string{"2025-12-01"}},
		{caltext.KindYearMonthWeekday, "2023/Feb/Wed[5]", date(2020, 1, 1), date(2030, 12, 31),
			[]string{}},
	} {
		v := mustParse(t, tc.kind, tc.val)
		dates, err := recur.Occurrences(v, tc.from, tc.to)
		require.NoError(t, err, tc.val)
		require.Equal(t, tc.want, strs(dates), tc.val)
	}
}

func TestOccurrencesMatchDate(t *testing.T) {
	v := mustParse(t, caltext.KindMonthWeekday, "Nov/Thu[4]").(caltext.MonthWeekday)
	dates, err := recur.Occurrences(v, date(2000, 1, 1), date(2039, 12, 31))
	require.NoError(t, err)
	require.Len(t, dates, 40)
	for i, d := range dates {
		want, ok := caltext.YearMonthWeekday{Year: 2000 + i, MonthWeekday: v}.Date()
		require.True(t, ok)
		require.Equal(t, want, d)
	}
}

func TestRRule(t *testing.T) {
	for _, tc := range []struct {
		kind caltext.Kind
		val  string
		want string
	}{
		{caltext.KindMonthWeekday, "Jan/Mon[2]", "FREQ=YEARLY;BYMONTH=1;BYDAY=+2MO"},
		{caltext.KindMonthWeekdayLast, "May/Mon[last]", "FREQ=YEARLY;BYMONTH=5;BYDAY=-1MO"},
		{caltext.KindMonthDayLast, "Feb/last", "FREQ=YEARLY;BYMONTH=2;BYMONTHDAY=-1"},
		{caltext.KindMonthDay, "Jul/04", "FREQ=YEARLY;BYMONTH=7;BYMONTHDAY=4"},
		{caltext.KindWeekdayIndexed, "Wed[3]", "FREQ=MONTHLY;BYDAY=+3WE"},
		{caltext.KindWeekdayLast, "Sat[last]", "FREQ=MONTHLY;BYDAY=-1SA"},
		{caltext.KindWeekday, "Sun", "FREQ=WEEKLY;BYDAY=SU"},
	} {
		r, err := recur.RRule(mustParse(t, tc.kind, tc.val), date(2024, 1, 1))
		require.NoError(t, err, tc.val)
		require.Equal(t, tc.want, r.OrigOptions.RRuleString(), tc.val)
	}

	_, err := recur.RRule(caltext.DurationValue(time.Hour), time.Now())
	require.ErrorIs(t, err, recur.ErrNotRecurring)
	_, err = recur.RRule(caltext.NewTimePoint(time.Now(), caltext.ResolutionDay), time.Now())
	require.ErrorIs(t, err, recur.ErrNotRecurring)
	_, err = recur.RRule(caltext.Weekday(7), time.Now())
	require.ErrorIs(t, err, recur.ErrInvalidValue)
}

func TestCalendar(t *testing.T) {
	start := date(2024, 6, 1)
	cal, err := recur.Calendar("-//cloudeng//caltext", start,
		recur.Event{Name: "thanksgiving", Value: mustParse(t, caltext.KindMonthWeekday, "Nov/Thu[4]")},
		recur.Event{Name: "feb", Value: mustParse(t, caltext.KindMonthDayLast, "Feb/last")},
		recur.Event{Name: "black-friday", Value: mustParse(t, caltext.KindYearMonthWeekdayLast, "2024/Nov/Fri[last]")},
	)
	require.NoError(t, err)
	out := cal.Serialize()
	require.Contains(t, out, "PRODID:-//cloudeng//caltext")
	require.Contains(t, out, "DTSTART;VALUE=DATE:20241128")
	require.Contains(t, out, "DTEND;VALUE=DATE:20241129")
	require.Contains(t, out, "RRULE:FREQ=YEARLY;BYMONTH=11;BYDAY=+4TH")
	require.Contains(t, out, "DTSTART;VALUE=DATE:20250228")
	require.Contains(t, out, "SUMMARY:thanksgiving")
	require.Contains(t, out, "DTSTART;VALUE=DATE:20241129")
	require.NotContains(t, out, "UNTIL=")

	parsed, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := parsed.Events()
	require.Len(t, events, 3)
	// 2024/Nov/Fri[last] is a single date and has no RRULE.
	require.Len(t, events[0].GetProperties(ical.ComponentPropertyRrule), 1)
	require.Len(t, events[1].GetProperties(ical.ComponentPropertyRrule), 1)
	require.Empty(t, events[2].GetProperties(ical.ComponentPropertyRrule))
	require.NotEqual(t, events[0].Id(), events[1].Id())

	// UIDs are stable.
	again, err := recur.Calendar("-//cloudeng//caltext", start,
		recur.Event{Name: "thanksgiving", Value: mustParse(t, caltext.KindMonthWeekday, "Nov/Thu[4]")})
	require.NoError(t, err)
	require.Equal(t, events[0].Id(), again.Events()[0].Id())
}

func TestCalendarErrors(t *testing.T) {
	cal, err := recur.Calendar("test", date(2025, 1, 1),
		recur.Event{Name: "past", Value: mustParse(t, caltext.KindYearMonthDay, "2024-07-04")},
		recur.Event{Name: "interval", Value: caltext.DurationValue(time.Hour)},
		recur.Event{Name: "ok", Value: mustParse(t, caltext.KindMonthDay, "Jul/04")},
	)
	require.Error(t, err)
	require.True(t, errors.Is(err, recur.ErrNotRecurring))
	require.Contains(t, err.Error(), "past")
	require.Len(t, cal.Events(), 1)
}
