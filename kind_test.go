// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caltext_test

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"cloudeng.io/caltext"
	"github.com/go-json-experiment/json"
	"gopkg.in/yaml.v3"
)

var kindExamples = map[caltext.Kind][]string{
	caltext.KindDuration:             {"0:00:00.000", "1:02:03.004", "-26:00:00.500"},
	caltext.KindDate:                 {"2024-02-29", "-0044-03-15"},
	caltext.KindDateTime:             {"2024-02-29 23:59:59", "1970-01-01 00:00:00", "2024-02-29 23:59:59.250"},
	caltext.KindWeekday:              {"Sun", "Sat"},
	caltext.KindMonth:                {"Jan", "Dec"},
	caltext.KindWeekdayIndexed:       {"Mon[1]", "Fri[5]"},
	caltext.KindWeekdayLast:          {"Thu[last]"},
	caltext.KindMonthDay:             {"Feb/29", "Jul/04"},
	caltext.KindMonthDayLast:         {"Feb/last"},
	caltext.KindMonthWeekday:         {"Jan/Mon[2]", "Nov/Thu[4]"},
	caltext.KindMonthWeekdayLast:     {"May/Mon[last]"},
	caltext.KindYearMonth:            {"2024/Jan", "-0001/Dec"},
	caltext.KindYearMonthDay:         {"2024-02-29", "0001-01-01"},
	caltext.KindYearMonthDayLast:     {"2024/Feb/last"},
	caltext.KindYearMonthWeekday:     {"2024/Jan/Mon[2]"},
	caltext.KindYearMonthWeekdayLast: {"2024/May/Mon[last]"},
}

func TestKinds(t *testing.T) {
	kinds := caltext.Kinds()
	if got, want := len(kinds), len(kindExamples); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, k := range kinds {
		if i > 0 && kinds[i-1] >= k {
			t.Errorf("kinds are not sorted: %v", kinds)
		}
		if _, ok := kindExamples[k]; !ok {
			t.Errorf("%v: missing example", k)
		}
		parsed, err := caltext.ParseKind(string(k))
		if err != nil {
			t.Errorf("%v: %v", k, err)
		}
		if got, want := parsed, k; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	_, err := caltext.ParseKind("fortnight")
	if !errors.Is(err, caltext.ErrUnknownKind) {
		t.Errorf("unexpected or missing error: %v", err)
	}
	_, err = caltext.Parse("fortnight", "Mon")
	if !errors.Is(err, caltext.ErrUnknownKind) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for kind, examples := range kindExamples {
		for _, s := range examples {
			v, err := caltext.Parse(kind, s)
			if err != nil {
				t.Errorf("%v: %v: %v", kind, s, err)
				continue
			}
			if got, want := v.Kind(), kind; got != want {
				t.Errorf("%v: got %v, want %v", s, got, want)
			}
			if got, want := v.String(), s; got != want {
				t.Errorf("%v: got %v, want %v", kind, got, want)
			}
		}
	}
}

func TestParseTypes(t *testing.T) {
	v, err := caltext.Parse(caltext.KindDuration, "-1:30:00.000")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v.(caltext.DurationValue).Duration(), -90*time.Minute; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	v, err = caltext.Parse(caltext.KindDate, "2024-02-29")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v.(caltext.TimePoint).Resolution, caltext.ResolutionDay; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	v, err = caltext.Parse(caltext.KindDateTime, "2024-02-29 01:02:03")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v.(caltext.TimePoint).Resolution, caltext.ResolutionSecond; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	v, err = caltext.Parse(caltext.KindYearMonthWeekday, "2024/Jan/Mon[2]")
	if err != nil {
		t.Fatal(err)
	}
	date, ok := v.(caltext.YearMonthWeekday).Date()
	if !ok {
		t.Fatalf("failed to compute date")
	}
	if got, want := date.String(), "2024-01-08"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseAll(t *testing.T) {
	values, err := caltext.ParseAll(caltext.KindWeekday, "Mon", "Xyz", "Fri", "Fr")
	if err == nil {
		t.Fatalf("failed to return an error")
	}
	if got, want := len(values), 4; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if values[1] != nil || values[3] != nil {
		t.Errorf("expected nil values for parse failures: %v", values)
	}
	if got, want := values[0], caltext.Value(caltext.Monday); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := values[2], caltext.Value(caltext.Friday); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !errors.Is(err, caltext.ErrInvalidFormat) {
		t.Errorf("unexpected error: %v", err)
	}
	var fe *caltext.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("unexpected error type: %T", err)
	}
	if got, want := fe.Input, "Xyz"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	values, err = caltext.ParseAll(caltext.KindMonth, "Jan", "Feb")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := values, []caltext.Value{caltext.January, caltext.February}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

type schedule struct {
	Every    caltext.DurationValue        `json:"every" yaml:"every"`
	Start    caltext.TimePoint            `json:"start" yaml:"start"`
	Day      caltext.Weekday              `json:"day" yaml:"day"`
	Holiday  caltext.MonthWeekday         `json:"holiday" yaml:"holiday"`
	Memorial caltext.YearMonthWeekdayLast `json:"memorial" yaml:"memorial"`
	Leap     caltext.YearMonthDay         `json:"leap" yaml:"leap"`
}

func newSchedule(t *testing.T) schedule {
	t.Helper()
	hol, err := caltext.ParseMonthWeekday("Nov/Thu[4]")
	if err != nil {
		t.Fatal(err)
	}
	mem, err := caltext.ParseYearMonthWeekdayLast("2024/May/Mon[last]")
	if err != nil {
		t.Fatal(err)
	}
	return schedule{
		Every:    caltext.DurationValue(36 * time.Hour),
		Start:    caltext.NewTimePoint(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), caltext.ResolutionDay),
		Day:      caltext.Tuesday,
		Holiday:  hol,
		Memorial: mem,
		Leap:     caltext.YearMonthDay{Year: 2024, Month: caltext.February, Day: 29},
	}
}

func TestJSON(t *testing.T) {
	in := newSchedule(t)
	buf, err := json.Marshal(in, json.Deterministic(true))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"every":"36:00:00.000","start":"2024-01-02","day":"Tue","holiday":"Nov/Thu[4]","memorial":"2024/May/Mon[last]","leap":"2024-02-29"}`
	if got := string(buf); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var out schedule
	if err := json.Unmarshal(buf, &out); err != nil {
		t.Fatal(err)
	}
	if got, want := out, in; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := json.Unmarshal([]byte(`{"day":"Xyz"}`), &out); err == nil {
		t.Errorf("failed to return an error")
	}
}

func TestYAML(t *testing.T) {
	in := newSchedule(t)
	buf, err := yaml.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out schedule
	if err := yaml.Unmarshal(buf, &out); err != nil {
		t.Fatalf("%s: %v", buf, err)
	}
	if got, want := out, in; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	var cfg struct {
		Durations []caltext.DurationValue `yaml:"durations"`
		Months    []caltext.MonthDayLast  `yaml:"months"`
	}
	err = yaml.Unmarshal([]byte(`
durations:
  - "1:00:00.000"
  - "-0:00:30.250"
months:
  - Feb/last
  - Dec/last
`), &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Durations, []caltext.DurationValue{caltext.DurationValue(time.Hour), caltext.DurationValue(-30250 * time.Millisecond)}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Months[1].Month, caltext.December; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestConcurrentParse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for kind, examples := range kindExamples {
				for _, s := range examples {
					if _, err := caltext.Parse(kind, s); err != nil {
						t.Errorf("%v: %v: %v", kind, s, err)
					}
				}
			}
		}()
	}
	wg.Wait()
}
