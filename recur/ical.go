// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package recur

import (
	"fmt"
	"time"

	"cloudeng.io/caltext"
	"cloudeng.io/errors"
	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// Event is a named value to be rendered as a recurring all day event.
type Event struct {
	Name  string
	Value caltext.Value
}

// Calendar returns an iCalendar with one all day VEVENT per event, each
// starting on its first occurrence on or after start and repeating
// according to its recurrence rule. Values scoped to a year, such as
// '2024/May/Mon[last]', denote a single date and are written without a
// rule. Event UIDs are derived from prodID and the event name and the
// DTSTAMP of every event is start, so the output depends only on the
// arguments. Events that cannot be expressed, or that have no occurrences
// after start, are omitted and reported in the returned errors.M.
func Calendar(prodID string, start time.Time, events ...Event) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.SetProductId(prodID)
	errs := &errors.M{}
	for _, e := range events {
		r, err := RRule(e.Value, start)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", e.Name, err))
			continue
		}
		first := r.After(midnight(start), true)
		if first.IsZero() {
			errs.Append(fmt.Errorf("%v: %v: no occurrences after %v", e.Name, e.Value, caltext.NewTimePoint(start, caltext.ResolutionDay)))
			continue
		}
		uid := uuid.NewSHA1(uuid.NameSpaceURL, []byte(prodID+"/"+e.Name))
		ev := cal.AddEvent(uid.String())
		ev.SetDtStampTime(start)
		ev.SetSummary(e.Name)
		ev.SetDescription(fmt.Sprintf("%v (%v)", e.Value, e.Value.Kind()))
		ev.SetAllDayStartAt(first)
		ev.SetAllDayEndAt(first.AddDate(0, 0, 1))
		if !yearScoped(e.Value) {
			ev.AddRrule(r.OrigOptions.RRuleString())
		}
	}
	return cal, errs.Err()
}
