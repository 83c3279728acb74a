// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/caltext"
	"cloudeng.io/caltext/recur"
	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
)

type occurrencesFlags struct {
	cmdutil.LoggingFlags
	ConfigFlags
	From string `subcmd:"from,,'first date (YYYY-MM-DD) to consider, defaults to today'"`
	To   string `subcmd:"to,,'last date (YYYY-MM-DD) to consider, defaults to one year after from'"`
}

type icalFlags struct {
	cmdutil.LoggingFlags
	ConfigFlags
	DatabaseFlags
	ProdID string `subcmd:"prodid,-//cloudeng.io//caltext//EN,'iCalendar product identifier'"`
	Start  string `subcmd:"start,,'date (YYYY-MM-DD) from which events start, defaults to today'"`
}

var now = time.Now

func parseDate(s string, def time.Time) (time.Time, error) {
	if len(s) == 0 {
		return def, nil
	}
	ymd, err := caltext.ParseYearMonthDay(s)
	if err != nil {
		return time.Time{}, err
	}
	return ymd.Time(), nil
}

func parse(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*CommonFlags)
	ctx, _, done, err := setup(ctx, cl.LoggingFlags, cl.ConfigFlags)
	if err != nil {
		return err
	}
	defer done()
	kind, err := caltext.ParseKind(args[0])
	if err != nil {
		return err
	}
	parsed, err := caltext.ParseAll(kind, args[1:]...)
	for i, v := range parsed {
		if v == nil {
			continue
		}
		fmt.Fprintf(stdout, "%v\t%v\n", args[i+1], v)
	}
	if err != nil {
		ctxlog.Logger(ctx).Error("parse failed", "kind", kind, "error", err)
	}
	return err
}

func kinds(_ context.Context, _ interface{}, _ []string) error {
	for _, k := range caltext.Kinds() {
		fmt.Fprintln(stdout, k)
	}
	return nil
}

func durations(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*CommonFlags)
	_, _, done, err := setup(ctx, cl.LoggingFlags, cl.ConfigFlags)
	if err != nil {
		return err
	}
	defer done()
	parsed, err := caltext.ParseAll(caltext.KindDuration, args...)
	for i, v := range parsed {
		if v == nil {
			continue
		}
		d := v.(caltext.DurationValue)
		fmt.Fprintf(stdout, "%v\t%v\t%v\n", args[i], d, d.Duration())
	}
	return err
}

func occurrences(ctx context.Context, values interface{}, args []string) error {
	cl := values.(*occurrencesFlags)
	ctx, _, done, err := setup(ctx, cl.LoggingFlags, cl.ConfigFlags)
	if err != nil {
		return err
	}
	defer done()
	kind, err := caltext.ParseKind(args[0])
	if err != nil {
		return err
	}
	v, err := caltext.Parse(kind, args[1])
	if err != nil {
		return err
	}
	from, err := parseDate(cl.From, now())
	if err != nil {
		return err
	}
	to, err := parseDate(cl.To, from.AddDate(1, 0, 0))
	if err != nil {
		return err
	}
	dates, err := recur.Occurrences(v, from, to)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("occurrences", "value", v, "from", from, "to", to, "count", len(dates))
	for _, d := range dates {
		fmt.Fprintf(stdout, "%v\t%v\n", d, d.Weekday())
	}
	return nil
}

func icalendar(ctx context.Context, values interface{}, _ []string) error {
	cl := values.(*icalFlags)
	ctx, store, _, done, err := openStore(ctx, cl.LoggingFlags, cl.ConfigFlags, cl.DatabaseFlags)
	if err != nil {
		return err
	}
	defer done()
	start, err := parseDate(cl.Start, now())
	if err != nil {
		return err
	}
	records, err := store.List(ctx)
	if err != nil {
		return err
	}
	events := make([]recur.Event, 0, len(records))
	for _, r := range records {
		if _, err := recur.RRule(r.Value, start); errors.Is(err, recur.ErrNotRecurring) {
			continue
		}
		events = append(events, recur.Event{Name: r.Name, Value: r.Value})
	}
	cal, err := recur.Calendar(cl.ProdID, start, events...)
	if err != nil {
		// Events that cannot be rendered are reported but do not prevent
		// the remainder from being written.
		ctxlog.Logger(ctx).Warn("some values were not rendered", "error", err)
	}
	return cal.SerializeTo(stdout)
}
