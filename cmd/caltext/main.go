// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command caltext parses, normalizes, stores and expands calendar values
// in the caltext encodings.
package main

import (
	"context"
	"io"
	"os"

	"cloudeng.io/cmdutil/subcmd"
)

var (
	cmdSet *subcmd.CommandSet
	stdout io.Writer = os.Stdout
)

func init() {
	parseCmd := subcmd.NewCommand("parse",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		parse, subcmd.AtLeastNArguments(2))
	parseCmd.Document("parse and normalize values of the specified kind", "<kind>", "<value>...")

	kindsCmd := subcmd.NewCommand("kinds",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		kinds, subcmd.WithoutArguments())
	kindsCmd.Document("list the supported kinds of value")

	durationCmd := subcmd.NewCommand("duration",
		subcmd.MustRegisterFlagStruct(&CommonFlags{}, nil, nil),
		durations, subcmd.AtLeastNArguments(1))
	durationCmd.Document("parse durations of the form [-]H:MM:SS.mmm and display them as Go durations", "<value>...")

	occurrencesCmd := subcmd.NewCommand("occurrences",
		subcmd.MustRegisterFlagStruct(&occurrencesFlags{}, nil, nil),
		occurrences, subcmd.ExactlyNumArguments(2))
	occurrencesCmd.Document("list the dates denoted by a recurring value, eg. 'month-weekday Jan/Mon[2]'", "<kind>", "<value>")

	icalCmd := subcmd.NewCommand("ical",
		subcmd.MustRegisterFlagStruct(&icalFlags{}, nil, nil),
		icalendar, subcmd.WithoutArguments())
	icalCmd.Document("write an iCalendar containing a recurring event for every recurring value in the store")

	cmdSet = subcmd.NewCommandSet(parseCmd, kindsCmd, durationCmd, storeCmds(), occurrencesCmd, icalCmd)
	cmdSet.Document(`parse, normalize, store and expand calendar values.

Values are encoded as text, for example:

  duration                [-]H:MM:SS.mmm       -1:02:03.004
  date                    YYYY-MM-DD           2024-02-29
  datetime                YYYY-MM-DD HH:MM:SS  2024-02-29 13:04:05
  month-weekday           Xxx/Yyy[n]           Jan/Mon[2]
  month-day-last          Xxx/last             Feb/last
  year-month-weekday-last yyyy/Xxx/Yyy[last]   2024/May/Mon[last]

Use the kinds command for a complete list of the supported kinds.`)
}

func storeCmds() *subcmd.Command {
	putCmd := subcmd.NewCommand("put",
		subcmd.MustRegisterFlagStruct(&storeFlags{}, nil, nil),
		storePut, subcmd.ExactlyNumArguments(3))
	putCmd.Document("store a named value", "<name>", "<kind>", "<value>")

	getCmd := subcmd.NewCommand("get",
		subcmd.MustRegisterFlagStruct(&storeFlags{}, nil, nil),
		storeGet, subcmd.AtLeastNArguments(1))
	getCmd.Document("display named values", "<name>...")

	listCmd := subcmd.NewCommand("list",
		subcmd.MustRegisterFlagStruct(&storeFlags{}, nil, nil),
		storeList, subcmd.AtLeastNArguments(0))
	listCmd.Document("list all values, or only those of the specified kinds", "[<kind>...]")

	deleteCmd := subcmd.NewCommand("delete",
		subcmd.MustRegisterFlagStruct(&storeFlags{}, nil, nil),
		storeDelete, subcmd.AtLeastNArguments(1))
	deleteCmd.Document("delete named values", "<name>...")

	exportCmd := subcmd.NewCommand("export",
		subcmd.MustRegisterFlagStruct(&storeFlags{}, nil, nil),
		storeExport, subcmd.WithoutArguments())
	exportCmd.Document("export all values as JSON")

	seedCmd := subcmd.NewCommand("seed",
		subcmd.MustRegisterFlagStruct(&storeFlags{}, nil, nil),
		storeSeed, subcmd.WithoutArguments())
	seedCmd.Document("store the values listed in the configuration file")

	storeSet := subcmd.NewCommandSet(putCmd, getCmd, listCmd, deleteCmd, exportCmd, seedCmd)
	summary := "manage a sqlite database of named calendar values"
	storeSet.Document(summary)
	cl := subcmd.NewCommandLevel("store", storeSet)
	cl.Document(summary)
	return cl
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
