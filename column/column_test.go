// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package column_test

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"cloudeng.io/caltext"
	"cloudeng.io/caltext/column"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "column.db")),
		&gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	db, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	_, err = db.Exec(`CREATE TABLE vals (id INTEGER PRIMARY KEY, wd TEXT, mwd TEXT, dur TEXT, tp TEXT, opt TEXT)`)
	require.NoError(t, err)
	return db
}

func TestRoundTrip(t *testing.T) {
	db := openDB(t)

	mwd, err := caltext.ParseMonthWeekday("Jan/Mon[2]")
	require.NoError(t, err)
	when := time.Date(2024, 2, 29, 13, 4, 5, 123000000, time.UTC)

	_, err = db.Exec(`INSERT INTO vals (id, wd, mwd, dur, tp, opt) VALUES (?, ?, ?, ?, ?, ?)`,
		1,
		column.Weekday{V: caltext.Friday},
		column.NewText[caltext.MonthWeekday](mwd),
		column.Duration{V: caltext.DurationValue(-90 * time.Minute)},
		column.TimePoint{V: caltext.NewTimePoint(when, caltext.ResolutionMillisecond)},
		column.NullMonth{},
	)
	require.NoError(t, err)

	var raw [4]string
	var opt sql.NullString
	err = db.QueryRow(`SELECT wd, mwd, dur, tp, opt FROM vals WHERE id = 1`).Scan(&raw[0], &raw[1], &raw[2], &raw[3], &opt)
	require.NoError(t, err)
	require.Equal(t, [4]string{"Fri", "Jan/Mon[2]", "-1:30:00.000", "2024-02-29 13:04:05.123"}, raw)
	require.False(t, opt.Valid)

	var (
		wd  column.Weekday
		mw  column.MonthWeekday
		dur column.Duration
		tp  column.TimePoint
		nm  column.NullMonth
	)
	err = db.QueryRow(`SELECT wd, mwd, dur, tp, opt FROM vals WHERE id = 1`).Scan(&wd, &mw, &dur, &tp, &nm)
	require.NoError(t, err)
	require.Equal(t, caltext.Friday, wd.V)
	require.Equal(t, mwd, mw.V)
	require.Equal(t, -90*time.Minute, dur.V.Duration())
	require.Equal(t, caltext.ResolutionMillisecond, tp.V.Resolution)
	require.True(t, tp.V.Time.Equal(when))
	require.False(t, nm.Valid)

	_, err = db.Exec(`UPDATE vals SET opt = ? WHERE id = 1`, column.NewNull[caltext.Month](caltext.March))
	require.NoError(t, err)
	err = db.QueryRow(`SELECT opt FROM vals WHERE id = 1`).Scan(&nm)
	require.NoError(t, err)
	require.True(t, nm.Valid)
	require.Equal(t, caltext.March, nm.V)
	require.Equal(t, "Mar", column.Month{V: nm.V}.String())
}

func TestScanErrors(t *testing.T) {
	db := openDB(t)
	_, err := db.Exec(`INSERT INTO vals (id, wd, tp, opt) VALUES (1, 'Xyz', '2024-02-30', NULL)`)
	require.NoError(t, err)

	var wd column.Weekday
	err = db.QueryRow(`SELECT wd FROM vals WHERE id = 1`).Scan(&wd)
	require.Error(t, err)
	require.True(t, errors.Is(err, caltext.ErrInvalidFormat), err.Error())

	var fe *caltext.FormatError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, "Xyz", fe.Input)

	var tp column.TimePoint
	err = db.QueryRow(`SELECT tp FROM vals WHERE id = 1`).Scan(&tp)
	require.True(t, errors.Is(err, caltext.ErrInvalidFormat), err)

	var month column.Month
	err = db.QueryRow(`SELECT opt FROM vals WHERE id = 1`).Scan(&month)
	require.True(t, errors.Is(err, column.ErrNull), err)

	var ntp column.NullTimePoint
	err = db.QueryRow(`SELECT opt FROM vals WHERE id = 1`).Scan(&ntp)
	require.NoError(t, err)
	require.False(t, ntp.Valid)

	require.Error(t, wd.Scan(42))
}

func TestTimePointScan(t *testing.T) {
	for _, tc := range []struct {
		src  any
		want string
		res  caltext.Resolution
	}{
		{"2024-02-29", "2024-02-29", caltext.ResolutionDay},
		{[]byte("2024-02-29 13:04:05"), "2024-02-29 13:04:05", caltext.ResolutionSecond},
		{"2024-02-29 13:04:05.5", "2024-02-29 13:04:05.500", caltext.ResolutionMillisecond},
		{"2024-02-29 13:04:05.000123", "2024-02-29 13:04:05.000123", caltext.ResolutionMicrosecond},
		{"2024-02-29 13:04:05.000000001", "2024-02-29 13:04:05.000000001", caltext.ResolutionNanosecond},
		{time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), "2024-02-29", caltext.ResolutionDay},
		{time.Date(2024, 2, 29, 13, 4, 5, 0, time.UTC), "2024-02-29 13:04:05", caltext.ResolutionSecond},
		{time.Date(2024, 2, 29, 13, 4, 5, 7000000, time.UTC), "2024-02-29 13:04:05.007", caltext.ResolutionMillisecond},
	} {
		var tp column.TimePoint
		require.NoError(t, tp.Scan(tc.src), tc.src)
		require.Equal(t, tc.res, tp.V.Resolution, tc.src)
		require.Equal(t, tc.want, tp.String())
		v, err := tp.Value()
		require.NoError(t, err)
		require.Equal(t, tc.want, v)
	}

	// A declared sub-day resolution is retained for time.Time sources.
	tp := column.TimePoint{V: caltext.TimePoint{Resolution: caltext.ResolutionSecond}}
	require.NoError(t, tp.Scan(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "2024-02-29 00:00:00", tp.String())

	var null column.NullTimePoint
	v, err := null.Value()
	require.NoError(t, err)
	require.Nil(t, v)
}
