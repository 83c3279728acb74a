// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caltext

import (
	"fmt"
	"time"
)

// FormatDuration formats d as [-]H:MM:SS.mmm where H has as many digits as
// needed and the minutes, seconds and milliseconds are zero padded to 2, 2 and
// 3 digits. Any sub-millisecond component of d is truncated.
func FormatDuration(d time.Duration) string {
	sign := ""
	mag := uint64(d)
	if d < 0 {
		sign = "-"
		mag = uint64(-d) // -math.MinInt64 wraps to its own magnitude.
	}
	h := mag / uint64(time.Hour)
	mag -= h * uint64(time.Hour)
	m := mag / uint64(time.Minute)
	mag -= m * uint64(time.Minute)
	s := mag / uint64(time.Second)
	mag -= s * uint64(time.Second)
	ms := mag / uint64(time.Millisecond)
	return fmt.Sprintf("%s%d:%02d:%02d.%03d", sign, h, m, s, ms)
}

// ParseDuration parses durations in the format [-]H:M:S[.ms], where the
// hours may have any number of digits, the minutes and seconds one or two
// and the milliseconds one to three. A leading '-' negates the entire duration.
func ParseDuration(s string) (time.Duration, error) {
	sc := scanner{s: s}
	negative := sc.accept('-')
	h, ok := sc.unsigned(0)
	if !ok || !sc.accept(':') {
		return 0, newFormatError(durationGrammar, s)
	}
	m, ok := sc.unsigned(2)
	if !ok || !sc.accept(':') {
		return 0, newFormatError(durationGrammar, s)
	}
	sec, ok := sc.unsigned(2)
	if !ok {
		return 0, newFormatError(durationGrammar, s)
	}
	var ms int64
	if sc.accept('.') {
		if ms, ok = sc.unsigned(3); !ok {
			return 0, newFormatError(durationGrammar, s)
		}
	}
	if !sc.done() || m >= 60 || sec >= 60 || h > int64(maxDurationHours) {
		return 0, newFormatError(durationGrammar, s)
	}
	d := time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(ms)*time.Millisecond
	if d < 0 {
		// overflow.
		return 0, newFormatError(durationGrammar, s)
	}
	if negative {
		return -d, nil
	}
	return d, nil
}

const maxDurationHours = int64(1<<63-1) / int64(time.Hour)
