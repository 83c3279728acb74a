// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package caltext

import "strconv"

// scanner implements the fixed, locale independent, numeric and literal
// scanning used by the parsers in this package.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) done() bool {
	return sc.pos == len(sc.s)
}

// accept consumes c if it is the next byte.
func (sc *scanner) accept(c byte) bool {
	if sc.pos < len(sc.s) && sc.s[sc.pos] == c {
		sc.pos++
		return true
	}
	return false
}

// digits consumes at most max (unlimited if max <= 0) decimal digits and
// returns them.
func (sc *scanner) digits(max int) string {
	start := sc.pos
	for sc.pos < len(sc.s) && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
		if max > 0 && sc.pos-start == max {
			break
		}
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

// unsigned scans an unsigned decimal of at most max digits.
func (sc *scanner) unsigned(max int) (int64, bool) {
	d := sc.digits(max)
	if len(d) == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(d, 10, 64)
	return n, err == nil
}

// signed scans a decimal with an optional leading sign.
func (sc *scanner) signed() (int64, bool) {
	negative := sc.accept('-')
	if !negative {
		sc.accept('+')
	}
	n, ok := sc.unsigned(0)
	if negative {
		n = -n
	}
	return n, ok
}

// Year limits, as per the proleptic Gregorian calendar of most civil
// calendar libraries.
const (
	MinYear = -32767
	MaxYear = 32767
)

// year scans a signed year in the range MinYear to MaxYear.
func (sc *scanner) year() (int, bool) {
	y, ok := sc.signed()
	if !ok || y < MinYear || y > MaxYear {
		return 0, false
	}
	return int(y), true
}

// parseYear parses s, in its entirety, as a year.
func parseYear(s string) (int, bool) {
	sc := scanner{s: s}
	y, ok := sc.year()
	return y, ok && sc.done()
}
