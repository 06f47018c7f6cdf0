// Package httpdate converts between absolute times and the three date
// texts HTTP readers are required to accept. Output always uses the
// IMF-fixdate form; input additionally accepts the obsolete RFC 850 and
// ANSI C asctime forms.
package httpdate

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat is the canonical IMF-fixdate layout, the only form this
// package ever generates.
const TimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// Accepted layouts, ordered by how often they appear on the wire so the
// common case pays for a single parse attempt. The leading underscore
// on the day number keeps non-padded days parseable.
var timeFormats = []string{
	"Mon, _2 Jan 2006 15:04:05 GMT", // RFC 1123 / IMF-fixdate
	time.RFC850,                     // Sunday, 06-Nov-94 08:49:37 GMT
	time.ANSIC,                      // Sun Nov  6 08:49:37 1994
}

// ErrUnknownFormat reports input matching none of the accepted layouts.
var ErrUnknownFormat = errors.New("httpdate: unrecognized date")

// Format renders t as an IMF-fixdate in UTC, e.g.
// "Sun, 06 Nov 1994 08:49:37 GMT". Times whose year does not fit the
// four-digit grammar render as the empty string; callers must treat ""
// as "no valid date", never as a literal value.
func Format(t time.Time) string {
	t = t.UTC()
	if y := t.Year(); y < 1 || y > 9999 {
		return ""
	}
	return t.Format(TimeFormat)
}

// Parse decodes s against the accepted layouts in order and returns the
// first match as a UTC instant. The calendar fields are always
// interpreted as UTC, independent of the process timezone, so
// Parse(Format(t)) round-trips anywhere.
//
// On empty input or no match it returns the zero time and
// ErrUnknownFormat; legacy callers that discard the error keep the
// historical zero-value fallback.
func Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrUnknownFormat
	}
	for _, layout := range timeFormats {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Now renders the current wall-clock time through Format.
func Now() string {
	return Format(time.Now())
}
