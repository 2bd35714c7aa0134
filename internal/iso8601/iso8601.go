// Package iso8601 converts ISO-8601 text to and from structured
// date/time values. It recognizes calendar dates (2006-01-02), week
// dates (2006-W01-2), ordinal dates (2006-002), times of day
// (15:04:05.999999999+02:00) and combined forms joined by 'T'. Parsing
// is deliberately strict about digit counts so ordinary numbers and free
// text never masquerade as dates.
package iso8601

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/datakit/pkg/value"
)

// Parse interprets s as an ISO-8601 date, time, or combined date-time.
// The second result is false when s is not date/time text.
func Parse(s string) (value.DateTime, bool) {
	if i := strings.IndexByte(s, 'T'); i > 0 {
		date, ok := parseDate(s[:i])
		if !ok {
			return value.DateTime{}, false
		}
		t, ok := parseTime(s[i+1:])
		if !ok {
			return value.DateTime{}, false
		}
		return value.Combine(date, t), true
	}
	if date, ok := parseDate(s); ok {
		return value.DateTime{Kind: value.DateTimeDate, Date: date}, true
	}
	if t, ok := parseTime(s); ok {
		return value.DateTime{Kind: value.DateTimeTime, Time: t}, true
	}
	return value.DateTime{}, false
}

// digits parses exactly n ASCII digits from s.
func digits(s string, n int) (int, bool) {
	if len(s) != n {
		return 0, false
	}
	v := 0
	for i := 0; i < n; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}

// parseDate recognizes the three addressing forms: YYYY-MM-DD,
// YYYY-Www-D and YYYY-DDD.
func parseDate(s string) (value.Date, bool) {
	if len(s) < 8 || s[4] != '-' {
		return value.Date{}, false
	}
	year, ok := digits(s[:4], 4)
	if !ok {
		return value.Date{}, false
	}
	rest := s[5:]

	// Week date: Www-D.
	if rest[0] == 'W' {
		if len(rest) != 5 || rest[3] != '-' {
			return value.Date{}, false
		}
		week, ok := digits(rest[1:3], 2)
		if !ok || week < 1 || week > 53 {
			return value.Date{}, false
		}
		day, ok := digits(rest[4:5], 1)
		if !ok || day < 1 || day > 7 {
			return value.Date{}, false
		}
		return value.Date{Kind: value.DateYearWeekDay, Year: year, Week: week, DayInWeek: day}, true
	}

	// Calendar date: MM-DD.
	if len(rest) == 5 && rest[2] == '-' {
		month, ok := digits(rest[:2], 2)
		if !ok || month < 1 || month > 12 {
			return value.Date{}, false
		}
		day, ok := digits(rest[3:5], 2)
		if !ok || day < 1 || day > 31 {
			return value.Date{}, false
		}
		return value.Date{Kind: value.DateYearMonthDay, Year: year, Month: month, Day: day}, true
	}

	// Ordinal date: DDD.
	if len(rest) == 3 {
		doy, ok := digits(rest, 3)
		if !ok || doy < 1 || doy > 366 {
			return value.Date{}, false
		}
		return value.Date{Kind: value.DateYearDay, Year: year, DayInYear: doy}, true
	}

	return value.Date{}, false
}

// parseTime recognizes hh:mm and hh:mm:ss with an optional fraction and
// an optional zone designator.
func parseTime(s string) (value.Time, bool) {
	zone, s, ok := splitZone(s)
	if !ok {
		return value.Time{}, false
	}
	if len(s) < 5 || s[2] != ':' {
		return value.Time{}, false
	}
	hour, ok := digits(s[:2], 2)
	if !ok || hour > 23 {
		return value.Time{}, false
	}
	minute, ok := digits(s[3:5], 2)
	if !ok || minute > 59 {
		return value.Time{}, false
	}
	t := value.Time{Hour: hour, Minute: minute, Zone: zone}
	s = s[5:]
	if s == "" {
		return t, true
	}
	if s[0] != ':' || len(s) < 3 {
		return value.Time{}, false
	}
	second, ok := digits(s[1:3], 2)
	if !ok || second > 60 {
		return value.Time{}, false
	}
	t.Second = second
	s = s[3:]
	if s == "" {
		return t, true
	}
	if s[0] != '.' && s[0] != ',' {
		return value.Time{}, false
	}
	frac := s[1:]
	if frac == "" || len(frac) > 9 {
		return value.Time{}, false
	}
	padded := frac + strings.Repeat("0", 9-len(frac))
	milli, ok1 := digits(padded[0:3], 3)
	micro, ok2 := digits(padded[3:6], 3)
	nano, ok3 := digits(padded[6:9], 3)
	if !ok1 || !ok2 || !ok3 {
		return value.Time{}, false
	}
	t.Milli, t.Micro, t.Nano = milli, micro, nano
	return t, true
}

// splitZone strips a trailing zone designator (Z, ±hh, ±hh:mm, ±hhmm)
// and returns the zone plus the remaining time text. No designator means
// UTC, matching the treatment of naive timestamps as UTC.
func splitZone(s string) (value.Zone, string, bool) {
	if strings.HasSuffix(s, "Z") {
		return value.UTC(), s[:len(s)-1], true
	}
	// Find a sign introducing the offset. The time body never contains
	// '+', and '-' cannot appear in hh:mm:ss, so the first sign wins.
	idx := strings.IndexAny(s, "+-")
	if idx < 0 {
		return value.UTC(), s, true
	}
	body, off := s[:idx], s[idx:]
	sign := 1
	if off[0] == '-' {
		sign = -1
	}
	off = off[1:]
	var hours, minutes int
	var ok bool
	switch len(off) {
	case 2:
		hours, ok = digits(off, 2)
	case 4:
		hours, ok = digits(off[:2], 2)
		if ok {
			minutes, ok = digits(off[2:], 2)
		}
	case 5:
		if off[2] != ':' {
			return value.Zone{}, "", false
		}
		hours, ok = digits(off[:2], 2)
		if ok {
			minutes, ok = digits(off[3:], 2)
		}
	default:
		return value.Zone{}, "", false
	}
	if !ok || hours > 23 || minutes > 59 {
		return value.Zone{}, "", false
	}
	return value.Offset(sign*hours, sign*minutes), body, true
}

// Format renders a structured date/time back to ISO-8601 text. It is the
// inverse of Parse for every value Parse can produce.
func Format(dt value.DateTime) string {
	switch dt.Kind {
	case value.DateTimeDate:
		return formatDate(dt.Date)
	case value.DateTimeTime:
		return formatTime(dt.Time)
	case value.DateTimeFull:
		return formatDate(dt.Date) + "T" + formatTime(dt.Time)
	}
	return ""
}

func formatDate(d value.Date) string {
	switch d.Kind {
	case value.DateYearDay:
		return fmt.Sprintf("%04d-%03d", d.Year, d.DayInYear)
	case value.DateYearMonthDay:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	case value.DateYearWeekDay:
		return fmt.Sprintf("%04d-W%02d-%d", d.Year, d.Week, d.DayInWeek)
	}
	return ""
}

func formatTime(t value.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Milli != 0 || t.Micro != 0 || t.Nano != 0 {
		frac := fmt.Sprintf("%03d%03d%03d", t.Milli, t.Micro, t.Nano)
		frac = strings.TrimRight(frac, "0")
		if frac == "" {
			frac = "0"
		}
		b.WriteByte('.')
		b.WriteString(frac)
	}
	switch t.Zone.Kind {
	case value.ZoneUTC:
		b.WriteByte('Z')
	case value.ZoneOffset:
		hours, minutes := t.Zone.Hours, t.Zone.Minutes
		sign := byte('+')
		if hours < 0 || minutes < 0 {
			sign = '-'
			if hours < 0 {
				hours = -hours
			}
			if minutes < 0 {
				minutes = -minutes
			}
		}
		fmt.Fprintf(&b, "%c%02d:%02d", sign, hours, minutes)
	}
	return b.String()
}
