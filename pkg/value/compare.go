package value

import (
	"math"
	"strings"
)

// Compare orders two values under the derived total-ish order: kind
// declaration order first, then payload order within a kind. The result
// is -1, 0 or +1. The second result is false when the values are
// incomparable, which happens only when a float NaN is involved.
//
// Cross-kind comparisons (Text vs Number, say) are well-defined but not
// semantically meaningful; bound constraints inherit this permissiveness.
func Compare(a, b Value) (int, bool) {
	if a.kind != b.kind {
		return cmpInt(int(a.kind), int(b.kind)), true
	}
	switch a.kind {
	case TypeNumber:
		return compareNumeric(a.num, b.num)
	case TypeText:
		return strings.Compare(a.text, b.text), true
	case TypeDateTime:
		return compareDateTime(a.dt, b.dt), true
	case TypeMissing:
		return cmpInt(int(a.miss), int(b.miss)), true
	case TypeBoolean:
		return cmpBool(a.b, b.b), true
	case TypeComposite:
		return compareCollection(a.coll, b.coll)
	}
	return 0, true
}

// Equal reports structural equality: identical kind and payload. NaN is
// not equal to itself, matching float semantics.
func Equal(a, b Value) bool {
	c, ok := Compare(a, b)
	return ok && c == 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpBool(a, b bool) int {
	switch {
	case !a && b:
		return -1
	case a && !b:
		return 1
	}
	return 0
}

// cmpFloat orders two floats; ok is false when either is NaN.
func cmpFloat(a, b float64) (int, bool) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, false
	}
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	}
	return 0, true
}

func compareNumeric(a, b Numeric) (int, bool) {
	if a.Kind != b.Kind {
		// Sub-variant rank: every Integer below every Real below every
		// Complex, regardless of magnitude.
		return cmpInt(int(a.Kind), int(b.Kind)), true
	}
	switch a.Kind {
	case NumericInteger:
		return cmpInt64(a.Int, b.Int), true
	case NumericReal:
		return cmpFloat(a.Real, b.Real)
	case NumericComplex:
		if c, ok := cmpFloat(a.Real, b.Real); !ok || c != 0 {
			return c, ok
		}
		return cmpFloat(a.Imag, b.Imag)
	}
	return 0, true
}

func compareDate(a, b Date) int {
	if a.Kind != b.Kind {
		return cmpInt(int(a.Kind), int(b.Kind))
	}
	if c := cmpInt(a.Year, b.Year); c != 0 {
		return c
	}
	switch a.Kind {
	case DateYearDay:
		return cmpInt(a.DayInYear, b.DayInYear)
	case DateYearMonthDay:
		if c := cmpInt(a.Month, b.Month); c != 0 {
			return c
		}
		return cmpInt(a.Day, b.Day)
	case DateYearWeekDay:
		if c := cmpInt(a.Week, b.Week); c != 0 {
			return c
		}
		return cmpInt(a.DayInWeek, b.DayInWeek)
	}
	return 0
}

func compareZone(a, b Zone) int {
	if a.Kind != b.Kind {
		return cmpInt(int(a.Kind), int(b.Kind))
	}
	if c := cmpInt(a.Hours, b.Hours); c != 0 {
		return c
	}
	return cmpInt(a.Minutes, b.Minutes)
}

func compareTime(a, b Time) int {
	pairs := [][2]int{
		{a.Hour, b.Hour}, {a.Minute, b.Minute}, {a.Second, b.Second},
		{a.Milli, b.Milli}, {a.Micro, b.Micro}, {a.Nano, b.Nano},
	}
	for _, p := range pairs {
		if c := cmpInt(p[0], p[1]); c != 0 {
			return c
		}
	}
	return compareZone(a.Zone, b.Zone)
}

func compareDateTime(a, b DateTime) int {
	if a.Kind != b.Kind {
		return cmpInt(int(a.Kind), int(b.Kind))
	}
	switch a.Kind {
	case DateTimeDate:
		return compareDate(a.Date, b.Date)
	case DateTimeTime:
		return compareTime(a.Time, b.Time)
	case DateTimeFull:
		if c := compareDate(a.Date, b.Date); c != 0 {
			return c
		}
		return compareTime(a.Time, b.Time)
	}
	return 0
}

func compareCollection(a, b Collection) (int, bool) {
	if a.Kind != b.Kind {
		return cmpInt(int(a.Kind), int(b.Kind)), true
	}
	switch a.Kind {
	case CollectionArray:
		// Lexicographic: elementwise, then by length.
		n := len(a.Items)
		if len(b.Items) < n {
			n = len(b.Items)
		}
		for i := 0; i < n; i++ {
			if c, ok := Compare(a.Items[i], b.Items[i]); !ok || c != 0 {
				return c, ok
			}
		}
		return cmpInt(len(a.Items), len(b.Items)), true
	case CollectionObject:
		n := len(a.Members)
		if len(b.Members) < n {
			n = len(b.Members)
		}
		for i := 0; i < n; i++ {
			if c := strings.Compare(a.Members[i].Name, b.Members[i].Name); c != 0 {
				return c, true
			}
			if c, ok := Compare(a.Members[i].Value, b.Members[i].Value); !ok || c != 0 {
				return c, ok
			}
		}
		return cmpInt(len(a.Members), len(b.Members)), true
	}
	return 0, true
}
