package value

// DateTimeKind discriminates the DateTime sub-variants. Declaration order
// is the ordering rank.
type DateTimeKind int

const (
	// DateTimeDate is a calendar date with no time of day.
	DateTimeDate DateTimeKind = iota
	// DateTimeTime is a time of day with no date.
	DateTimeTime
	// DateTimeFull combines a date and a time.
	DateTimeFull
)

// DateKind discriminates the Date sub-variants. Declaration order is the
// ordering rank.
type DateKind int

const (
	// DateYearDay addresses a day by its ordinal within the year.
	DateYearDay DateKind = iota
	// DateYearMonthDay is the usual calendar form.
	DateYearMonthDay
	// DateYearWeekDay addresses a day by ISO week and day-in-week.
	DateYearWeekDay
)

// Date is a structured calendar date in one of three addressing forms.
// Only the fields of the active Kind are meaningful.
type Date struct {
	Kind      DateKind
	Year      int
	Month     int // DateYearMonthDay
	Day       int // DateYearMonthDay
	Week      int // DateYearWeekDay
	DayInWeek int // DateYearWeekDay
	DayInYear int // DateYearDay
}

// ZoneKind discriminates the time zone sub-variants.
type ZoneKind int

const (
	ZoneUTC ZoneKind = iota
	ZoneOffset
)

// Zone is either UTC or a signed hour/minute offset from it.
type Zone struct {
	Kind    ZoneKind
	Hours   int // ZoneOffset; carries the sign
	Minutes int // ZoneOffset; carries the sign
}

// UTC returns the UTC zone.
func UTC() Zone {
	return Zone{Kind: ZoneUTC}
}

// Offset returns a fixed-offset zone.
func Offset(hours, minutes int) Zone {
	return Zone{Kind: ZoneOffset, Hours: hours, Minutes: minutes}
}

// Time is a structured time of day. The sub-second fields each hold a
// 0-999 component rather than a single nanosecond count.
type Time struct {
	Hour   int
	Minute int
	Second int
	Milli  int
	Micro  int
	Nano   int
	Zone   Zone
}

// DateTime is a structured date, time, or both. Only the fields of the
// active Kind are meaningful.
type DateTime struct {
	Kind DateTimeKind
	Date Date // DateTimeDate, DateTimeFull
	Time Time // DateTimeTime, DateTimeFull
}

// YMD returns a date-only DateTime in year/month/day form.
func YMD(year, month, day int) DateTime {
	return DateTime{
		Kind: DateTimeDate,
		Date: Date{Kind: DateYearMonthDay, Year: year, Month: month, Day: day},
	}
}

// YWD returns a date-only DateTime in year/week/day-in-week form.
func YWD(year, week, dayInWeek int) DateTime {
	return DateTime{
		Kind: DateTimeDate,
		Date: Date{Kind: DateYearWeekDay, Year: year, Week: week, DayInWeek: dayInWeek},
	}
}

// YD returns a date-only DateTime in year/day-in-year form.
func YD(year, dayInYear int) DateTime {
	return DateTime{
		Kind: DateTimeDate,
		Date: Date{Kind: DateYearDay, Year: year, DayInYear: dayInYear},
	}
}

// HMS returns a time-only DateTime at UTC with zero sub-second parts.
func HMS(hour, minute, second int) DateTime {
	return HMSIn(hour, minute, second, 0, 0, 0, UTC())
}

// HMSIn returns a time-only DateTime with full sub-second parts and zone.
func HMSIn(hour, minute, second, milli, micro, nano int, zone Zone) DateTime {
	return DateTime{
		Kind: DateTimeTime,
		Time: Time{
			Hour: hour, Minute: minute, Second: second,
			Milli: milli, Micro: micro, Nano: nano,
			Zone: zone,
		},
	}
}

// Combine returns a full DateTime from a date-only and a time-only value.
func Combine(date Date, t Time) DateTime {
	return DateTime{Kind: DateTimeFull, Date: date, Time: t}
}
