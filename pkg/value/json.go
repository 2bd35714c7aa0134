// Wire representation for values. Every tagged union serializes as a
// single named field whose name is the variant's lower-camel-case
// identifier; unit variants serialize as bare strings. External tooling
// consumes this shape directly, so it must be preserved exactly.
package value

import (
	"encoding/json"
	"fmt"
)

// MarshalTagged wraps a payload in a one-key object: {"tag": payload}.
func MarshalTagged(tag string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 0, len(tag)+len(raw)+4)
	buf = append(buf, '{', '"')
	buf = append(buf, tag...)
	buf = append(buf, '"', ':')
	buf = append(buf, raw...)
	buf = append(buf, '}')
	return buf, nil
}

// UnmarshalTagged splits a one-key object into its tag and raw payload.
func UnmarshalTagged(data []byte) (string, json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return "", nil, err
	}
	if len(m) != 1 {
		return "", nil, fmt.Errorf("expected a single variant key, got %d keys", len(m))
	}
	for tag, raw := range m {
		return tag, raw, nil
	}
	return "", nil, nil
}

// MarshalJSON encodes the type tag as its wire identifier string.
func (t Type) MarshalJSON() ([]byte, error) {
	name, ok := typeNames[t]
	if !ok {
		return nil, fmt.Errorf("invalid value type %d", int(t))
	}
	return json.Marshal(name)
}

// UnmarshalJSON decodes a type tag from its wire identifier string.
func (t *Type) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for typ, n := range typeNames {
		if n == name {
			*t = typ
			return nil
		}
	}
	return fmt.Errorf("unknown value type %q", name)
}

// MarshalJSON encodes the Empty tag as "expected" or "unexpected".
func (e Empty) MarshalJSON() ([]byte, error) {
	switch e {
	case Unexpected:
		return json.Marshal("unexpected")
	case Expected:
		return json.Marshal("expected")
	}
	return nil, fmt.Errorf("invalid missing tag %d", int(e))
}

// UnmarshalJSON decodes the Empty tag.
func (e *Empty) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "unexpected":
		*e = Unexpected
	case "expected":
		*e = Expected
	default:
		return fmt.Errorf("unknown missing tag %q", name)
	}
	return nil
}

// MarshalJSON encodes a numeric as {"integer": i}, {"real": r} or
// {"complex": [re, im]}.
func (n Numeric) MarshalJSON() ([]byte, error) {
	switch n.Kind {
	case NumericInteger:
		return MarshalTagged("integer", n.Int)
	case NumericReal:
		return MarshalTagged("real", n.Real)
	case NumericComplex:
		return MarshalTagged("complex", [2]float64{n.Real, n.Imag})
	}
	return nil, fmt.Errorf("invalid numeric kind %d", int(n.Kind))
}

// UnmarshalJSON decodes a numeric from its tagged form.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	tag, raw, err := UnmarshalTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "integer":
		n.Kind = NumericInteger
		return json.Unmarshal(raw, &n.Int)
	case "real":
		n.Kind = NumericReal
		return json.Unmarshal(raw, &n.Real)
	case "complex":
		var pair [2]float64
		if err := json.Unmarshal(raw, &pair); err != nil {
			return err
		}
		n.Kind = NumericComplex
		n.Real, n.Imag = pair[0], pair[1]
		return nil
	}
	return fmt.Errorf("unknown numeric variant %q", tag)
}

type offsetJSON struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// MarshalJSON encodes a zone as "utc" or {"offset": {...}}.
func (z Zone) MarshalJSON() ([]byte, error) {
	switch z.Kind {
	case ZoneUTC:
		return json.Marshal("utc")
	case ZoneOffset:
		return MarshalTagged("offset", offsetJSON{Hours: z.Hours, Minutes: z.Minutes})
	}
	return nil, fmt.Errorf("invalid zone kind %d", int(z.Kind))
}

// UnmarshalJSON decodes a zone.
func (z *Zone) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if name != "utc" {
			return fmt.Errorf("unknown zone variant %q", name)
		}
		*z = Zone{Kind: ZoneUTC}
		return nil
	}
	tag, raw, err := UnmarshalTagged(data)
	if err != nil {
		return err
	}
	if tag != "offset" {
		return fmt.Errorf("unknown zone variant %q", tag)
	}
	var off offsetJSON
	if err := json.Unmarshal(raw, &off); err != nil {
		return err
	}
	*z = Zone{Kind: ZoneOffset, Hours: off.Hours, Minutes: off.Minutes}
	return nil
}

type timeJSON struct {
	Hour     int  `json:"hour"`
	Minute   int  `json:"minute"`
	Second   int  `json:"second"`
	Milli    int  `json:"milli"`
	Micro    int  `json:"micro"`
	Nano     int  `json:"nano"`
	Timezone Zone `json:"timezone"`
}

// MarshalJSON encodes a time of day with camelCase fields.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(timeJSON{
		Hour: t.Hour, Minute: t.Minute, Second: t.Second,
		Milli: t.Milli, Micro: t.Micro, Nano: t.Nano,
		Timezone: t.Zone,
	})
}

// UnmarshalJSON decodes a time of day.
func (t *Time) UnmarshalJSON(data []byte) error {
	var tj timeJSON
	if err := json.Unmarshal(data, &tj); err != nil {
		return err
	}
	*t = Time{
		Hour: tj.Hour, Minute: tj.Minute, Second: tj.Second,
		Milli: tj.Milli, Micro: tj.Micro, Nano: tj.Nano,
		Zone: tj.Timezone,
	}
	return nil
}

type yearDayJSON struct {
	Year      int `json:"year"`
	DayInYear int `json:"dayInYear"`
}

type yearMonthDayJSON struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type yearWeekDayJSON struct {
	Year       int `json:"year"`
	WeekInYear int `json:"weekInYear"`
	DayInWeek  int `json:"dayInWeek"`
}

// MarshalJSON encodes a date in its tagged addressing form.
func (d Date) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case DateYearDay:
		return MarshalTagged("yearDay", yearDayJSON{Year: d.Year, DayInYear: d.DayInYear})
	case DateYearMonthDay:
		return MarshalTagged("yearMonthDay", yearMonthDayJSON{Year: d.Year, Month: d.Month, Day: d.Day})
	case DateYearWeekDay:
		return MarshalTagged("yearWeekDay", yearWeekDayJSON{Year: d.Year, WeekInYear: d.Week, DayInWeek: d.DayInWeek})
	}
	return nil, fmt.Errorf("invalid date kind %d", int(d.Kind))
}

// UnmarshalJSON decodes a date from its tagged form.
func (d *Date) UnmarshalJSON(data []byte) error {
	tag, raw, err := UnmarshalTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "yearDay":
		var yd yearDayJSON
		if err := json.Unmarshal(raw, &yd); err != nil {
			return err
		}
		*d = Date{Kind: DateYearDay, Year: yd.Year, DayInYear: yd.DayInYear}
		return nil
	case "yearMonthDay":
		var ymd yearMonthDayJSON
		if err := json.Unmarshal(raw, &ymd); err != nil {
			return err
		}
		*d = Date{Kind: DateYearMonthDay, Year: ymd.Year, Month: ymd.Month, Day: ymd.Day}
		return nil
	case "yearWeekDay":
		var ywd yearWeekDayJSON
		if err := json.Unmarshal(raw, &ywd); err != nil {
			return err
		}
		*d = Date{Kind: DateYearWeekDay, Year: ywd.Year, Week: ywd.WeekInYear, DayInWeek: ywd.DayInWeek}
		return nil
	}
	return fmt.Errorf("unknown date variant %q", tag)
}

type fullJSON struct {
	Date Date `json:"date"`
	Time Time `json:"time"`
}

// MarshalJSON encodes a date/time as {"date": ...}, {"time": ...} or
// {"full": {"date": ..., "time": ...}}.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	switch dt.Kind {
	case DateTimeDate:
		return MarshalTagged("date", dt.Date)
	case DateTimeTime:
		return MarshalTagged("time", dt.Time)
	case DateTimeFull:
		return MarshalTagged("full", fullJSON{Date: dt.Date, Time: dt.Time})
	}
	return nil, fmt.Errorf("invalid dateTime kind %d", int(dt.Kind))
}

// UnmarshalJSON decodes a date/time from its tagged form.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	tag, raw, err := UnmarshalTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "date":
		dt.Kind = DateTimeDate
		dt.Time = Time{}
		return json.Unmarshal(raw, &dt.Date)
	case "time":
		dt.Kind = DateTimeTime
		dt.Date = Date{}
		return json.Unmarshal(raw, &dt.Time)
	case "full":
		var f fullJSON
		if err := json.Unmarshal(raw, &f); err != nil {
			return err
		}
		*dt = DateTime{Kind: DateTimeFull, Date: f.Date, Time: f.Time}
		return nil
	}
	return fmt.Errorf("unknown dateTime variant %q", tag)
}

// MarshalJSON encodes an object member as a two-element [name, value]
// pair, preserving order and duplicate names.
func (m Member) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{m.Name, m.Value})
}

// UnmarshalJSON decodes an object member from its pair form.
func (m *Member) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &m.Name); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &m.Value)
}

// MarshalJSON encodes a collection as {"array": [...]} or
// {"object": [[name, value], ...]}.
func (c Collection) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CollectionArray:
		items := c.Items
		if items == nil {
			items = []Value{}
		}
		return MarshalTagged("array", items)
	case CollectionObject:
		members := c.Members
		if members == nil {
			members = []Member{}
		}
		return MarshalTagged("object", members)
	}
	return nil, fmt.Errorf("invalid collection kind %d", int(c.Kind))
}

// UnmarshalJSON decodes a collection from its tagged form.
func (c *Collection) UnmarshalJSON(data []byte) error {
	tag, raw, err := UnmarshalTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "array":
		c.Kind = CollectionArray
		c.Members = nil
		return json.Unmarshal(raw, &c.Items)
	case "object":
		c.Kind = CollectionObject
		c.Items = nil
		return json.Unmarshal(raw, &c.Members)
	}
	return fmt.Errorf("unknown collection variant %q", tag)
}

// MarshalJSON encodes a value in its tagged wire form, e.g.
// {"text": "Jim"} or {"missing": "expected"}.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case TypeNumber:
		return MarshalTagged("number", v.num)
	case TypeText:
		return MarshalTagged("text", v.text)
	case TypeDateTime:
		return MarshalTagged("dateTime", v.dt)
	case TypeMissing:
		return MarshalTagged("missing", v.miss)
	case TypeBoolean:
		return MarshalTagged("boolean", v.b)
	case TypeComposite:
		return MarshalTagged("composite", v.coll)
	}
	return nil, fmt.Errorf("invalid value kind %d", int(v.kind))
}

// UnmarshalJSON decodes a value from its tagged wire form.
func (v *Value) UnmarshalJSON(data []byte) error {
	tag, raw, err := UnmarshalTagged(data)
	if err != nil {
		return err
	}
	switch tag {
	case "number":
		var n Numeric
		if err := json.Unmarshal(raw, &n); err != nil {
			return err
		}
		*v = Value{kind: TypeNumber, num: n}
		return nil
	case "text":
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*v = Value{kind: TypeText, text: s}
		return nil
	case "dateTime":
		var dt DateTime
		if err := json.Unmarshal(raw, &dt); err != nil {
			return err
		}
		*v = Value{kind: TypeDateTime, dt: dt}
		return nil
	case "missing":
		var e Empty
		if err := json.Unmarshal(raw, &e); err != nil {
			return err
		}
		*v = Value{kind: TypeMissing, miss: e}
		return nil
	case "boolean":
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return err
		}
		*v = Value{kind: TypeBoolean, b: b}
		return nil
	case "composite":
		var c Collection
		if err := json.Unmarshal(raw, &c); err != nil {
			return err
		}
		*v = Value{kind: TypeComposite, coll: c}
		return nil
	}
	return fmt.Errorf("unknown value variant %q", tag)
}
