package value

import (
	"encoding/json"
	"testing"
)

func TestValueMarshalWireForm(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"integer", NewInt(5), `{"number":{"integer":5}}`},
		{"real", NewReal(13.7), `{"number":{"real":13.7}}`},
		{"complex", NewComplex(1, -2), `{"number":{"complex":[1,-2]}}`},
		{"text", NewText("Jim"), `{"text":"Jim"}`},
		{"boolean", NewBool(true), `{"boolean":true}`},
		{"missing expected", NewMissing(Expected), `{"missing":"expected"}`},
		{"missing unexpected", NewMissing(Unexpected), `{"missing":"unexpected"}`},
		{
			"array",
			NewArray(NewInt(1), NewText("a")),
			`{"composite":{"array":[{"number":{"integer":1}},{"text":"a"}]}}`,
		},
		{
			"object as ordered pairs",
			NewObject(Member{Name: "name", Value: NewText("Jim")}),
			`{"composite":{"object":[["name",{"text":"Jim"}]]}}`,
		},
		{
			"calendar date",
			NewDateTime(YMD(2024, 3, 15)),
			`{"dateTime":{"date":{"yearMonthDay":{"year":2024,"month":3,"day":15}}}}`,
		},
		{
			"week date",
			NewDateTime(YWD(2024, 11, 7)),
			`{"dateTime":{"date":{"yearWeekDay":{"year":2024,"weekInYear":11,"dayInWeek":7}}}}`,
		},
		{
			"time of day",
			NewDateTime(HMS(14, 30, 5)),
			`{"dateTime":{"time":{"hour":14,"minute":30,"second":5,"milli":0,"micro":0,"nano":0,"timezone":"utc"}}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.v)
			if err != nil {
				t.Fatalf("Marshal error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValueRoundTrip(t *testing.T) {
	values := []Value{
		NewInt(-42),
		NewReal(0.125),
		NewComplex(3, 4),
		NewText(""),
		NewText("hello world"),
		NewBool(false),
		NewMissing(Expected),
		NewDateTime(YD(2024, 366)),
		NewDateTime(Combine(
			Date{Kind: DateYearMonthDay, Year: 2024, Month: 3, Day: 15},
			Time{Hour: 14, Minute: 30, Second: 5, Milli: 123, Zone: Offset(2, 0)},
		)),
		NewArray(),
		NewArray(NewArray(NewInt(1)), NewObject()),
		NewObject(
			Member{Name: "dup", Value: NewInt(1)},
			Member{Name: "dup", Value: NewInt(2)},
		),
	}
	for _, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", v.Type(), err)
		}
		var back Value
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", data, err)
		}
		if !Equal(v, back) {
			t.Errorf("round trip changed value: %s", data)
		}
	}
}

// Duplicate member names and member order must survive the round trip.
func TestObjectOrderPreserved(t *testing.T) {
	v := NewObject(
		Member{Name: "b", Value: NewInt(1)},
		Member{Name: "a", Value: NewInt(2)},
		Member{Name: "b", Value: NewInt(3)},
	)
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"composite":{"object":[["b",{"number":{"integer":1}}],["a",{"number":{"integer":2}}],["b",{"number":{"integer":3}}]]}}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
}

func TestValueUnmarshalRejectsUnknownVariant(t *testing.T) {
	inputs := []string{
		`{"nope":1}`,
		`{"number":{"nope":1}}`,
		`{"missing":"sometimes"}`,
		`{"number":{"integer":1},"text":"x"}`,
	}
	for _, in := range inputs {
		var v Value
		if err := json.Unmarshal([]byte(in), &v); err == nil {
			t.Errorf("Unmarshal(%s) error = nil, want error", in)
		}
	}
}

func TestZoneWireForm(t *testing.T) {
	data, err := json.Marshal(Offset(-5, -30))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"offset":{"hours":-5,"minutes":-30}}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
	var z Zone
	if err := json.Unmarshal(data, &z); err != nil {
		t.Fatal(err)
	}
	if z != Offset(-5, -30) {
		t.Errorf("round trip = %+v", z)
	}
}
