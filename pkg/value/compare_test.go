package value

import (
	"math"
	"testing"
)

func TestCompareWithinKind(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"integers", NewInt(1), NewInt(2), -1},
		{"equal integers", NewInt(5), NewInt(5), 0},
		{"reals", NewReal(2.5), NewReal(1.5), 1},
		{"complex by real part", NewComplex(1, 9), NewComplex(2, 0), -1},
		{"complex by imaginary part", NewComplex(1, 1), NewComplex(1, 2), -1},
		{"text lexicographic", NewText("apple"), NewText("banana"), -1},
		{"equal text", NewText("x"), NewText("x"), 0},
		{"bool false before true", NewBool(false), NewBool(true), -1},
		{"missing unexpected before expected", NewMissing(Unexpected), NewMissing(Expected), -1},
		{"dates", NewDateTime(YMD(2024, 1, 2)), NewDateTime(YMD(2024, 1, 3)), -1},
		{"times", NewDateTime(HMS(10, 0, 0)), NewDateTime(HMS(9, 59, 59)), 1},
		{
			"arrays elementwise",
			NewArray(NewInt(1), NewInt(2)),
			NewArray(NewInt(1), NewInt(3)),
			-1,
		},
		{
			"shorter array first on shared prefix",
			NewArray(NewInt(1)),
			NewArray(NewInt(1), NewInt(0)),
			-1,
		},
		{
			"objects by member name first",
			NewObject(Member{Name: "a", Value: NewInt(9)}),
			NewObject(Member{Name: "b", Value: NewInt(0)}),
			-1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compare(tt.a, tt.b)
			if !ok {
				t.Fatal("Compare ok = false, want true")
			}
			if got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
		})
	}
}

// Kind rank dominates payload: every Number sorts below every Text, and
// so on through the kind declaration order.
func TestCompareAcrossKinds(t *testing.T) {
	ladder := []Value{
		NewInt(999999),
		NewText("a"),
		NewDateTime(YMD(1900, 1, 1)),
		NewMissing(Unexpected),
		NewBool(false),
		NewArray(),
	}
	for i := 0; i < len(ladder)-1; i++ {
		got, ok := Compare(ladder[i], ladder[i+1])
		if !ok || got != -1 {
			t.Errorf("Compare(%v, %v) = (%d, %v), want (-1, true)",
				ladder[i].Type(), ladder[i+1].Type(), got, ok)
		}
	}
}

// Numeric sub-variant rank dominates magnitude: Integer < Real < Complex.
func TestCompareNumericSubVariants(t *testing.T) {
	if got, ok := Compare(NewInt(1000), NewReal(0.5)); !ok || got != -1 {
		t.Errorf("Compare(Integer, Real) = (%d, %v), want (-1, true)", got, ok)
	}
	if got, ok := Compare(NewReal(1000), NewComplex(0, 0)); !ok || got != -1 {
		t.Errorf("Compare(Real, Complex) = (%d, %v), want (-1, true)", got, ok)
	}
}

func TestCompareNaN(t *testing.T) {
	nan := NewReal(math.NaN())

	if _, ok := Compare(nan, NewReal(1)); ok {
		t.Error("Compare(NaN, 1) ok = true, want false")
	}
	if _, ok := Compare(NewReal(1), nan); ok {
		t.Error("Compare(1, NaN) ok = true, want false")
	}
	if Equal(nan, nan) {
		t.Error("Equal(NaN, NaN) = true, want false")
	}
	// NaN inside a collection propagates incomparability.
	if _, ok := Compare(NewArray(nan), NewArray(nan)); ok {
		t.Error("Compare([NaN], [NaN]) ok = true, want false")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same integer", NewInt(3), NewInt(3), true},
		{"different integers", NewInt(3), NewInt(4), false},
		{"integer vs real", NewInt(3), NewReal(3), false},
		{"number vs text", NewInt(3), NewText("3"), false},
		{"same datetime", NewDateTime(YMD(2024, 3, 15)), NewDateTime(YMD(2024, 3, 15)), true},
		{
			"same object",
			NewObject(Member{Name: "k", Value: NewBool(true)}),
			NewObject(Member{Name: "k", Value: NewBool(true)}),
			true,
		},
		{
			"object member order matters",
			NewObject(Member{Name: "a", Value: NewInt(1)}, Member{Name: "b", Value: NewInt(2)}),
			NewObject(Member{Name: "b", Value: NewInt(2)}, Member{Name: "a", Value: NewInt(1)}),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompareDateForms(t *testing.T) {
	// The date addressing forms rank YearDay < YearMonthDay < YearWeekDay
	// regardless of the dates they denote.
	yd := NewDateTime(YD(2024, 100))
	ymd := NewDateTime(YMD(2020, 1, 1))
	ywd := NewDateTime(YWD(2000, 1, 1))

	if got, ok := Compare(yd, ymd); !ok || got != -1 {
		t.Errorf("Compare(YD, YMD) = (%d, %v), want (-1, true)", got, ok)
	}
	if got, ok := Compare(ymd, ywd); !ok || got != -1 {
		t.Errorf("Compare(YMD, YWD) = (%d, %v), want (-1, true)", got, ok)
	}
}
