package lox

import (
	"math"
	"testing"
)

func TestValueTruthiness(t *testing.T) {
	cases := []struct {
		val  Value
		want bool
	}{
		{NewNil(), false},
		{Value{}, false},
		{NewBool(false), false},
		{NewBool(true), true},
		{NewNumber(0), true},
		{NewNumber(-1), true},
		{NewString(""), true},
		{NewString("x"), true},
	}
	for _, tc := range cases {
		if got := tc.val.Truthy(); got != tc.want {
			t.Fatalf("%s (%s): got %v want %v", tc.val, tc.val.Kind(), got, tc.want)
		}
	}
}

func TestValueEquality(t *testing.T) {
	cases := []struct {
		a, b Value
		want bool
	}{
		{NewNil(), NewNil(), true},
		{NewNil(), NewBool(false), false},
		{NewBool(false), NewNil(), false},
		{NewNumber(1), NewNumber(1), true},
		{NewNumber(1), NewNumber(2), false},
		{NewNumber(1), NewString("1"), false},
		{NewString("a"), NewString("a"), true},
		{NewString("a"), NewString("b"), false},
		{NewBool(true), NewBool(true), true},
		{NewBool(true), NewNumber(1), false},
		{NewNumber(math.NaN()), NewNumber(math.NaN()), false},
	}
	for _, tc := range cases {
		if got := tc.a.Equal(tc.b); got != tc.want {
			t.Fatalf("%s == %s: got %v want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestValueDisplay(t *testing.T) {
	cases := []struct {
		val  Value
		want string
	}{
		{NewNil(), "nil"},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{NewNumber(2), "2"},
		{NewNumber(2.5), "2.5"},
		{NewNumber(-0.125), "-0.125"},
		{NewNumber(1e21), "1000000000000000000000"},
		{NewNumber(math.Inf(1)), "Infinity"},
		{NewNumber(math.Inf(-1)), "-Infinity"},
		{NewNumber(math.NaN()), "NaN"},
		{NewString("hi"), "hi"},
	}
	for _, tc := range cases {
		if got := tc.val.String(); got != tc.want {
			t.Fatalf("got %q want %q", got, tc.want)
		}
	}
}

func TestValueAccessorsOnWrongKind(t *testing.T) {
	v := NewString("x")
	if v.Number() != 0 || v.Bool() {
		t.Fatalf("accessors on the wrong kind should return zero values")
	}
	if NewNumber(1).Str() != "" {
		t.Fatalf("Str on a number should be empty")
	}
}
