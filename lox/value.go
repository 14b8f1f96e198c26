package lox

import (
	"math"
	"strconv"
)

type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindNumber
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is both the literal carried by tokens and the runtime value produced
// by evaluation. The zero Value is nil.
type Value struct {
	kind ValueKind
	data any
}

func NewNil() Value             { return Value{kind: KindNil} }
func NewBool(b bool) Value      { return Value{kind: KindBool, data: b} }
func NewNumber(f float64) Value { return Value{kind: KindNumber, data: f} }
func NewString(s string) Value  { return Value{kind: KindString, data: s} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNil() bool { return v.kind == KindNil }

func (v Value) Bool() bool {
	if v.kind == KindBool {
		return v.data.(bool)
	}
	return false
}

func (v Value) Number() float64 {
	if v.kind == KindNumber {
		return v.data.(float64)
	}
	return 0
}

func (v Value) Str() string {
	if v.kind == KindString {
		return v.data.(string)
	}
	return ""
}

// Truthy reports whether v counts as true in a condition: only nil and false
// are falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.Bool()
	default:
		return true
	}
}

// Equal compares values of the same kind by their underlying value. Values of
// different kinds are never equal. NaN is not equal to itself.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.Bool() == other.Bool()
	case KindNumber:
		return v.Number() == other.Number()
	case KindString:
		return v.Str() == other.Str()
	default:
		return false
	}
}

// String returns the display form used by print statements.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v.Number())
	case KindString:
		return v.Str()
	default:
		return ""
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
