package overlay

import (
	"fmt"
	"math"
	"strconv"
)

// Kind tags the scalar held by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindFloat
	KindBool
	KindInt
	KindString
	// KindOther carries an arbitrary value that has no comparison rule yet.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindOther:
		return "other"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a displayed scalar.
type Value struct {
	kind  Kind
	f     float32
	b     bool
	i     int
	s     string
	other any
}

// Float wraps a float, compared approximately by the field cache.
func Float(f float32) Value { return Value{kind: KindFloat, f: f} }

// Bool wraps a boolean, shown as True or False.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps an integer.
func Int(i int) Value { return Value{kind: KindInt, i: i} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Other wraps a value the field cache has no comparison rule for.
func Other(v any) Value { return Value{kind: KindOther, other: v} }

// Kind returns which constructor built v.
func (v Value) Kind() Kind { return v.kind }

// Float returns the wrapped float, or zero for other kinds.
func (v Value) Float() float32 { return v.f }

// Bool returns the wrapped boolean, or false for other kinds.
func (v Value) Bool() bool { return v.b }

// Int returns the wrapped integer, or zero for other kinds.
func (v Value) Int() int { return v.i }

// Raw returns the value passed to Other.
func (v Value) Raw() any { return v.other }

// String formats the value the way it is shown in an entry.
func (v Value) String() string {
	switch v.kind {
	case KindFloat:
		return strconv.FormatFloat(float64(v.f), 'f', 2, 32)
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindInt:
		return strconv.Itoa(v.i)
	case KindString:
		return v.s
	case KindOther:
		return fmt.Sprint(v.other)
	}
	return ""
}

// GoString includes the kind, used in diagnostics.
func (v Value) GoString() string {
	return v.String() + " (" + v.kind.String() + ")"
}

// smallest positive float32, Unity's Mathf.Epsilon
const float32Epsilon = math.SmallestNonzeroFloat32

// Approximately reports whether a and b are equal within a tolerance relative
// to their magnitude.
func Approximately(a, b float32) bool {
	diff := math.Abs(float64(b - a))
	magnitude := math.Max(math.Abs(float64(a)), math.Abs(float64(b)))
	return diff < math.Max(1e-6*magnitude, float32Epsilon*8)
}

// comparer decides whether a displayed value changed.
type comparer struct {
	// tolerance replaces Approximately with an absolute bound when > 0.
	tolerance float32
}

// changed reports whether next differs from prev. uncovered is set when both
// values share a kind that has no comparison rule.
func (c comparer) changed(prev, next Value) (changed, uncovered bool) {
	if prev.kind != next.kind {
		return true, false
	}
	switch prev.kind {
	case KindFloat:
		if c.tolerance > 0 {
			return math.Abs(float64(prev.f-next.f)) > float64(c.tolerance), false
		}
		return !Approximately(prev.f, next.f), false
	case KindBool:
		return prev.b != next.b, false
	case KindInt:
		return prev.i != next.i, false
	case KindString:
		return prev.s != next.s, false
	}
	return true, true
}
