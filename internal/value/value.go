// Package value holds the runtime value domain of the interpreter.
//
// The domain is closed: Nil, Bool, Number and String are the only
// implementations of Value.
package value

import (
	"fmt"
	"strconv"
)

type Type uint

const (
	NilType Type = iota
	BoolType
	NumberType
	StringType
)

var typeNames = [...]string{
	NilType:    "nil",
	BoolType:   "bool",
	NumberType: "number",
	StringType: "string",
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

type Value interface {
	Type() Type
	// String returns the display form used by print.
	String() string
	value()
}

type (
	Nil    struct{}
	Bool   bool
	Number float64
	String string
)

var (
	NilValue   = Nil{}
	TrueValue  = Bool(true)
	FalseValue = Bool(false)
)

// Type implements Value.
func (Nil) Type() Type { return NilType }

// Type implements Value.
func (Bool) Type() Type { return BoolType }

// Type implements Value.
func (Number) Type() Type { return NumberType }

// Type implements Value.
func (String) Type() Type { return StringType }

// String implements fmt.Stringer.
func (Nil) String() string { return "nil" }

// String implements fmt.Stringer.
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// String implements fmt.Stringer.
// Numbers print in their shortest round-tripping decimal form, so integral
// values carry no fractional part.
func (n Number) String() string { return strconv.FormatFloat(float64(n), 'f', -1, 64) }

// String implements fmt.Stringer.
func (s String) String() string { return string(s) }

// GoString implements fmt.GoStringer.
func (Nil) GoString() string { return "nil" }

// GoString implements fmt.GoStringer.
func (b Bool) GoString() string { return b.String() }

// GoString implements fmt.GoStringer.
func (n Number) GoString() string { return n.String() }

// GoString implements fmt.GoStringer.
func (s String) GoString() string { return strconv.Quote(string(s)) }

func (Nil) value()    {}
func (Bool) value()   {}
func (Number) value() {}
func (String) value() {}

// Of returns the Value for a Go boolean.
func Of(b bool) Value {
	if b {
		return TrueValue
	}
	return FalseValue
}

var (
	_ Value          = Nil{}
	_ Value          = Bool(false)
	_ Value          = Number(0)
	_ Value          = String("")
	_ fmt.GoStringer = Nil{}
	_ fmt.GoStringer = Bool(false)
	_ fmt.GoStringer = Number(0)
	_ fmt.GoStringer = String("")
)
