// File: value.go
// Title: Typed Evaluation Values
// Description: The value model produced by expression evaluation: null,
//              boolean, integer, float and string variants with total
//              conversions between them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-17
// Modified: 2026-08-17
//
// Change History:
// - 2026-08-17 v0.1.0: Initial value model implementation

package eval

import (
	"strconv"
	"strings"
)

// ValueType identifies the variant a Value holds
type ValueType int

const (
	ValueTypeNull ValueType = iota
	ValueTypeBoolean
	ValueTypeInteger
	ValueTypeFloat
	ValueTypeString
)

// String returns a human-readable type name
func (t ValueType) String() string {
	switch t {
	case ValueTypeNull:
		return "null"
	case ValueTypeBoolean:
		return "boolean"
	case ValueTypeInteger:
		return "integer"
	case ValueTypeFloat:
		return "float"
	case ValueTypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is one evaluation result. Values are produced fresh by every
// operation and carry no references back into the syntax tree.
type Value struct {
	Type     ValueType
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
}

// NullValue returns the null value
func NullValue() Value {
	return Value{Type: ValueTypeNull}
}

// BooleanValue wraps a bool
func BooleanValue(b bool) Value {
	return Value{Type: ValueTypeBoolean, boolVal: b}
}

// IntegerValue wraps an int64
func IntegerValue(i int64) Value {
	return Value{Type: ValueTypeInteger, intVal: i}
}

// FloatValue wraps a float64
func FloatValue(f float64) Value {
	return Value{Type: ValueTypeFloat, floatVal: f}
}

// StringValue wraps a string
func StringValue(s string) Value {
	return Value{Type: ValueTypeString, strVal: s}
}

// IsNull reports whether the value is the null value
func (v Value) IsNull() bool {
	return v.Type == ValueTypeNull
}

// AsBoolean converts totally: null, zero numbers and the empty string
// are false, everything else is true
func (v Value) AsBoolean() bool {
	switch v.Type {
	case ValueTypeBoolean:
		return v.boolVal
	case ValueTypeInteger:
		return v.intVal != 0
	case ValueTypeFloat:
		return v.floatVal != 0
	case ValueTypeString:
		return v.strVal != ""
	default:
		return false
	}
}

// AsInteger converts totally: booleans become 0 or 1, floats truncate,
// strings parse best-effort and fall back to 0
func (v Value) AsInteger() int64 {
	switch v.Type {
	case ValueTypeBoolean:
		if v.boolVal {
			return 1
		}
		return 0
	case ValueTypeInteger:
		return v.intVal
	case ValueTypeFloat:
		return int64(v.floatVal)
	case ValueTypeString:
		if i, err := strconv.ParseInt(v.strVal, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(v.strVal, 64); err == nil {
			return int64(f)
		}
		return 0
	default:
		return 0
	}
}

// AsFloat converts totally, with the same fallbacks as AsInteger
func (v Value) AsFloat() float64 {
	switch v.Type {
	case ValueTypeBoolean:
		if v.boolVal {
			return 1
		}
		return 0
	case ValueTypeInteger:
		return float64(v.intVal)
	case ValueTypeFloat:
		return v.floatVal
	case ValueTypeString:
		if f, err := strconv.ParseFloat(v.strVal, 64); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}

// AsString converts totally; null renders as "null"
func (v Value) AsString() string {
	switch v.Type {
	case ValueTypeBoolean:
		return strconv.FormatBool(v.boolVal)
	case ValueTypeInteger:
		return strconv.FormatInt(v.intVal, 10)
	case ValueTypeFloat:
		return strconv.FormatFloat(v.floatVal, 'g', -1, 64)
	case ValueTypeString:
		return v.strVal
	default:
		return "null"
	}
}

// String implements fmt.Stringer using the string conversion
func (v Value) String() string {
	return v.AsString()
}

// numberValue builds a Value from a number lexeme. Unit suffixes such
// as 250ms are accepted; only the numeric prefix counts. A dot makes
// the result a float, otherwise it is an integer (falling back to
// float for out-of-range literals).
func numberValue(lexeme string) Value {
	digits := lexeme
	for len(digits) > 0 && isUnitLetter(digits[len(digits)-1]) {
		digits = digits[:len(digits)-1]
	}

	if !strings.Contains(digits, ".") {
		if i, err := strconv.ParseInt(digits, 10, 64); err == nil {
			return IntegerValue(i)
		}
	}
	if f, err := strconv.ParseFloat(digits, 64); err == nil {
		return FloatValue(f)
	}
	return IntegerValue(0)
}

func isUnitLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
