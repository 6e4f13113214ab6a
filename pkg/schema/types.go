package schema

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Type is the expected type of an option value as written in the schema.
// Unknown strings are kept verbatim so they can be reported.
type Type string

const (
	// TypeNone means the rule declares no type.
	TypeNone Type = ""

	// TypeInt accepts base-10 integers of any size.
	TypeInt Type = "int"

	// TypeFloat accepts floating point literals.
	TypeFloat Type = "float"

	// TypeBool accepts the literals listed in boolLiterals.
	TypeBool Type = "bool"

	// TypeStr accepts anything.
	TypeStr Type = "str"
)

// boolLiterals are matched case-insensitively.
var boolLiterals = map[string]bool{
	"true":  true,
	"false": false,
	"yes":   true,
	"no":    false,
	"on":    true,
	"off":   false,
	"1":     true,
	"0":     false,
}

// KnownTypes returns the recognized type names.
func KnownTypes() []Type {
	return []Type{TypeInt, TypeFloat, TypeBool, TypeStr}
}

// IsKnown reports whether t is absent or one of the recognized types.
func (t Type) IsKnown() bool {
	switch t {
	case TypeNone, TypeInt, TypeFloat, TypeBool, TypeStr:
		return true
	default:
		return false
	}
}

// Accepts reports whether value is a valid literal for t.
// Unknown types accept nothing.
func (t Type) Accepts(value string) bool {
	switch t {
	case TypeNone, TypeStr:
		return true
	case TypeInt:
		return IsInt(value)
	case TypeFloat:
		return IsFloat(value)
	case TypeBool:
		return IsBool(value)
	default:
		return false
	}
}

// String returns the type name, or "str" when no type is declared.
func (t Type) String() string {
	if t == TypeNone {
		return string(TypeStr)
	}

	return string(t)
}

// IsInt reports whether value is a signed base-10 integer.
func IsInt(value string) bool {
	_, ok := new(big.Int).SetString(strings.TrimSpace(value), 10)

	return ok
}

// IsFloat reports whether value is a decimal floating point literal.
// Literals too large to represent still count as floats. Hexadecimal
// literals are rejected.
func IsFloat(value string) bool {
	value = strings.TrimSpace(value)

	digits := strings.ToLower(strings.TrimLeft(value, "+-"))
	if strings.HasPrefix(digits, "0x") {
		return false
	}

	_, err := strconv.ParseFloat(value, 64)

	return err == nil || errors.Is(err, strconv.ErrRange)
}

// IsBool reports whether value is a recognized boolean literal.
func IsBool(value string) bool {
	_, ok := ParseBool(value)

	return ok
}

// ParseBool converts a boolean literal.
func ParseBool(value string) (bool, bool) {
	b, ok := boolLiterals[strings.ToLower(strings.TrimSpace(value))]

	return b, ok
}
