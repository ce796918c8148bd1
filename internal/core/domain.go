package core

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	PerHour PayFrequency = "per hour"
	PerYear PayFrequency = "per year"
)

const (
	Add      Operation = "add"
	Subtract Operation = "subtract"
)

type (
	// PayFrequency tells whether a salary is an hourly rate or a yearly total.
	PayFrequency string

	// Operation selects how Money.Combine merges two amounts.
	Operation string
)

var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInvalidFamily    = errors.New("family is not valid")
	ErrUnknownCurrency  = errors.New("unknown currency")
)

// Valid reports whether op is one of the supported operations.
func (op Operation) Valid() bool {
	switch op {
	case Add, Subtract:
		return true
	}
	return false
}

// ParseOperation maps a selector such as "add" to an Operation.
// Unknown selectors are returned as-is so Combine can reject them.
func ParseOperation(s string) Operation {
	return Operation(strings.ToLower(strings.TrimSpace(s)))
}

// FormatAmount renders a float the way the demo output expects:
// shortest round-trip digits, always with a fractional part.
//
// Examples:
//   FormatAmount(10)      -> "10.0"
//   FormatAmount(34.5)    -> "34.5"
//   FormatAmount(-2)      -> "-2.0"
//   FormatAmount(NaN)     -> "nan"
func FormatAmount(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
