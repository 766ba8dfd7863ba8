// Package validation parses the raw strings held by calculator forms and
// checks them against per-parameter ranges and cross-field constraints.
package validation

import (
	"math"
	"strconv"
	"strings"
)

// IsNumeric reports whether s, trimmed, is a finite number.
func IsNumeric(s string) bool {
	_, ok := parse(s)
	return ok
}

func parse(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if strings.ContainsRune(s, '_') {
		return 0, false
	}
	if len(s) > 2 && s[0] == '0' {
		if base, ok := radix[s[1]]; ok {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// radix maps the integer prefixes a form may use to their base. Go's own
// float syntax (hex mantissas, digit separators) is not accepted.
var radix = map[byte]int{'x': 16, 'X': 16, 'o': 8, 'O': 8, 'b': 2, 'B': 2}

// IsInRange is an inclusive bounds check.
func IsInRange(x, min, max float64) bool {
	return x >= min && x <= max
}

func IsPositive(x float64) bool {
	return x > 0
}

func IsNonNegative(x float64) bool {
	return x >= 0
}

// IsDivisionByZero reports whether x is too close to zero to divide by.
func IsDivisionByZero(x float64) bool {
	// Number.EPSILON, not math.SmallestNonzeroFloat64
	return math.Abs(x) < 0x1p-52
}

// ValidationError checks a raw form value against [min, max]. An empty
// value is not an error: the field simply has no value yet.
func ValidationError(value, fieldName string, min, max float64) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	v, ok := parse(value)
	if !ok {
		return &FieldError{Kind: ErrNotNumeric, Field: fieldName}
	}
	return CheckRange(v, fieldName, min, max, "")
}

// CheckRange is ValidationError for an already-parsed value.
func CheckRange(v float64, fieldName string, min, max float64, unit string) error {
	if !IsInRange(v, min, max) {
		return &FieldError{Kind: ErrOutOfRange, Field: fieldName, Min: min, Max: max, Unit: unit}
	}
	return nil
}

// ValidateParameter checks a raw form value against the range registered
// for param in Ranges.
func ValidateParameter(value, param string) error {
	_, err := ParseParameter(value, param)
	return err
}

// ParseParameter parses and validates a raw value for param. It returns
// (nil, nil) for an empty value and (nil, err) when the value is unusable.
func ParseParameter(value, param string) (*float64, error) {
	r, ok := Ranges[param]
	if !ok {
		return nil, &FieldError{Kind: ErrUnknownParameter, Field: param}
	}
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	v, ok := parse(value)
	if !ok {
		return nil, &FieldError{Kind: ErrNotNumeric, Field: param}
	}
	if err := CheckRange(v, param, r.Min, r.Max, r.Unit); err != nil {
		return nil, err
	}
	return &v, nil
}

// ParseNumber parses a raw value with no range attached. It returns
// (nil, nil) for an empty value.
func ParseNumber(value, field string) (*float64, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	v, ok := parse(value)
	if !ok {
		return nil, &FieldError{Kind: ErrNotNumeric, Field: field}
	}
	return &v, nil
}

func notPositive(field string) error {
	return &FieldError{Kind: ErrNotPositive, Field: field}
}

func divisionByZero(field string) error {
	return &FieldError{Kind: ErrDivisionByZero, Field: field}
}

// ValidateQmsInputs returns nil while any input is missing. Otherwise the
// first failing rule wins.
func ValidateQmsInputs(f0, mms, rms *float64) error {
	if f0 == nil || mms == nil || rms == nil {
		return nil
	}
	if !IsPositive(*f0) {
		return notPositive("F0")
	}
	if !IsPositive(*mms) {
		return notPositive("Mms")
	}
	if IsDivisionByZero(*rms) {
		return divisionByZero("Rms")
	}
	if !IsPositive(*rms) {
		return notPositive("Rms")
	}
	return nil
}

func ValidateQtsInputs(qes, qms *float64) error {
	if qes == nil || qms == nil {
		return nil
	}
	if !IsPositive(*qes) {
		return notPositive("Qes")
	}
	if !IsPositive(*qms) {
		return notPositive("Qms")
	}
	if IsDivisionByZero(*qes + *qms) {
		return divisionByZero("Qes + Qms")
	}
	return nil
}

func ValidateXmaxInputs(vcWindingWidth, plateThickness *float64) error {
	if vcWindingWidth == nil || plateThickness == nil {
		return nil
	}
	if !IsPositive(*vcWindingWidth) {
		return notPositive("VC winding width")
	}
	if !IsPositive(*plateThickness) {
		return notPositive("Plate thickness")
	}
	if *vcWindingWidth <= *plateThickness {
		return &FieldError{Kind: ErrWindingTooNarrow, Field: "VC winding width"}
	}
	return nil
}
