package validation

import (
	"errors"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Sentinel errors for the validation package.
// Use errors.Is to check: errors.Is(err, validation.ErrOutOfRange)
var (
	ErrNotNumeric       = errors.New("validation: not a valid number")
	ErrOutOfRange       = errors.New("validation: value out of range")
	ErrNotPositive      = errors.New("validation: value must be positive")
	ErrDivisionByZero   = errors.New("validation: division by zero")
	ErrWindingTooNarrow = errors.New("validation: winding width must exceed plate thickness")
	ErrPanelTooThick    = errors.New("validation: panel too thick for external dimensions")
	ErrUnknownParameter = errors.New("validation: unknown parameter")
	ErrUnknownMode      = errors.New("validation: unknown calculation mode")
)

// FieldError is a failed check on one named input. Message renders it
// for a user; Unwrap exposes the sentinel.
type FieldError struct {
	Kind  error
	Field string
	Min   float64
	Max   float64
	Unit  string
}

func (e *FieldError) Error() string {
	return e.Message(nil)
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

var english = message.NewPrinter(language.English)

// Message renders the error through p, or in English when p is nil.
func (e *FieldError) Message(p *message.Printer) string {
	if p == nil {
		p = english
	}
	switch e.Kind {
	case ErrNotNumeric:
		return p.Sprintf("Please enter a valid number")
	case ErrOutOfRange:
		return strings.TrimSpace(p.Sprintf("Value must be between %s and %s %s", formatBound(e.Min), formatBound(e.Max), e.Unit))
	case ErrNotPositive:
		return p.Sprintf("%s must be positive", p.Sprintf(e.Field))
	case ErrDivisionByZero:
		return p.Sprintf("%s cannot be zero (division by zero)", p.Sprintf(e.Field))
	case ErrWindingTooNarrow:
		return p.Sprintf("VC winding width must be greater than plate thickness")
	case ErrPanelTooThick:
		return p.Sprintf("Panel thickness must be less than half of each external dimension")
	case ErrUnknownParameter:
		return p.Sprintf("Unknown parameter %s", e.Field)
	case ErrUnknownMode:
		return p.Sprintf("Unknown calculation mode %s", e.Field)
	}
	return e.Field
}

// Localize renders any error for a user. Errors that are not a
// *FieldError are passed through the printer as-is.
func Localize(err error, p *message.Printer) string {
	if err == nil {
		return ""
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Message(p)
	}
	if p == nil {
		return err.Error()
	}
	return p.Sprintf(err.Error())
}

// Bounds are printed as written in Ranges, without locale grouping.
func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
