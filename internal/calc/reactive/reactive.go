// Package reactive implements the availability rule shared by every
// calculator: an output is computed only when each input it depends on is
// present, numeric and valid, and is otherwise reported as unavailable.
// Evaluation keeps no state; callers re-run it on every input change.
package reactive

import (
	"Loudspeaker/internal/validation"
	"errors"
	"fmt"
	"math"

	"golang.org/x/text/message"
)

// ErrCalculation replaces any failure raised by a formula once its inputs
// have passed validation.
var ErrCalculation = errors.New("A calculation error occurred")

// Known reports whether every value is supplied and finite.
func Known(vs ...*float64) bool {
	for _, v := range vs {
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			return false
		}
	}
	return true
}

// Positive is Known plus a strict sign check on every value.
func Positive(vs ...*float64) bool {
	if !Known(vs...) {
		return false
	}
	for _, v := range vs {
		if *v <= 0 {
			return false
		}
	}
	return true
}

// Of boxes a computed value. Non-finite values are withheld.
func Of(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Try runs fn and withholds its result on error or panic.
func Try[T any](fn func() (T, error)) (res *T, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("%w: %v", ErrCalculation, r)
		}
	}()
	v, err := fn()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCalculation, err)
	}
	return &v, nil
}

// Issues collects per-output messages for one evaluation pass.
type Issues map[string]error

// Add records err under key; a nil err is ignored.
func (is Issues) Add(key string, err error) {
	if err != nil {
		is[key] = err
	}
}

// Messages renders the issues for a user. Calculation failures are shown
// with the generic message only.
func (is Issues) Messages(p *message.Printer) map[string]string {
	if len(is) == 0 {
		return nil
	}
	out := make(map[string]string, len(is))
	for k, err := range is {
		if errors.Is(err, ErrCalculation) {
			err = ErrCalculation
		}
		out[k] = validation.Localize(err, p)
	}
	return out
}

// Merge copies other into is. Existing keys win, so input problems
// reported first are not masked by what they caused downstream.
func (is Issues) Merge(other Issues) {
	for k, err := range other {
		if _, ok := is[k]; !ok {
			is[k] = err
		}
	}
}

// Response is the JSON body every calculator handler returns: outputs
// that could not be computed are null and explained in Errors.
type Response struct {
	Results any               `json:"results"`
	Errors  map[string]string `json:"errors,omitempty"`
}
