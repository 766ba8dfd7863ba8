package reactive

import (
	"Loudspeaker/internal/validation"
	"bytes"
	"encoding/json"
	"strconv"
)

// Fields is the raw content of a calculator form keyed by parameter name.
// JSON strings, numbers and nulls are all accepted.
type Fields map[string]string

func (f *Fields) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(Fields, len(raw))
	for k, v := range raw {
		v = bytes.TrimSpace(v)
		switch {
		case len(v) == 0 || bytes.Equal(v, []byte("null")):
			out[k] = ""
		case v[0] == '"':
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return err
			}
			out[k] = s
		case v[0] == 't' || v[0] == 'f':
			var bv bool
			if err := json.Unmarshal(v, &bv); err != nil {
				return err
			}
			out[k] = strconv.FormatBool(bv)
		default:
			out[k] = string(v)
		}
	}
	*f = out
	return nil
}

// Form parses fields on demand and records every parse failure under the
// field's own name.
type Form struct {
	fields Fields
	Issues Issues
}

func NewForm(f Fields) *Form {
	if f == nil {
		f = Fields{}
	}
	return &Form{fields: f, Issues: Issues{}}
}

// Raw returns the untouched string for name.
func (f *Form) Raw(name string) string {
	return f.fields[name]
}

// Param parses name against its registered range.
func (f *Form) Param(name string) *float64 {
	return f.ParamAs(name, name)
}

// ParamAs reads field name using the range registered for param.
func (f *Form) ParamAs(name, param string) *float64 {
	v, err := validation.ParseParameter(f.fields[name], param)
	f.Issues.Add(name, err)
	return v
}

// Number parses name with no range check.
func (f *Form) Number(name string) *float64 {
	v, err := validation.ParseNumber(f.fields[name], name)
	f.Issues.Add(name, err)
	return v
}
