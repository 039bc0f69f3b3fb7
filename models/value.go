package models

import (
	"errors"
	"strconv"

	"github.com/spf13/cast"
)

// Kind classifies a cell value into a small closed set of semantic kinds.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindReal
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindText:
		return "text"
	default:
		return "other"
	}
}

// Value is a tagged-variant table cell. The zero value is null.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Null returns the null cell value.
func Null() Value { return Value{kind: KindNull} }

// Int returns an integer cell value.
func Int(n int64) Value { return Value{kind: KindInteger, i: n} }

// Real returns a floating-point cell value.
func Real(f float64) Value { return Value{kind: KindReal, f: f} }

// Text returns a textual cell value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// TextValue returns the textual content and whether the value is of text kind.
func (v Value) TextValue() (string, bool) {
	return v.s, v.kind == KindText
}

// String renders the value the way it is written to CSV: nulls become the
// empty cell, numbers their decimal form, text is passed through untrimmed.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindReal:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}

// Equal reports whether two cells hold the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindInteger:
		return v.i == o.i
	case KindReal:
		return v.f == o.f
	default:
		return v.s == o.s
	}
}

// Numeric coerces the value to a float64. Text goes through loose cast
// coercion, so "2019" succeeds while "$45,000" and "N/A" fail. Nulls fail.
func (v Value) Numeric() (float64, error) {
	switch v.kind {
	case KindInteger:
		return float64(v.i), nil
	case KindReal:
		return v.f, nil
	case KindText:
		return cast.ToFloat64E(v.s)
	default:
		return 0, errors.New("value is null")
	}
}

// ParseValue infers the kind of a raw CSV cell. Empty cells are null,
// integer-looking cells become integers, float-looking cells reals, and
// everything else (including padded numbers) stays text.
func ParseValue(raw string) Value {
	if raw == "" {
		return Null()
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Int(n)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Real(f)
	}
	return Text(raw)
}
