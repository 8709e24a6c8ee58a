package record

import (
	"errors"
	"strconv"
)

var ErrTypeMismatch = errors.New("value kind does not match field kind")

// Value holds one field value. The zero Value is absent.
type Value struct {
	kind Kind
	s    string
	n    float64
	b    bool
	d    Date
}

func String(s string) Value {
	return Value{kind: KindString, s: s}
}

func Number(n float64) Value {
	return Value{kind: KindNumber, n: n}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func DateValue(d Date) Value {
	return Value{kind: KindDate, d: d}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Valid() bool {
	return v.kind != KindInvalid
}

func (v Value) Str() string {
	return v.s
}

func (v Value) Num() float64 {
	return v.n
}

func (v Value) Bool() bool {
	return v.b
}

func (v Value) Date() Date {
	return v.d
}

// Text is the canonical textual form used for filtering and as the fallback
// sort key. An absent value renders as the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		return v.d.String()
	}
	return ""
}

func (v Value) String() string {
	return v.Text()
}

// Interface returns the value the way it looks once decoded from JSON:
// string, float64, bool, or the ISO string for dates. Absent is nil.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.s
	case KindNumber:
		return v.n
	case KindBool:
		return v.b
	case KindDate:
		return v.d.String()
	}
	return nil
}

// ValueOf converts a decoded JSON value into a Value of the field's kind.
func ValueOf(f Field, raw interface{}) (Value, error) {
	switch f.Kind() {
	case KindString:
		if s, ok := raw.(string); ok {
			return String(s), nil
		}
	case KindNumber:
		switch n := raw.(type) {
		case float64:
			return Number(n), nil
		case int:
			return Number(float64(n)), nil
		}
	case KindBool:
		if b, ok := raw.(bool); ok {
			return Bool(b), nil
		}
	case KindDate:
		switch d := raw.(type) {
		case Date:
			return DateValue(d), nil
		case string:
			parsed, err := ParseDate(d)
			if err != nil {
				return Value{}, errors.Join(ErrTypeMismatch, err)
			}
			return DateValue(parsed), nil
		}
	default:
		return Value{}, ErrUnknownField
	}
	return Value{}, ErrTypeMismatch
}
