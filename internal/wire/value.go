package wire

// Number is a numeric value with exactly one representation set.
type Number struct {
	SignedIntegerValue   *int64   `json:"signed_integer_value,omitempty"`
	UnsignedIntegerValue *uint64  `json:"unsigned_integer_value,omitempty"`
	DoubleValue          *float64 `json:"double_value,omitempty"`
}

// SignedNumber wraps v.
func SignedNumber(v int64) *Number { return &Number{SignedIntegerValue: &v} }

// UnsignedNumber wraps v.
func UnsignedNumber(v uint64) *Number { return &Number{UnsignedIntegerValue: &v} }

// DoubleNumber wraps v.
func DoubleNumber(v float64) *Number { return &Number{DoubleValue: &v} }

// Float64 returns the number widened to float64. ok is false when no
// representation is set.
func (n *Number) Float64() (v float64, ok bool) {
	switch {
	case n == nil:
		return 0, false
	case n.SignedIntegerValue != nil:
		return float64(*n.SignedIntegerValue), true
	case n.UnsignedIntegerValue != nil:
		return float64(*n.UnsignedIntegerValue), true
	case n.DoubleValue != nil:
		return *n.DoubleValue, true
	}
	return 0, false
}

// Interface returns the set representation as a plain Go value
// (int64, uint64 or float64), or nil.
func (n *Number) Interface() any {
	switch {
	case n == nil:
		return nil
	case n.SignedIntegerValue != nil:
		return *n.SignedIntegerValue
	case n.UnsignedIntegerValue != nil:
		return *n.UnsignedIntegerValue
	case n.DoubleValue != nil:
		return *n.DoubleValue
	}
	return nil
}

// ValueKind names the populated field of a Value.
type ValueKind int

const (
	ValueKindNone ValueKind = iota
	ValueKindBool
	ValueKindString
	ValueKindNumber
	ValueKindData
)

// Value is a characteristic value with at most one field set.
type Value struct {
	BoolValue   *bool   `json:"bool_value,omitempty"`
	StringValue *string `json:"string_value,omitempty"`
	NumberValue *Number `json:"number_value,omitempty"`
	DataValue   []byte  `json:"data_value,omitempty"`
}

// BoolValue wraps v.
func BoolValue(v bool) *Value { return &Value{BoolValue: &v} }

// StringValue wraps v.
func StringValue(v string) *Value { return &Value{StringValue: &v} }

// NumberValue wraps n.
func NumberValue(n *Number) *Value { return &Value{NumberValue: n} }

// DataValue wraps b.
func DataValue(b []byte) *Value {
	if b == nil {
		b = []byte{}
	}
	return &Value{DataValue: b}
}

// Kind reports which field is set.
func (v *Value) Kind() ValueKind {
	switch {
	case v == nil:
		return ValueKindNone
	case v.BoolValue != nil:
		return ValueKindBool
	case v.StringValue != nil:
		return ValueKindString
	case v.NumberValue != nil:
		return ValueKindNumber
	case v.DataValue != nil:
		return ValueKindData
	}
	return ValueKindNone
}
