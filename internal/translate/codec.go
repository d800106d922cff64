package translate

import (
	"encoding/base64"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
	"github.com/nerrad567/gray-logic-homegraph/internal/wire"
)

// DecodeValue converts a raw characteristic value into its wire form for
// format f. It returns nil when raw is absent, when f has no scalar wire
// form (array, dictionary, invalid), or when raw cannot be converted.
func DecodeValue(f wire.Format, raw any) *wire.Value {
	if raw == nil {
		return nil
	}
	raw = normalize(raw)

	switch f {
	case wire.FormatBool:
		b, ok := toBool(raw)
		if !ok {
			return nil
		}
		return wire.BoolValue(b)
	case wire.FormatString:
		s, err := cast.ToStringE(raw)
		if err != nil {
			return nil
		}
		return wire.StringValue(s)
	case wire.FormatData, wire.FormatTLV8:
		switch v := raw.(type) {
		case []byte:
			return wire.DataValue(v)
		case string:
			b, err := base64.StdEncoding.DecodeString(v)
			if err != nil {
				return nil
			}
			return wire.DataValue(b)
		}
		return nil
	}

	if n := EncodeNumber(f, raw); n != nil {
		return wire.NumberValue(n)
	}
	return nil
}

// EncodeNumber converts raw into a wire number for a numeric format: int
// gives a signed integer, the unsigned widths give an unsigned integer and
// float gives a double. Integer formats take only whole values that fit the
// format's range; strings are read as base 10. Any other format, or an
// unconvertible raw value, yields nil.
func EncodeNumber(f wire.Format, raw any) *wire.Number {
	if raw == nil {
		return nil
	}
	raw = normalize(raw)

	switch f {
	case wire.FormatInt:
		v, ok := toInt64(raw)
		if !ok {
			return nil
		}
		return wire.SignedNumber(v)
	case wire.FormatUInt8, wire.FormatUInt16, wire.FormatUInt32, wire.FormatUInt64:
		v, ok := toUint64(raw)
		if !ok || v > unsignedMax[f] {
			return nil
		}
		return wire.UnsignedNumber(v)
	case wire.FormatFloat:
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil
		}
		return wire.DoubleNumber(v)
	}
	return nil
}

var unsignedMax = map[wire.Format]uint64{
	wire.FormatUInt8:  math.MaxUint8,
	wire.FormatUInt16: math.MaxUint16,
	wire.FormatUInt32: math.MaxUint32,
	wire.FormatUInt64: math.MaxUint64,
}

// 2^63 and 2^64 as floats; float64(math.MaxInt64) rounds up to the former.
const (
	twoTo63 = float64(1 << 63)
	twoTo64 = 2 * twoTo63
)

func toInt64(raw any) (int64, bool) {
	raw = decimal(raw)
	switch v := raw.(type) {
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, false
		}
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
	case float32:
		return toInt64(float64(v))
	case float64:
		if v != math.Trunc(v) || v < -twoTo63 || v >= twoTo63 {
			return 0, false
		}
		return int64(v), true
	case string:
		return 0, false
	}
	n, err := cast.ToInt64E(raw)
	return n, err == nil
}

func toUint64(raw any) (uint64, bool) {
	raw = decimal(raw)
	switch v := raw.(type) {
	case int:
		if v < 0 {
			return 0, false
		}
	case int8:
		if v < 0 {
			return 0, false
		}
	case int16:
		if v < 0 {
			return 0, false
		}
	case int32:
		if v < 0 {
			return 0, false
		}
	case int64:
		if v < 0 {
			return 0, false
		}
	case float32:
		return toUint64(float64(v))
	case float64:
		if v != math.Trunc(v) || v < 0 || v >= twoTo64 {
			return 0, false
		}
		return uint64(v), true
	case string:
		return 0, false
	}
	n, err := cast.ToUint64E(raw)
	return n, err == nil
}

// decimal parses a string as a base-10 number. The result is an int64, a
// uint64 or a float64; a string that is none of these is returned as is.
func decimal(raw any) any {
	s, ok := raw.(string)
	if !ok {
		return raw
	}
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !strings.ContainsAny(s, "xXpP") {
		return f
	}
	return raw
}

// EncodeMetadata translates characteristic metadata. Bounds, step and valid
// values use the resolved format; max length is always an int.
func EncodeMetadata(nativeType string, md *homegraph.Metadata) *wire.Metadata {
	if md == nil {
		return nil
	}
	f := ResolveFormat(nativeType, md)
	out := &wire.Metadata{
		ManufacturerDescription: md.ManufacturerDescription,
		Format:                  f,
		Units:                   Units(md.Units),
		MinimumValue:            EncodeNumber(f, md.MinimumValue),
		MaximumValue:            EncodeNumber(f, md.MaximumValue),
		StepValue:               EncodeNumber(f, md.StepValue),
		MaxLength:               EncodeNumber(wire.FormatInt, md.MaxLength),
	}
	for _, v := range md.ValidValues {
		if n := EncodeNumber(f, v); n != nil {
			out.ValidValues = append(out.ValidValues, *n)
		}
	}
	return out
}

// RawValue is the inverse of DecodeValue: it returns the plain Go value a
// wire value carries (bool, string, int64, uint64, float64 or []byte).
func RawValue(v *wire.Value) any {
	switch v.Kind() {
	case wire.ValueKindBool:
		return *v.BoolValue
	case wire.ValueKindString:
		return *v.StringValue
	case wire.ValueKindNumber:
		return v.NumberValue.Interface()
	case wire.ValueKindData:
		return v.DataValue
	}
	return nil
}

// normalize unwraps json.Number, which the snapshot decoder uses to keep
// integer precision.
func normalize(raw any) any {
	n, ok := raw.(json.Number)
	if !ok {
		return raw
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

// toBool accepts booleans, numbers (non-zero is true) and the strings cast
// understands.
func toBool(raw any) (bool, bool) {
	switch v := raw.(type) {
	case bool:
		return v, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return false, false
		}
		return f != 0, true
	}
	b, err := cast.ToBoolE(raw)
	if err != nil {
		return false, false
	}
	return b, true
}
