package translate

import (
	"encoding/base64"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerrad567/gray-logic-homegraph/internal/homegraph"
	"github.com/nerrad567/gray-logic-homegraph/internal/wire"
)

func TestResolveFormat(t *testing.T) {
	power := homegraph.CharacteristicTypePowerState

	assert.Equal(t, wire.FormatBool, ResolveFormat(power, nil))
	assert.Equal(t, wire.FormatBool, ResolveFormat(power, &homegraph.Metadata{}))
	assert.Equal(t, wire.FormatString, ResolveFormat(power, &homegraph.Metadata{Format: homegraph.FormatString}))
	assert.Equal(t, wire.FormatInvalid, ResolveFormat(power, &homegraph.Metadata{Format: "quaternion"}))
	assert.Equal(t, wire.FormatInvalid, ResolveFormat("vendor.custom", nil))
}

func TestResolveFormatIsIdempotent(t *testing.T) {
	for _, r := range characteristicTypeRows {
		first := ResolveFormat(r.native, nil)
		again := ResolveFormat(r.native, &homegraph.Metadata{Format: NativeFormat(first)})
		assert.Equal(t, first, again, r.code.String())
	}
}

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name   string
		format wire.Format
		raw    any
		want   *wire.Value
	}{
		{"bool from int", wire.FormatBool, 1, wire.BoolValue(true)},
		{"bool from zero", wire.FormatBool, 0.0, wire.BoolValue(false)},
		{"bool from json number", wire.FormatBool, json.Number("1"), wire.BoolValue(true)},
		{"bool from bool", wire.FormatBool, false, wire.BoolValue(false)},
		{"bool from string", wire.FormatBool, "true", wire.BoolValue(true)},
		{"bool from junk", wire.FormatBool, "maybe", nil},
		{"int", wire.FormatInt, json.Number("-3"), wire.NumberValue(wire.SignedNumber(-3))},
		{"int from float", wire.FormatInt, 75.0, wire.NumberValue(wire.SignedNumber(75))},
		{"uint8", wire.FormatUInt8, json.Number("80"), wire.NumberValue(wire.UnsignedNumber(80))},
		{"uint64 large", wire.FormatUInt64, json.Number("18446744073709551615"), wire.NumberValue(wire.UnsignedNumber(18446744073709551615))},
		{"uint negative", wire.FormatUInt32, -1, nil},
		{"uint negative int64", wire.FormatUInt64, int64(-1), nil},
		{"uint negative float", wire.FormatUInt16, -2.0, nil},
		{"int above max from json", wire.FormatInt, json.Number("9223372036854775808"), nil},
		{"int above max from uint64", wire.FormatInt, uint64(1) << 63, nil},
		{"int at max", wire.FormatInt, uint64(math.MaxInt64), wire.NumberValue(wire.SignedNumber(math.MaxInt64))},
		{"int at min", wire.FormatInt, json.Number("-9223372036854775808"), wire.NumberValue(wire.SignedNumber(math.MinInt64))},
		{"int fractional", wire.FormatInt, 2.7, nil},
		{"int float overflow", wire.FormatInt, 1e19, nil},
		{"int string decimal", wire.FormatInt, "010", wire.NumberValue(wire.SignedNumber(10))},
		{"int string hex", wire.FormatInt, "0x1F", nil},
		{"int string fractional", wire.FormatInt, "7.5", nil},
		{"int string whole float", wire.FormatInt, "7.0", wire.NumberValue(wire.SignedNumber(7))},
		{"uint8 fractional", wire.FormatUInt8, 2.7, nil},
		{"uint8 above width", wire.FormatUInt8, 256, nil},
		{"uint8 at width", wire.FormatUInt8, "255", wire.NumberValue(wire.UnsignedNumber(255))},
		{"uint16 above width", wire.FormatUInt16, json.Number("65536"), nil},
		{"uint32 above width", wire.FormatUInt32, uint64(1) << 32, nil},
		{"uint string octal-looking", wire.FormatUInt32, "010", wire.NumberValue(wire.UnsignedNumber(10))},
		{"uint string hex", wire.FormatUInt32, "0x1F", nil},
		{"uint64 float overflow", wire.FormatUInt64, 2e19, nil},
		{"float", wire.FormatFloat, json.Number("21.5"), wire.NumberValue(wire.DoubleNumber(21.5))},
		{"float from string", wire.FormatFloat, "20.25", wire.NumberValue(wire.DoubleNumber(20.25))},
		{"float from junk", wire.FormatFloat, "warm", nil},
		{"string", wire.FormatString, "Lamp", wire.StringValue("Lamp")},
		{"data bytes", wire.FormatData, []byte{1, 2}, wire.DataValue([]byte{1, 2})},
		{"tlv8 base64", wire.FormatTLV8, base64.StdEncoding.EncodeToString([]byte{9, 8}), wire.DataValue([]byte{9, 8})},
		{"data bad base64", wire.FormatData, "%%%", nil},
		{"array", wire.FormatArray, []any{1, 2}, nil},
		{"dictionary", wire.FormatDictionary, map[string]any{"a": 1}, nil},
		{"invalid format", wire.FormatInvalid, 1, nil},
		{"absent", wire.FormatBool, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeValue(tt.format, tt.raw))
		})
	}
}

func TestDecodeValueRoundTrip(t *testing.T) {
	tests := []struct {
		format wire.Format
		raw    any
	}{
		{wire.FormatBool, true},
		{wire.FormatInt, int64(-40)},
		{wire.FormatUInt8, uint64(255)},
		{wire.FormatUInt16, uint64(1024)},
		{wire.FormatUInt32, uint64(140)},
		{wire.FormatUInt64, uint64(1) << 40},
		{wire.FormatFloat, 0.5},
		{wire.FormatString, "Hallway"},
		{wire.FormatData, []byte{0xde, 0xad}},
	}
	for _, tt := range tests {
		v := DecodeValue(tt.format, tt.raw)
		require.NotNil(t, v, tt.format.String())
		assert.Equal(t, tt.raw, RawValue(v), tt.format.String())
		assert.Equal(t, v, DecodeValue(tt.format, RawValue(v)), tt.format.String())
	}
	assert.Nil(t, RawValue(nil))
}

func TestEncodeMetadata(t *testing.T) {
	assert.Nil(t, EncodeMetadata(homegraph.CharacteristicTypeBrightness, nil))

	md := EncodeMetadata(homegraph.CharacteristicTypeTargetTemperature, &homegraph.Metadata{
		Units:                   homegraph.UnitCelsius,
		ManufacturerDescription: "Setpoint",
		MinimumValue:            json.Number("10"),
		MaximumValue:            38,
		StepValue:               0.5,
		MaxLength:               "64",
		ValidValues:             []any{10, "nope", 20.5},
	})
	require.NotNil(t, md)
	assert.Equal(t, wire.FormatFloat, md.Format)
	assert.Equal(t, wire.UnitsCelsius, md.Units)
	assert.Equal(t, "Setpoint", md.ManufacturerDescription)
	assert.Equal(t, wire.DoubleNumber(10), md.MinimumValue)
	assert.Equal(t, wire.DoubleNumber(38), md.MaximumValue)
	assert.Equal(t, wire.DoubleNumber(0.5), md.StepValue)
	assert.Equal(t, wire.SignedNumber(64), md.MaxLength)
	assert.Equal(t, []wire.Number{*wire.DoubleNumber(10), *wire.DoubleNumber(20.5)}, md.ValidValues)
}

func TestEncodeMetadataUnsignedBounds(t *testing.T) {
	md := EncodeMetadata(homegraph.CharacteristicTypeBatteryLevel, &homegraph.Metadata{
		MinimumValue: 0,
		MaximumValue: 100,
		ValidValues:  []any{0, 1, 2},
	})
	require.NotNil(t, md)
	assert.Equal(t, wire.FormatUInt8, md.Format)
	assert.Equal(t, wire.UnsignedNumber(0), md.MinimumValue)
	assert.Equal(t, wire.UnsignedNumber(100), md.MaximumValue)
	assert.Nil(t, md.StepValue)
	assert.Nil(t, md.MaxLength)
	assert.Len(t, md.ValidValues, 3)
}

func TestEncodeMetadataDropsFractionalIntegerBounds(t *testing.T) {
	md := EncodeMetadata(homegraph.CharacteristicTypeBatteryLevel, &homegraph.Metadata{
		Format:       homegraph.FormatUInt8,
		MinimumValue: 2.7,
		MaximumValue: 100.0,
		StepValue:    0.5,
		ValidValues:  []any{1, 1.5, 300},
	})
	require.NotNil(t, md)
	assert.Equal(t, wire.FormatUInt8, md.Format)
	assert.Nil(t, md.MinimumValue)
	assert.Nil(t, md.StepValue)
	assert.Equal(t, wire.UnsignedNumber(100), md.MaximumValue)
	assert.Equal(t, []wire.Number{*wire.UnsignedNumber(1)}, md.ValidValues)
}

func TestEncodeNumberNonNumericFormat(t *testing.T) {
	assert.Nil(t, EncodeNumber(wire.FormatBool, 1))
	assert.Nil(t, EncodeNumber(wire.FormatString, 1))
	assert.Nil(t, EncodeNumber(wire.FormatFloat, nil))
}
