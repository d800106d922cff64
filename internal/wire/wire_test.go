package wire

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestEnumText(t *testing.T) {
	b, err := json.Marshal(ServiceTypeLightBulb)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"LightBulb"` {
		t.Errorf("Marshal() = %s, want \"LightBulb\"", b)
	}

	var st ServiceType
	if err := json.Unmarshal([]byte(`"lightbulb"`), &st); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if st != ServiceTypeLightBulb {
		t.Errorf("Unmarshal() = %v, want LightBulb", st)
	}

	if err := json.Unmarshal([]byte(`"Toaster"`), &st); !errors.Is(err, ErrUnknownEnum) {
		t.Errorf("Unmarshal(Toaster) error = %v, want ErrUnknownEnum", err)
	}
}

func TestEnumOutOfRange(t *testing.T) {
	if got := Format(99).String(); got != "99" {
		t.Errorf("String() = %q, want 99", got)
	}
	var f Format
	if err := f.UnmarshalText([]byte("3")); err != nil || f != FormatFloat {
		t.Errorf("UnmarshalText(3) = %v, %v", f, err)
	}
}

func TestEnabledFilterZeroValue(t *testing.T) {
	var req EnumerateTriggersRequest
	if err := json.Unmarshal([]byte(`{"home":"Main"}`), &req); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if req.EnabledFilter != EnabledFilterNone {
		t.Errorf("EnabledFilter = %v, want NoFilter", req.EnabledFilter)
	}
}

func TestValueKind(t *testing.T) {
	tests := []struct {
		name string
		v    *Value
		want ValueKind
	}{
		{"nil", nil, ValueKindNone},
		{"empty", &Value{}, ValueKindNone},
		{"bool", BoolValue(false), ValueKindBool},
		{"string", StringValue(""), ValueKindString},
		{"number", NumberValue(UnsignedNumber(3)), ValueKindNumber},
		{"data", DataValue(nil), ValueKindData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueJSONShape(t *testing.T) {
	b, err := json.Marshal(BoolValue(true))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `{"bool_value":true}` {
		t.Errorf("Marshal() = %s", b)
	}

	b, err = json.Marshal(NumberValue(DoubleNumber(21.5)))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `{"number_value":{"double_value":21.5}}` {
		t.Errorf("Marshal() = %s", b)
	}
}

func TestCBORRoundTrip(t *testing.T) {
	in := CharacteristicInformation{
		UUID:               "C1",
		CharacteristicType: CharacteristicTypeBatteryLevel,
		Properties:         []Property{PropertyReadable},
		Metadata:           &Metadata{Format: FormatUInt8, Units: UnitsPercentage, MaximumValue: UnsignedNumber(100)},
		Value:              NumberValue(UnsignedNumber(80)),
	}

	c := CBOR{}
	b, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var out CharacteristicInformation
	if err := c.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out.CharacteristicType != CharacteristicTypeBatteryLevel || out.Metadata.Format != FormatUInt8 {
		t.Errorf("round trip = %+v", out)
	}
	if v := out.Value.NumberValue.Interface(); v != uint64(80) {
		t.Errorf("value = %v (%T), want 80", v, v)
	}

	again, err := c.Marshal(out)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(again) != string(b) {
		t.Error("CBOR encoding is not deterministic")
	}
}

func TestCodecNegotiation(t *testing.T) {
	tests := []struct {
		accept string
		want   string
	}{
		{"", ContentTypeJSON},
		{"application/json", ContentTypeJSON},
		{"application/cbor", ContentTypeCBOR},
		{"text/html, application/cbor;q=0.9", ContentTypeCBOR},
		{"*/*", ContentTypeJSON},
		{"text/plain", ContentTypeJSON},
	}
	for _, tt := range tests {
		if got := ForAccept(tt.accept).ContentType(); got != tt.want {
			t.Errorf("ForAccept(%q) = %s, want %s", tt.accept, got, tt.want)
		}
	}

	if got := ForContentType("application/cbor; charset=binary").ContentType(); got != ContentTypeCBOR {
		t.Errorf("ForContentType(cbor) = %s", got)
	}
	if got := ForContentType("").ContentType(); !strings.HasPrefix(got, "application/json") {
		t.Errorf("ForContentType(empty) = %s", got)
	}
}

func TestNumberFloat64(t *testing.T) {
	if _, ok := (*Number)(nil).Float64(); ok {
		t.Error("nil number reported a value")
	}
	if v, ok := SignedNumber(-4).Float64(); !ok || v != -4 {
		t.Errorf("Float64() = %v, %v", v, ok)
	}
}
