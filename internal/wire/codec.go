package wire

import (
	"encoding/json"
	"fmt"
	"mime"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Content types understood by the transports.
const (
	ContentTypeJSON = "application/json"
	ContentTypeCBOR = "application/cbor"
)

// Codec serialises wire records.
type Codec interface {
	ContentType() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// encMode is deterministic so equal records always produce equal bytes.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create wire CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyQuiet,
		IndefLength: cbor.IndefLengthAllowed,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create wire CBOR decoder mode: %v", err))
	}
}

// JSON encodes records as JSON with enumerations by name.
type JSON struct{}

func (JSON) ContentType() string               { return ContentTypeJSON }
func (JSON) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// CBOR encodes records as deterministic CBOR with enumerations by number.
type CBOR struct{}

func (CBOR) ContentType() string               { return ContentTypeCBOR }
func (CBOR) Marshal(v any) ([]byte, error)      { return encMode.Marshal(v) }
func (CBOR) Unmarshal(data []byte, v any) error { return decMode.Unmarshal(data, v) }

// ForContentType picks the codec for a Content-Type header. Anything that is
// not CBOR is treated as JSON.
func ForContentType(header string) Codec {
	mt, _, err := mime.ParseMediaType(header)
	if err == nil && mt == ContentTypeCBOR {
		return CBOR{}
	}
	return JSON{}
}

// ForAccept picks the response codec for an Accept header. CBOR is used
// only when the client lists it; the first supported type wins.
func ForAccept(header string) Codec {
	for _, part := range strings.Split(header, ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mt {
		case ContentTypeCBOR:
			return CBOR{}
		case ContentTypeJSON, "*/*", "application/*":
			return JSON{}
		}
	}
	return JSON{}
}
