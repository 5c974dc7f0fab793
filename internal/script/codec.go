package script

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/fwmaint/layoutkit/pkg/types"
)

// Flavor identifies how layout text is stored on disk. A rewrite re-encodes
// with the flavor found while reading, so files keep their original form.
type Flavor int

const (
	// FlavorUTF8 is plain text with no byte order mark.
	FlavorUTF8 Flavor = iota

	// FlavorUTF8BOM is UTF-8 text behind an EF BB BF mark.
	FlavorUTF8BOM

	// FlavorUTF16LE is little-endian UTF-16 behind an FF FE mark.
	FlavorUTF16LE

	// FlavorUTF16BE is big-endian UTF-16 behind an FE FF mark.
	FlavorUTF16BE
)

// String implements the Stringer interface for Flavor.
func (f Flavor) String() string {
	switch f {
	case FlavorUTF8:
		return "utf-8"
	case FlavorUTF8BOM:
		return "utf-8 bom"
	case FlavorUTF16LE:
		return "utf-16le"
	case FlavorUTF16BE:
		return "utf-16be"
	default:
		return fmt.Sprintf("flavor(%d)", int(f))
	}
}

// Decode sniffs the byte order mark, strips it, and returns the file content
// as UTF-8 text together with the flavor needed to encode it back.
func Decode(data []byte) (string, Flavor, error) {
	switch {
	case bytes.HasPrefix(data, []byte(BOMUTF8)):
		return string(data[len(BOMUTF8):]), FlavorUTF8BOM, nil
	case bytes.HasPrefix(data, []byte(BOMUTF16LE)):
		text, err := decodeUTF16(data[len(BOMUTF16LE):], unicode.LittleEndian)
		return text, FlavorUTF16LE, err
	case bytes.HasPrefix(data, []byte(BOMUTF16BE)):
		text, err := decodeUTF16(data[len(BOMUTF16BE):], unicode.BigEndian)
		return text, FlavorUTF16BE, err
	default:
		return string(data), FlavorUTF8, nil
	}
}

// Encode renders text in the given on-disk flavor, reattaching the byte
// order mark stripped during Decode.
func Encode(text string, flavor Flavor) ([]byte, error) {
	switch flavor {
	case FlavorUTF8:
		return []byte(text), nil
	case FlavorUTF8BOM:
		return append([]byte(BOMUTF8), text...), nil
	case FlavorUTF16LE:
		return encodeUTF16(text, BOMUTF16LE, unicode.LittleEndian)
	case FlavorUTF16BE:
		return encodeUTF16(text, BOMUTF16BE, unicode.BigEndian)
	default:
		return nil, &types.Error{
			Kind: types.ErrKindEncoding,
			Msg:  fmt.Sprintf("unknown layout text flavor %d", int(flavor)),
		}
	}
}

func decodeUTF16(data []byte, endian unicode.Endianness) (string, error) {
	dec := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", &types.Error{Kind: types.ErrKindEncoding, Msg: "decode utf-16 layout text", Err: err}
	}
	return string(out), nil
}

func encodeUTF16(text, bom string, endian unicode.Endianness) ([]byte, error) {
	enc := unicode.UTF16(endian, unicode.IgnoreBOM).NewEncoder()
	out, _, err := transform.Bytes(enc, []byte(text))
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindEncoding, Msg: "encode utf-16 layout text", Err: err}
	}
	return append([]byte(bom), out...), nil
}
