package analyzer

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// decodeAttempt is one entry of the fixed encoding fallback list
type decodeAttempt struct {
	name   string
	decode func([]byte) (string, bool)
}

// encodingFallbacks is tried in order; the first attempt that succeeds wins.
// The list is fixed, there is no auto-detection.
var encodingFallbacks = []decodeAttempt{
	{"utf-8", decodeUTF8},
	{"utf-16", decodeUTF16},
	{"ascii", decodeASCII},
	{"latin-1", decodeLatin1},
}

// decodeWithFallback decodes raw bytes using the fixed encoding list and
// reports the name of the encoding that succeeded
func decodeWithFallback(data []byte) (content, encodingUsed string, ok bool) {
	for _, attempt := range encodingFallbacks {
		if decoded, ok := attempt.decode(data); ok {
			return decoded, attempt.name, true
		}
	}
	return "", "", false
}

func decodeUTF8(data []byte) (string, bool) {
	if !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

// decodeUTF16 requires a byte order mark; the BOM selects endianness and is
// stripped from the decoded content
func decodeUTF16(data []byte) (string, bool) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	decoded, err := dec.Bytes(data)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

func decodeASCII(data []byte) (string, bool) {
	for _, b := range data {
		if b > 0x7f {
			return "", false
		}
	}
	return string(data), true
}

// decodeLatin1 maps every byte to a code point and therefore cannot fail
func decodeLatin1(data []byte) (string, bool) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}
