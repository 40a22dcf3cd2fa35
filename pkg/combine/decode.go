// File: pkg/combine/decode.go
package combine

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeUTF8 converts data to a string, dropping a leading UTF-8 byte-order mark
// and replacing malformed sequences with U+FFFD. It never fails.
func DecodeUTF8(data []byte) string {
	decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(bytes.TrimPrefix(data, utf8BOM)), "\uFFFD")
	}
	return string(decoded)
}
