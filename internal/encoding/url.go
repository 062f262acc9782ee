package encoding

import (
	"net/url"

	"github.com/aleister1102/devkit/internal/common"
)

// EncodeURL percent-encodes text for use inside a query component
func EncodeURL(text string) string {
	return url.QueryEscape(text)
}

// EncodeURLPath percent-encodes text for use inside a path segment,
// leaving characters like '/' intact
func EncodeURLPath(text string) string {
	return url.PathEscape(text)
}

// DecodeURL reverses percent-encoding. Query unescaping is tried first so
// '+' decodes to a space; inputs that only make sense as path escapes fall
// back to path unescaping.
func DecodeURL(input string) (string, error) {
	decoded, queryErr := url.QueryUnescape(input)
	if queryErr == nil {
		return decoded, nil
	}

	decoded, pathErr := url.PathUnescape(input)
	if pathErr == nil {
		return decoded, nil
	}

	return "", common.WrapError(common.NewParseError("query_unescape", input, queryErr), "input is not valid percent-encoding")
}
