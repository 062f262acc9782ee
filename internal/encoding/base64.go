package encoding

import (
	"encoding/base64"

	"github.com/aleister1102/devkit/internal/common"
)

// EncodeBase64 renders data in standard Base64
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// EncodeBase64URL renders data in URL-safe Base64 without padding
func EncodeBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeBase64 decodes Base64 input, accepting standard, URL-safe, padded
// and unpadded alphabets. The decoders are tried in order and the first
// success wins.
func DecodeBase64(input string) ([]byte, error) {
	encodings := []struct {
		name string
		enc  *base64.Encoding
	}{
		{"standard", base64.StdEncoding},
		{"standard_raw", base64.RawStdEncoding},
		{"url", base64.URLEncoding},
		{"url_raw", base64.RawURLEncoding},
	}

	var lastErr error
	for _, candidate := range encodings {
		data, err := candidate.enc.DecodeString(input)
		if err == nil {
			return data, nil
		}
		lastErr = common.NewParseError(candidate.name, input, err)
	}
	return nil, common.WrapError(lastErr, "input is not valid Base64")
}
