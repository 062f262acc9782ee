package encoding

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/aleister1102/devkit/internal/common"
)

// EncodeDataURI renders raw file bytes as a base64 data URI, sniffing the
// media type from the content
func EncodeDataURI(data []byte) string {
	mime := mimetype.Detect(data).String()
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI parses a base64 data URI back into raw bytes and the
// declared media type
func DecodeDataURI(uri string) ([]byte, string, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, "", common.NewValidationError("data_uri", truncateForError(uri), "missing 'data:' prefix")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", common.NewValidationError("data_uri", truncateForError(uri), "missing ',' separator")
	}

	mime, encoding := meta, ""
	if idx := strings.LastIndex(meta, ";"); idx >= 0 {
		mime, encoding = meta[:idx], meta[idx+1:]
	}
	if encoding != "base64" {
		return nil, "", common.WrapErrorf(common.ErrUnsupportedFormat, "data URI encoding '%s' (only base64 is supported)", encoding)
	}

	data, err := DecodeBase64(payload)
	if err != nil {
		return nil, "", common.WrapError(err, "failed to decode data URI payload")
	}
	return data, mime, nil
}

func truncateForError(s string) string {
	const limit = 64
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
