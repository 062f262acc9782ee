package encoding

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleister1102/devkit/internal/common"
)

func TestEncodeDecodeBase64(t *testing.T) {
	original := []byte("hello, world! 🌍")

	encoded := EncodeBase64(original)
	decoded, err := DecodeBase64(encoded)

	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeBase64_AcceptsURLSafeAndUnpadded(t *testing.T) {
	data := []byte{0xfb, 0xff, 0x01, 0x02}

	variants := []string{
		base64.StdEncoding.EncodeToString(data),
		base64.RawStdEncoding.EncodeToString(data),
		base64.URLEncoding.EncodeToString(data),
		base64.RawURLEncoding.EncodeToString(data),
	}

	for _, variant := range variants {
		decoded, err := DecodeBase64(variant)
		require.NoError(t, err, "variant %q", variant)
		assert.Equal(t, data, decoded, "variant %q", variant)
	}
}

func TestDecodeBase64_Invalid(t *testing.T) {
	_, err := DecodeBase64("not*base64*at*all")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Base64")
}

func TestEncodeDecodeURL(t *testing.T) {
	original := "a b&c=d/e?f"

	encoded := EncodeURL(original)
	assert.NotContains(t, encoded, " ")

	decoded, err := DecodeURL(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestEncodeURLPath_KeepsSlashes(t *testing.T) {
	encoded := EncodeURLPath("docs/getting started.md")

	assert.Equal(t, "docs/getting%20started.md", encoded)

	decoded, err := DecodeURL(encoded)
	require.NoError(t, err)
	assert.Equal(t, "docs/getting started.md", decoded)
}

func TestDecodeURL_Invalid(t *testing.T) {
	_, err := DecodeURL("%zz")

	assert.Error(t, err)
}

func TestDecodeJWT(t *testing.T) {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	claims := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"1234567890","name":"John Doe","admin":true}`))
	tokenString := header + "." + claims + ".fake-signature"

	decoded, err := DecodeJWT(tokenString)
	require.NoError(t, err)

	assert.Equal(t, "HS256", decoded.Header["alg"])
	assert.Equal(t, "John Doe", decoded.Claims["name"])
	assert.Equal(t, true, decoded.Claims["admin"])
	assert.Equal(t, "fake-signature", decoded.Signature)

	claimsJSON, err := decoded.ClaimsJSON()
	require.NoError(t, err)

	var roundTrip map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(claimsJSON), &roundTrip))
	assert.Equal(t, "1234567890", roundTrip["sub"])
}

func TestDecodeJWT_Malformed(t *testing.T) {
	_, err := DecodeJWT("definitely.not-a-jwt")

	assert.Error(t, err)
}

func TestDataURIRoundtrip(t *testing.T) {
	// Minimal PNG header bytes are enough for media type sniffing
	pngBytes := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

	uri := EncodeDataURI(pngBytes)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"), "got %q", uri)

	data, mime, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
	assert.Equal(t, "image/png", mime)
}

func TestDecodeDataURI_Invalid(t *testing.T) {
	cases := []string{
		"not-a-data-uri",
		"data:image/png;base64",
		"data:image/png,plain-not-base64",
	}

	for _, input := range cases {
		_, _, err := DecodeDataURI(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestDecodeDataURI_NonBase64Encoding(t *testing.T) {
	_, _, err := DecodeDataURI("data:text/plain;charset=utf-8,hello")

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}
