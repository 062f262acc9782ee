package encoding

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aleister1102/devkit/internal/common"
)

// DecodedJWT holds the readable parts of a JSON Web Token. The signature is
// carried verbatim; no verification is performed.
type DecodedJWT struct {
	Header    map[string]interface{}
	Claims    jwt.MapClaims
	Signature string
}

// HeaderJSON renders the token header as indented JSON
func (d *DecodedJWT) HeaderJSON() (string, error) {
	return marshalIndented(d.Header)
}

// ClaimsJSON renders the token claims as indented JSON
func (d *DecodedJWT) ClaimsJSON() (string, error) {
	return marshalIndented(d.Claims)
}

// DecodeJWT splits and Base64-decodes a JWT without verifying its
// signature. Malformed tokens return an error; signature validity is out of
// scope here.
func DecodeJWT(tokenString string) (*DecodedJWT, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	token, parts, err := parser.ParseUnverified(tokenString, claims)
	if err != nil {
		return nil, common.WrapError(err, "failed to decode JWT")
	}

	decoded := &DecodedJWT{
		Header: token.Header,
		Claims: claims,
	}
	if len(parts) == 3 {
		decoded.Signature = parts[2]
	}
	return decoded, nil
}

func marshalIndented(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", common.WrapError(err, "failed to render JSON")
	}
	return string(data), nil
}
