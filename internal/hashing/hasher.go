package hashing

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"sort"
	"strings"

	"github.com/aleister1102/devkit/internal/common"
)

// Algorithm identifies a supported digest function
type Algorithm string

const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	SHA512 Algorithm = "sha512"
)

var constructors = map[Algorithm]func() hash.Hash{
	MD5:    md5.New,
	SHA1:   sha1.New,
	SHA256: sha256.New,
	SHA512: sha512.New,
}

// SupportedAlgorithms lists the recognized algorithm names in stable order
func SupportedAlgorithms() []string {
	names := make([]string, 0, len(constructors))
	for algo := range constructors {
		names = append(names, string(algo))
	}
	sort.Strings(names)
	return names
}

// ParseAlgorithm validates an algorithm name
func ParseAlgorithm(name string) (Algorithm, error) {
	algo := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := constructors[algo]; !ok {
		return "", common.NewValidationError("algorithm", name, "must be one of: "+strings.Join(SupportedAlgorithms(), ", "))
	}
	return algo, nil
}

// Sum digests data with the given algorithm and returns the hex rendering
func Sum(algo Algorithm, data []byte) (string, error) {
	constructor, ok := constructors[algo]
	if !ok {
		return "", common.NewValidationError("algorithm", algo, "unsupported algorithm")
	}

	h := constructor()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SumHMAC computes the keyed HMAC of data with the given algorithm and
// returns the hex rendering
func SumHMAC(algo Algorithm, key, data []byte) (string, error) {
	constructor, ok := constructors[algo]
	if !ok {
		return "", common.NewValidationError("algorithm", algo, "unsupported algorithm")
	}

	mac := hmac.New(constructor, key)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil)), nil
}
