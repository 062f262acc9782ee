// Package radix converts integers between positional number bases using
// arbitrary-precision arithmetic, so conversions never lose precision
// regardless of magnitude or base.
package radix

import (
	"math/big"
	"strings"

	"github.com/aleister1102/devkit/internal/common"
)

// MinBase and MaxBase bound the supported radix range
const (
	MinBase = 2
	MaxBase = 36
)

// CommonBases are the radices most tools present by default
var CommonBases = []int{2, 8, 10, 16, 32}

// Convert parses input in fromBase and renders it in toBase. Negative
// numbers and the usual 0b/0o/0x prefixes are accepted; digits beyond 9 use
// lowercase letters.
func Convert(input string, fromBase, toBase int) (string, error) {
	if err := validateBase("from_base", fromBase); err != nil {
		return "", err
	}
	if err := validateBase("to_base", toBase); err != nil {
		return "", err
	}

	value, err := parseInteger(input, fromBase)
	if err != nil {
		return "", err
	}
	return value.Text(toBase), nil
}

// ConvertAll renders input (parsed in fromBase) in every common base,
// keyed by radix
func ConvertAll(input string, fromBase int) (map[int]string, error) {
	if err := validateBase("from_base", fromBase); err != nil {
		return nil, err
	}

	value, err := parseInteger(input, fromBase)
	if err != nil {
		return nil, err
	}

	out := make(map[int]string, len(CommonBases))
	for _, base := range CommonBases {
		out[base] = value.Text(base)
	}
	return out, nil
}

// parseInteger runs the ordered parse strategies: exact parse in the
// declared base, then a prefix-stripped parse for inputs carrying their own
// base marker. The first success wins.
func parseInteger(input string, base int) (*big.Int, error) {
	cleaned := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(input), "_", ""))
	if cleaned == "" {
		return nil, common.NewValidationError("input", input, "number is required")
	}

	negative := false
	if strings.HasPrefix(cleaned, "-") {
		negative = true
		cleaned = cleaned[1:]
	}

	candidates := []string{cleaned}
	for prefix, prefixBase := range map[string]int{"0b": 2, "0o": 8, "0x": 16} {
		if prefixBase == base && strings.HasPrefix(cleaned, prefix) {
			candidates = append(candidates, cleaned[len(prefix):])
		}
	}

	var lastErr error
	for _, candidate := range candidates {
		value, ok := new(big.Int).SetString(candidate, base)
		if ok {
			if negative {
				value.Neg(value)
			}
			return value, nil
		}
		lastErr = common.NewParseError("big_int", candidate, nil)
	}

	return nil, common.WrapErrorf(lastErr, "'%s' is not a valid base-%d number", input, base)
}

func validateBase(field string, base int) error {
	if base < MinBase || base > MaxBase {
		return common.NewValidationError(field, base, "base must be in range [2,36]")
	}
	return nil
}
