package differ

// tokenIndex maps distinct tokens to rune codepoints so arbitrary token
// sequences can be fed through diffmatchpatch's rune-based diff. The mapping
// skips the UTF-16 surrogate block, which cannot survive a round trip through
// a Go string.
type tokenIndex struct {
	tokens  []string
	byToken map[string]rune
}

const surrogateStart = 0xD800

func newTokenIndex() *tokenIndex {
	return &tokenIndex{byToken: make(map[string]rune)}
}

// Encode interns each token and returns the rune sequence standing in for it.
func (ti *tokenIndex) Encode(tokens []string) []rune {
	encoded := make([]rune, len(tokens))
	for i, tok := range tokens {
		r, ok := ti.byToken[tok]
		if !ok {
			r = indexToRune(len(ti.tokens))
			ti.tokens = append(ti.tokens, tok)
			ti.byToken[tok] = r
		}
		encoded[i] = r
	}
	return encoded
}

// Decode maps a rune-string produced by the diff back to the concatenation
// of its original tokens.
func (ti *tokenIndex) Decode(encoded string) string {
	var out []byte
	for _, r := range encoded {
		idx := runeToIndex(r)
		if idx >= 0 && idx < len(ti.tokens) {
			out = append(out, ti.tokens[idx]...)
		}
	}
	return string(out)
}

func indexToRune(i int) rune {
	if i >= surrogateStart {
		return rune(i + 0x800)
	}
	return rune(i)
}

func runeToIndex(r rune) int {
	if r >= surrogateStart+0x800 {
		return int(r) - 0x800
	}
	return int(r)
}
