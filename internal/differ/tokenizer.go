package differ

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/graphemes"

	"github.com/aleister1102/devkit/internal/common"
)

// Mode selects the granularity at which two texts are tokenized before diffing
type Mode int

const (
	// ModeLine tokenizes on line boundaries, keeping break characters
	ModeLine Mode = iota
	// ModeWord tokenizes into alternating whitespace and non-whitespace runs
	ModeWord
	// ModeCharacter tokenizes into Unicode grapheme clusters
	ModeCharacter
)

// String returns string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeWord:
		return "word"
	case ModeCharacter:
		return "character"
	default:
		return "line"
	}
}

// ParseMode parses a mode name into a Mode.
// Recognized names are "line", "word", "character" and "char".
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "line":
		return ModeLine, nil
	case "word":
		return ModeWord, nil
	case "character", "char":
		return ModeCharacter, nil
	default:
		return ModeLine, common.NewValidationError("mode", name, "must be one of: line, word, character")
	}
}

// Tokenize splits text into the ordered token sequence for the given mode.
// Concatenating the returned tokens always reproduces text byte for byte.
// An unrecognized mode value tokenizes as ModeLine.
func Tokenize(text string, mode Mode) []string {
	switch mode {
	case ModeWord:
		return tokenizeWords(text)
	case ModeCharacter:
		return tokenizeGraphemes(text)
	default:
		return tokenizeLines(text)
	}
}

// tokenizeLines splits after every '\n', keeping the break character as part
// of its line so reconstruction is exact.
func tokenizeLines(text string) []string {
	if text == "" {
		return nil
	}
	var tokens []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			tokens = append(tokens, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

// tokenizeWords splits text into maximal runs of whitespace and
// non-whitespace. Whitespace runs are kept as tokens of their own so both
// sides can be reassembled without loss.
func tokenizeWords(text string) []string {
	if text == "" {
		return nil
	}
	var tokens []string
	runes := []rune(text)
	start := 0
	inSpace := unicode.IsSpace(runes[0])
	for i := 1; i < len(runes); i++ {
		space := unicode.IsSpace(runes[i])
		if space != inSpace {
			tokens = append(tokens, string(runes[start:i]))
			start = i
			inSpace = space
		}
	}
	tokens = append(tokens, string(runes[start:]))
	return tokens
}

// tokenizeGraphemes splits text into grapheme clusters so that combining
// sequences and emoji are compared as single units.
func tokenizeGraphemes(text string) []string {
	if text == "" {
		return nil
	}
	var tokens []string
	iter := graphemes.FromString(text)
	for iter.Next() {
		tokens = append(tokens, iter.Value())
	}
	return tokens
}
