package differ

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		wantErr  bool
	}{
		{"line", ModeLine, false},
		{"Line", ModeLine, false},
		{"", ModeLine, false},
		{"word", ModeWord, false},
		{"character", ModeCharacter, false},
		{"char", ModeCharacter, false},
		{" word ", ModeWord, false},
		{"paragraph", ModeLine, true},
	}

	for _, tt := range tests {
		mode, err := ParseMode(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, mode, "input %q", tt.input)
	}
}

func TestTokenize_Lines(t *testing.T) {
	tokens := Tokenize("a\nbb\n\nc", ModeLine)

	assert.Equal(t, []string{"a\n", "bb\n", "\n", "c"}, tokens)
}

func TestTokenize_LinesTrailingNewline(t *testing.T) {
	tokens := Tokenize("a\nb\n", ModeLine)

	assert.Equal(t, []string{"a\n", "b\n"}, tokens)
}

func TestTokenize_Words(t *testing.T) {
	tokens := Tokenize("one  two\tthree", ModeWord)

	assert.Equal(t, []string{"one", "  ", "two", "\t", "three"}, tokens)
}

func TestTokenize_WordsLeadingWhitespace(t *testing.T) {
	tokens := Tokenize("  padded  ", ModeWord)

	assert.Equal(t, []string{"  ", "padded", "  "}, tokens)
}

func TestTokenize_Graphemes(t *testing.T) {
	tokens := Tokenize("héllo", ModeCharacter)

	assert.Equal(t, []string{"h", "é", "l", "l", "o"}, tokens)
}

func TestTokenize_GraphemesCombining(t *testing.T) {
	// e + combining acute accent is a single grapheme cluster
	tokens := Tokenize("éx", ModeCharacter)

	require.Len(t, tokens, 2)
	assert.Equal(t, "é", tokens[0])
	assert.Equal(t, "x", tokens[1])
}

func TestTokenize_Empty(t *testing.T) {
	for _, mode := range []Mode{ModeLine, ModeWord, ModeCharacter} {
		assert.Empty(t, Tokenize("", mode), "mode %s", mode)
	}
}

func TestTokenize_Roundtrip(t *testing.T) {
	inputs := []string{
		"plain text",
		"multi\nline\ninput\n",
		"  leading and trailing  ",
		"tabs\tand\nnewlines mixed \r\n",
		"emoji 👍🏼 and 中文",
	}

	for _, input := range inputs {
		for _, mode := range []Mode{ModeLine, ModeWord, ModeCharacter} {
			tokens := Tokenize(input, mode)
			assert.Equal(t, input, strings.Join(tokens, ""), "mode %s input %q", mode, input)
		}
	}
}

func TestTokenIndex_Roundtrip(t *testing.T) {
	index := newTokenIndex()
	tokens := []string{"a\n", "bb\n", "a\n", "c"}

	encoded := index.Encode(tokens)

	require.Len(t, encoded, 4)
	assert.Equal(t, encoded[0], encoded[2], "repeated token shares a rune")
	assert.Equal(t, "a\nbb\na\nc", index.Decode(string(encoded)))
}
