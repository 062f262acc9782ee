package differ

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Kind classifies a diff span
type Kind int

const (
	// Unchanged marks text present in both inputs
	Unchanged Kind = iota
	// Added marks text present only in the right input
	Added
	// Removed marks text present only in the left input
	Removed
)

// String returns string representation of Kind
func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unchanged"
	}
}

// Span is a maximal run of same-classification tokens with its
// concatenated text
type Span struct {
	Value string
	Kind  Kind
}

// Differ compares two texts at a configured granularity
type Differ struct {
	mode      Mode
	sortLines bool
	logger    zerolog.Logger
}

// DifferBuilder provides a fluent interface for creating Differ
type DifferBuilder struct {
	mode      Mode
	sortLines bool
	logger    zerolog.Logger
}

// NewDifferBuilder creates a new builder with line mode defaults
func NewDifferBuilder() *DifferBuilder {
	return &DifferBuilder{
		mode:   ModeLine,
		logger: zerolog.Nop(),
	}
}

// WithMode sets the tokenization mode
func (b *DifferBuilder) WithMode(mode Mode) *DifferBuilder {
	b.mode = mode
	return b
}

// WithModeName parses and sets the tokenization mode from its name
func (b *DifferBuilder) WithModeName(name string) (*DifferBuilder, error) {
	mode, err := ParseMode(name)
	if err != nil {
		return b, err
	}
	b.mode = mode
	return b, nil
}

// WithSortLines enables sorting both inputs' lines before tokenization
func (b *DifferBuilder) WithSortLines(sortLines bool) *DifferBuilder {
	b.sortLines = sortLines
	return b
}

// WithLogger sets the logger instance
func (b *DifferBuilder) WithLogger(logger zerolog.Logger) *DifferBuilder {
	b.logger = logger
	return b
}

// Build creates a new Differ instance
func (b *DifferBuilder) Build() *Differ {
	return &Differ{
		mode:      b.mode,
		sortLines: b.sortLines,
		logger:    b.logger.With().Str("component", "Differ").Logger(),
	}
}

// Compare diffs left against right and returns classified spans plus
// aggregate counts. Pre-processing options configured on the Differ are
// applied before tokenization.
func (d *Differ) Compare(left, right string) ([]Span, Stats) {
	if d.sortLines {
		left = sortInputLines(left)
		right = sortInputLines(right)
	}

	spans, stats := Diff(left, right, d.mode)

	d.logger.Debug().
		Str("mode", d.mode.String()).
		Int("spans", len(spans)).
		Int("added", stats.Added).
		Int("removed", stats.Removed).
		Msg("Computed diff")

	return spans, stats
}

// Diff tokenizes both inputs per mode, computes a minimal edit script and
// returns coalesced spans plus aggregate counts. It is a pure function: any
// pair of strings is accepted, identical inputs yield a single Unchanged
// span, two empty inputs yield no spans. Concatenating Unchanged and Added
// spans reproduces right; Unchanged and Removed reproduce left.
func Diff(left, right string, mode Mode) ([]Span, Stats) {
	index := newTokenIndex()
	leftRunes := index.Encode(Tokenize(left, mode))
	rightRunes := index.Encode(Tokenize(right, mode))

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(leftRunes, rightRunes, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	spans := buildSpans(diffs, index)
	return spans, calculateStats(spans, mode)
}

// buildSpans decodes diff operations back into original token text and
// coalesces adjacent runs of the same kind.
func buildSpans(diffs []diffmatchpatch.Diff, index *tokenIndex) []Span {
	var spans []Span
	for _, diff := range diffs {
		value := index.Decode(diff.Text)
		if value == "" {
			continue
		}

		kind := Unchanged
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			kind = Added
		case diffmatchpatch.DiffDelete:
			kind = Removed
		}

		if n := len(spans); n > 0 && spans[n-1].Kind == kind {
			spans[n-1].Value += value
			continue
		}
		spans = append(spans, Span{Value: value, Kind: kind})
	}
	return spans
}

// sortInputLines orders the lines of text lexicographically, used to compare
// inputs where line order is not significant.
func sortInputLines(text string) string {
	if text == "" {
		return ""
	}
	trailing := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	sort.Strings(lines)
	joined := strings.Join(lines, "\n")
	if trailing {
		joined += "\n"
	}
	return joined
}
