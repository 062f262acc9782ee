package differ

import (
	"strings"
	"unicode/utf8"
)

// Stats holds aggregate counts for a diff, in token units appropriate to the
// mode: non-empty lines for ModeLine, characters otherwise.
type Stats struct {
	Added     int
	Removed   int
	Unchanged int
}

// Total returns the sum of all counted units
func (s Stats) Total() int {
	return s.Added + s.Removed + s.Unchanged
}

// calculateStats counts each span in mode-appropriate units and accumulates
// per classification.
func calculateStats(spans []Span, mode Mode) Stats {
	stats := Stats{}
	for _, span := range spans {
		count := countUnits(span.Value, mode)
		switch span.Kind {
		case Added:
			stats.Added += count
		case Removed:
			stats.Removed += count
		default:
			stats.Unchanged += count
		}
	}
	return stats
}

func countUnits(value string, mode Mode) int {
	if mode != ModeLine {
		return utf8.RuneCountInString(value)
	}

	count := 0
	for _, line := range tokenizeLines(value) {
		if strings.TrimRight(line, "\r\n") != "" {
			count++
		}
	}
	return count
}
