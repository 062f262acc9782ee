// Package timeutil converts between epoch timestamps and textual datetime
// formats. Input interpretation runs through an explicit ordered list of
// parse strategies; the first one that accepts the input wins.
package timeutil

import (
	"strconv"
	"strings"
	"time"

	"github.com/aleister1102/devkit/internal/common"
)

// Timestamp is a parsed instant with the strategy that recognized it
type Timestamp struct {
	Time     time.Time
	Strategy string
}

// epochMillisCutoff distinguishes second from millisecond epochs: values at
// or above it would be year 33658 as seconds, so they are read as millis.
const epochMillisCutoff = 1_000_000_000_000

var textLayouts = []struct {
	name   string
	layout string
}{
	{"rfc3339", time.RFC3339},
	{"rfc3339_nano", time.RFC3339Nano},
	{"rfc1123", time.RFC1123},
	{"rfc1123z", time.RFC1123Z},
	{"date_time", "2006-01-02 15:04:05"},
	{"date_only", "2006-01-02"},
}

// Parse interprets input as a unix epoch (seconds or milliseconds) or one
// of the common textual layouts
func Parse(input string) (*Timestamp, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, common.NewValidationError("timestamp", input, "timestamp is required")
	}

	if epoch, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		if epoch >= epochMillisCutoff || epoch <= -epochMillisCutoff {
			return &Timestamp{Time: time.UnixMilli(epoch).UTC(), Strategy: "epoch_millis"}, nil
		}
		return &Timestamp{Time: time.Unix(epoch, 0).UTC(), Strategy: "epoch_seconds"}, nil
	}

	for _, candidate := range textLayouts {
		if parsed, err := time.Parse(candidate.layout, trimmed); err == nil {
			return &Timestamp{Time: parsed.UTC(), Strategy: candidate.name}, nil
		}
	}

	return nil, common.WrapError(
		common.NewParseError("datetime_layouts", trimmed, nil),
		"input is neither an epoch timestamp nor a recognized datetime",
	)
}

// Rendering holds one instant in all output notations
type Rendering struct {
	UnixSeconds int64
	UnixMillis  int64
	RFC3339     string
	RFC1123     string
	Local       string
}

// Render produces every output notation for t
func Render(t time.Time) Rendering {
	return Rendering{
		UnixSeconds: t.Unix(),
		UnixMillis:  t.UnixMilli(),
		RFC3339:     t.UTC().Format(time.RFC3339),
		RFC1123:     t.UTC().Format(time.RFC1123),
		Local:       t.Local().Format("2006-01-02 15:04:05 MST"),
	}
}
