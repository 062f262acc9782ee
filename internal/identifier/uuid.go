// Package identifier generates UUIDs in the formats the toolbox exposes.
package identifier

import (
	"strings"

	"github.com/google/uuid"

	"github.com/aleister1102/devkit/internal/common"
)

// Version selects the UUID generation scheme
type Version int

const (
	// V4 is a fully random UUID
	V4 Version = 4
	// V7 is a time-ordered UUID
	V7 Version = 7
)

// Options controls how generated UUIDs are rendered
type Options struct {
	Uppercase bool
	NoDashes  bool
}

// MaxBatch bounds a single generation request
const MaxBatch = 1000

// ParseVersion validates a UUID version number
func ParseVersion(v int) (Version, error) {
	switch v {
	case 4:
		return V4, nil
	case 7:
		return V7, nil
	default:
		return 0, common.NewValidationError("version", v, "supported UUID versions are 4 and 7")
	}
}

// Generate produces count UUIDs of the given version, rendered per opts
func Generate(version Version, count int, opts Options) ([]string, error) {
	if count < 1 || count > MaxBatch {
		return nil, common.NewValidationError("count", count, "count must be in range [1,1000]")
	}

	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := newUUID(version)
		if err != nil {
			return nil, common.WrapError(err, "failed to generate UUID")
		}
		out = append(out, render(id, opts))
	}
	return out, nil
}

func newUUID(version Version) (uuid.UUID, error) {
	switch version {
	case V7:
		return uuid.NewV7()
	case V4:
		return uuid.NewRandom()
	default:
		return uuid.Nil, common.NewValidationError("version", version, "unsupported UUID version")
	}
}

func render(id uuid.UUID, opts Options) string {
	s := id.String()
	if opts.NoDashes {
		s = strings.ReplaceAll(s, "-", "")
	}
	if opts.Uppercase {
		s = strings.ToUpper(s)
	}
	return s
}
