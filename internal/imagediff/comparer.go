package imagediff

import (
	"math"

	"github.com/nfnt/resize"
	"github.com/rs/zerolog"

	"github.com/aleister1102/devkit/internal/common"
)

// DefaultThreshold is the per-channel difference tolerated before a pixel
// counts as changed. 30 absorbs recompression noise in lossy formats.
const DefaultThreshold = 30

// Result holds the output of a pixel-level comparison
type Result struct {
	Composite   *Bitmap
	TotalPixels int
	DiffPixels  int
	Percentage  float64
}

// Comparer performs per-pixel comparison of two bitmaps against a
// tolerance threshold
type Comparer struct {
	threshold int
	logger    zerolog.Logger
}

// ComparerBuilder provides a fluent interface for creating Comparer
type ComparerBuilder struct {
	threshold int
	logger    zerolog.Logger
}

// NewComparerBuilder creates a new builder with the default threshold
func NewComparerBuilder() *ComparerBuilder {
	return &ComparerBuilder{
		threshold: DefaultThreshold,
		logger:    zerolog.Nop(),
	}
}

// WithThreshold sets the per-channel difference tolerance
func (b *ComparerBuilder) WithThreshold(threshold int) *ComparerBuilder {
	b.threshold = threshold
	return b
}

// WithLogger sets the logger instance
func (b *ComparerBuilder) WithLogger(logger zerolog.Logger) *ComparerBuilder {
	b.logger = logger
	return b
}

// Build creates a new Comparer instance
func (b *ComparerBuilder) Build() (*Comparer, error) {
	if b.threshold < 0 || b.threshold > 255 {
		return nil, common.NewValidationError("threshold", b.threshold, "must be in range [0,255]")
	}

	return &Comparer{
		threshold: b.threshold,
		logger:    b.logger.With().Str("component", "ImageComparer").Logger(),
	}, nil
}

// Compare classifies every pixel of a against b. Both inputs are stretched
// onto a canvas of their maximum dimensions before comparison. Pixels whose
// largest per-channel difference exceeds the threshold are painted opaque
// red in the composite; matching pixels carry a half-transparent grayscale
// of a's sample. A zero-area input yields an empty result rather than an
// error.
func (c *Comparer) Compare(a, b *Bitmap) (*Result, error) {
	if a == nil || b == nil {
		return nil, common.NewValidationError("bitmap", nil, "both bitmaps are required")
	}

	if a.ZeroArea() || b.ZeroArea() {
		return &Result{Composite: NewBitmap(0, 0)}, nil
	}

	width := max(a.Width, b.Width)
	height := max(a.Height, b.Height)

	sampleA := resample(a, width, height)
	sampleB := resample(b, width, height)

	composite := NewBitmap(width, height)
	totalPixels := width * height
	diffPixels := 0

	for offset := 0; offset < len(composite.Pix); offset += 4 {
		rA, gA, bA := sampleA.Pix[offset], sampleA.Pix[offset+1], sampleA.Pix[offset+2]
		rB, gB, bB := sampleB.Pix[offset], sampleB.Pix[offset+1], sampleB.Pix[offset+2]

		maxDiff := channelDiff(rA, rB)
		if d := channelDiff(gA, gB); d > maxDiff {
			maxDiff = d
		}
		if d := channelDiff(bA, bB); d > maxDiff {
			maxDiff = d
		}

		if maxDiff > c.threshold {
			composite.Pix[offset] = 255
			composite.Pix[offset+3] = 255
			diffPixels++
			continue
		}

		gray := byte((int(rA) + int(gA) + int(bA)) / 3)
		composite.Pix[offset] = gray
		composite.Pix[offset+1] = gray
		composite.Pix[offset+2] = gray
		composite.Pix[offset+3] = 128
	}

	result := &Result{
		Composite:   composite,
		TotalPixels: totalPixels,
		DiffPixels:  diffPixels,
		Percentage:  roundPercentage(diffPixels, totalPixels),
	}

	c.logger.Debug().
		Int("width", width).
		Int("height", height).
		Int("diff_pixels", diffPixels).
		Float64("percentage", result.Percentage).
		Msg("Compared images")

	return result, nil
}

// resample stretches src onto the target canvas. Inputs already at canvas
// size pass through untouched.
func resample(src *Bitmap, width, height int) *Bitmap {
	if src.Width == width && src.Height == height {
		return src
	}
	scaled := resize.Resize(uint(width), uint(height), src.ToImage(), resize.Bilinear)
	return FromImage(scaled)
}

func channelDiff(a, b byte) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// roundPercentage computes diff/total*100 rounded to two decimals, with the
// zero-area guard folded in.
func roundPercentage(diff, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(diff)/float64(total)*100*100) / 100
}
