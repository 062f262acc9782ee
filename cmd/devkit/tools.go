package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/devkit/internal/color"
	"github.com/aleister1102/devkit/internal/common"
	"github.com/aleister1102/devkit/internal/config"
	"github.com/aleister1102/devkit/internal/cron"
	"github.com/aleister1102/devkit/internal/differ"
	"github.com/aleister1102/devkit/internal/encoding"
	"github.com/aleister1102/devkit/internal/hashing"
	"github.com/aleister1102/devkit/internal/identifier"
	"github.com/aleister1102/devkit/internal/imagediff"
	"github.com/aleister1102/devkit/internal/iplookup"
	"github.com/aleister1102/devkit/internal/radix"
	"github.com/aleister1102/devkit/internal/timeutil"
)

type toolRunner func(flags AppFlags, cfg *config.GlobalConfig, logger zerolog.Logger) error

var toolRunners = map[string]toolRunner{
	"textdiff":  runTextDiff,
	"imagediff": runImageDiff,
	"base64":    runBase64,
	"urlcodec":  runURLCodec,
	"jwt":       runJWTDecode,
	"hash":      runHash,
	"imageb64":  runImageBase64,
	"color":     runColor,
	"radix":     runRadix,
	"cron":      runCron,
	"timestamp": runTimestamp,
	"uuid":      runUUID,
	"iplookup":  runIPLookup,
}

// readInput resolves tool input from -file, -in or stdin, in that order
func readInput(flags AppFlags) ([]byte, error) {
	if flags.InputFile != "" {
		data, err := os.ReadFile(flags.InputFile)
		if err != nil {
			return nil, common.WrapErrorf(err, "failed to read input file '%s'", flags.InputFile)
		}
		return data, nil
	}
	if flags.Input != "" {
		return []byte(flags.Input), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, common.WrapError(err, "failed to read stdin")
	}
	return data, nil
}

func runTextDiff(flags AppFlags, cfg *config.GlobalConfig, logger zerolog.Logger) error {
	if flags.LeftFile == "" || flags.RightFile == "" {
		return common.NewValidationError("left/right", "", "-left and -right files are required")
	}

	left, err := os.ReadFile(flags.LeftFile)
	if err != nil {
		return common.WrapErrorf(err, "failed to read '%s'", flags.LeftFile)
	}
	right, err := os.ReadFile(flags.RightFile)
	if err != nil {
		return common.WrapErrorf(err, "failed to read '%s'", flags.RightFile)
	}

	modeName := cfg.DiffConfig.Mode
	if flags.Mode != "" {
		modeName = flags.Mode
	}

	builder, err := differ.NewDifferBuilder().WithModeName(modeName)
	if err != nil {
		return err
	}
	d := builder.
		WithSortLines(flags.SortLines || cfg.DiffConfig.SortLines).
		WithLogger(logger).
		Build()

	spans, stats := d.Compare(string(left), string(right))
	renderSpans(os.Stdout, spans)
	fmt.Printf("\n%d added, %d removed, %d unchanged (%d total)\n", stats.Added, stats.Removed, stats.Unchanged, stats.Total())
	return nil
}

// renderSpans writes each span with a +/-/space marker per line
func renderSpans(w io.Writer, spans []differ.Span) {
	for _, span := range spans {
		marker := "  "
		switch span.Kind {
		case differ.Added:
			marker = "+ "
		case differ.Removed:
			marker = "- "
		}

		value := strings.TrimSuffix(span.Value, "\n")
		for _, line := range strings.Split(value, "\n") {
			fmt.Fprintf(w, "%s%s\n", marker, line)
		}
	}
}

func runImageDiff(flags AppFlags, cfg *config.GlobalConfig, logger zerolog.Logger) error {
	if flags.LeftFile == "" || flags.RightFile == "" {
		return common.NewValidationError("left/right", "", "-left and -right image files are required")
	}

	threshold := cfg.ImageDiffConfig.Threshold
	if flags.Threshold >= 0 {
		threshold = flags.Threshold
	}

	comparer, err := imagediff.NewComparerBuilder().
		WithThreshold(threshold).
		WithLogger(logger).
		Build()
	if err != nil {
		return err
	}

	left, err := imagediff.LoadBitmap(flags.LeftFile)
	if err != nil {
		return err
	}
	right, err := imagediff.LoadBitmap(flags.RightFile)
	if err != nil {
		return err
	}

	result, err := comparer.Compare(left, right)
	if err != nil {
		return err
	}

	fmt.Printf("%d of %d pixels differ (%.2f%%)\n", result.DiffPixels, result.TotalPixels, result.Percentage)

	if flags.Output != "" && !result.Composite.ZeroArea() {
		if err := imagediff.SavePNG(flags.Output, result.Composite); err != nil {
			return err
		}
		fmt.Printf("Composite written to %s\n", flags.Output)
	}
	return nil
}

func runBase64(flags AppFlags, _ *config.GlobalConfig, _ zerolog.Logger) error {
	data, err := readInput(flags)
	if err != nil {
		return err
	}

	// Decoding is attempted first; input that is not valid Base64 gets encoded
	if decoded, err := encoding.DecodeBase64(strings.TrimSpace(string(data))); err == nil {
		fmt.Printf("decoded: %s\n", decoded)
	}

	if flags.URLSafe {
		fmt.Printf("encoded: %s\n", encoding.EncodeBase64URL(data))
	} else {
		fmt.Printf("encoded: %s\n", encoding.EncodeBase64(data))
	}
	return nil
}

func runURLCodec(flags AppFlags, _ *config.GlobalConfig, _ zerolog.Logger) error {
	data, err := readInput(flags)
	if err != nil {
		return err
	}
	text := strings.TrimRight(string(data), "\n")

	if decoded, err := encoding.DecodeURL(text); err == nil && decoded != text {
		fmt.Printf("decoded: %s\n", decoded)
	}
	fmt.Printf("encoded (query): %s\n", encoding.EncodeURL(text))
	fmt.Printf("encoded (path):  %s\n", encoding.EncodeURLPath(text))
	return nil
}

func runJWTDecode(flags AppFlags, _ *config.GlobalConfig, _ zerolog.Logger) error {
	data, err := readInput(flags)
	if err != nil {
		return err
	}

	decoded, err := encoding.DecodeJWT(strings.TrimSpace(string(data)))
	if err != nil {
		return err
	}

	header, err := decoded.HeaderJSON()
	if err != nil {
		return err
	}
	claims, err := decoded.ClaimsJSON()
	if err != nil {
		return err
	}

	fmt.Printf("header:\n%s\n\nclaims:\n%s\n\nsignature: %s\n", header, claims, decoded.Signature)
	return nil
}

func runHash(flags AppFlags, _ *config.GlobalConfig, _ zerolog.Logger) error {
	algo, err := hashing.ParseAlgorithm(flags.Algorithm)
	if err != nil {
		return err
	}

	data, err := readInput(flags)
	if err != nil {
		return err
	}

	var digest string
	if flags.HMACKey != "" {
		digest, err = hashing.SumHMAC(algo, []byte(flags.HMACKey), data)
	} else {
		digest, err = hashing.Sum(algo, data)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", algo, digest)
	return nil
}

func runImageBase64(flags AppFlags, _ *config.GlobalConfig, _ zerolog.Logger) error {
	data, err := readInput(flags)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(string(data))

	// A data URI decodes back to an image file; anything else encodes
	if strings.HasPrefix(text, "data:") {
		raw, mime, err := encoding.DecodeDataURI(text)
		if err != nil {
			return err
		}
		if flags.Output == "" {
			return common.NewValidationError("out", "", "-out file is required when decoding a data URI")
		}
		if err := os.WriteFile(flags.Output, raw, 0644); err != nil {
			return common.WrapErrorf(err, "failed to write '%s'", flags.Output)
		}
		fmt.Printf("%s (%d bytes) written to %s\n", mime, len(raw), flags.Output)
		return nil
	}

	fmt.Println(encoding.EncodeDataURI(data))
	return nil
}

func runColor(flags AppFlags, _ *config.GlobalConfig, _ zerolog.Logger) error {
	data, err := readInput(flags)
	if err != nil {
		return err
	}

	rgb, err := color.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return err
	}

	fmt.Printf("hex: %s\nrgb: %s\nhsl: %s\n", rgb.Hex(), rgb, rgb.ToHSL())
	return nil
}

func runRadix(flags AppFlags, _ *config.GlobalConfig, _ zerolog.Logger) error {
	data, err := readInput(flags)
	if err != nil {
		return err
	}
	input := strings.TrimSpace(string(data))

	if flags.ToBase != 0 {
		converted, err := radix.Convert(input, flags.FromBase, flags.ToBase)
		if err != nil {
			return err
		}
		fmt.Println(converted)
		return nil
	}

	all, err := radix.ConvertAll(input, flags.FromBase)
	if err != nil {
		return err
	}
	for _, base := range radix.CommonBases {
		fmt.Printf("base %2d: %s\n", base, all[base])
	}
	return nil
}

func runCron(flags AppFlags, _ *config.GlobalConfig, _ zerolog.Logger) error {
	var expr *cron.Expression
	var err error

	if flags.CronExpr != "" {
		expr, err = cron.Parse(flags.CronExpr)
		if err != nil {
			return err
		}
	} else {
		expr = cron.Build(flags.Minute, flags.Hour, flags.DayOfMonth, flags.Month, flags.DayOfWeek)
	}

	fmt.Printf("%s\n%s\n", expr, expr.Describe())
	return nil
}

func runTimestamp(flags AppFlags, _ *config.GlobalConfig, _ zerolog.Logger) error {
	data, err := readInput(flags)
	if err != nil {
		return err
	}

	ts, err := timeutil.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return err
	}

	rendering := timeutil.Render(ts.Time)
	fmt.Printf("parsed as: %s\n", ts.Strategy)
	fmt.Printf("unix:      %d\n", rendering.UnixSeconds)
	fmt.Printf("millis:    %d\n", rendering.UnixMillis)
	fmt.Printf("rfc3339:   %s\n", rendering.RFC3339)
	fmt.Printf("rfc1123:   %s\n", rendering.RFC1123)
	fmt.Printf("local:     %s\n", rendering.Local)
	return nil
}

func runUUID(flags AppFlags, _ *config.GlobalConfig, _ zerolog.Logger) error {
	version, err := identifier.ParseVersion(flags.UUIDVersion)
	if err != nil {
		return err
	}

	ids, err := identifier.Generate(version, flags.UUIDCount, identifier.Options{
		Uppercase: flags.Uppercase,
		NoDashes:  flags.NoDashes,
	})
	if err != nil {
		return err
	}

	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func runIPLookup(flags AppFlags, cfg *config.GlobalConfig, logger zerolog.Logger) error {
	client, err := iplookup.NewClientBuilder().
		WithEndpoint(cfg.LookupConfig.Endpoint).
		WithTimeout(time.Duration(cfg.LookupConfig.TimeoutSeconds) * time.Second).
		WithLogger(logger).
		Build()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.LookupConfig.TimeoutSeconds)*time.Second)
	defer cancel()

	info, err := client.Lookup(ctx, flags.Query)
	if err != nil {
		return err
	}

	fmt.Printf("query:    %s\n", info.Query)
	fmt.Printf("country:  %s (%s)\n", info.Country, info.CountryCode)
	fmt.Printf("region:   %s\n", info.RegionName)
	fmt.Printf("city:     %s %s\n", info.City, info.Zip)
	fmt.Printf("location: %.4f, %.4f\n", info.Lat, info.Lon)
	fmt.Printf("timezone: %s\n", info.Timezone)
	fmt.Printf("isp:      %s\n", info.ISP)
	return nil
}
