package main

import (
	"flag"
	"fmt"
	"os"
)

// AppFlags holds every command-line option. Each tool reads the subset it
// understands; unrelated flags are ignored.
type AppFlags struct {
	Tool       string
	ConfigFile string

	Input     string
	InputFile string
	Output    string

	LeftFile  string
	RightFile string
	Mode      string
	SortLines bool
	Threshold int

	Algorithm string
	HMACKey   string
	URLSafe   bool

	FromBase int
	ToBase   int

	CronExpr   string
	Minute     string
	Hour       string
	DayOfMonth string
	Month      string
	DayOfWeek  string

	UUIDVersion int
	UUIDCount   int
	Uppercase   bool
	NoDashes    bool

	Query string
}

// ParseFlags parses command-line arguments into AppFlags
func ParseFlags() AppFlags {
	tool := flag.String("tool", "", "Tool to run: textdiff, imagediff, base64, urlcodec, jwt, hash, imageb64, color, radix, cron, timestamp, uuid, iplookup")
	toolAlias := flag.String("t", "", "Alias for -tool")

	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	input := flag.String("in", "", "Inline input text for the selected tool")
	inputFile := flag.String("file", "", "Read input from a file instead of -in")
	output := flag.String("out", "", "Output file path (tools that write files)")

	leftFile := flag.String("left", "", "Left/old input file for diff tools")
	rightFile := flag.String("right", "", "Right/new input file for diff tools")
	mode := flag.String("mode", "", "Diff tokenization mode: line, word or character (overrides config file if set)")
	sortLines := flag.Bool("sort", false, "Sort input lines before text diffing")
	threshold := flag.Int("threshold", -1, "Per-channel pixel difference tolerance [0,255] (overrides config file if set)")

	algorithm := flag.String("algo", "sha256", "Hash algorithm: md5, sha1, sha256 or sha512")
	hmacKey := flag.String("key", "", "HMAC key; when set the hash tool computes an HMAC")
	urlSafe := flag.Bool("url-safe", false, "Use URL-safe Base64 alphabet when encoding")

	fromBase := flag.Int("from", 10, "Source base for the radix tool [2,36]")
	toBase := flag.Int("to", 0, "Target base for the radix tool [2,36]; 0 renders all common bases")

	cronExpr := flag.String("expr", "", "Full five-field cron expression to describe")
	minute := flag.String("minute", "", "Cron minute field (builder form)")
	hour := flag.String("hour", "", "Cron hour field (builder form)")
	dayOfMonth := flag.String("dom", "", "Cron day-of-month field (builder form)")
	month := flag.String("month", "", "Cron month field (builder form)")
	dayOfWeek := flag.String("dow", "", "Cron day-of-week field (builder form)")

	uuidVersion := flag.Int("version", 4, "UUID version: 4 or 7")
	uuidCount := flag.Int("count", 1, "Number of UUIDs to generate")
	uppercase := flag.Bool("upper", false, "Render UUIDs in uppercase")
	noDashes := flag.Bool("no-dash", false, "Render UUIDs without dashes")

	query := flag.String("query", "", "IP address or hostname to look up; empty resolves your own address")

	flag.Parse()

	flags := AppFlags{
		Tool:        *tool,
		ConfigFile:  *configFile,
		Input:       *input,
		InputFile:   *inputFile,
		Output:      *output,
		LeftFile:    *leftFile,
		RightFile:   *rightFile,
		Mode:        *mode,
		SortLines:   *sortLines,
		Threshold:   *threshold,
		Algorithm:   *algorithm,
		HMACKey:     *hmacKey,
		URLSafe:     *urlSafe,
		FromBase:    *fromBase,
		ToBase:      *toBase,
		CronExpr:    *cronExpr,
		Minute:      *minute,
		Hour:        *hour,
		DayOfMonth:  *dayOfMonth,
		Month:       *month,
		DayOfWeek:   *dayOfWeek,
		UUIDVersion: *uuidVersion,
		UUIDCount:   *uuidCount,
		Uppercase:   *uppercase,
		NoDashes:    *noDashes,
		Query:       *query,
	}

	if flags.Tool == "" && *toolAlias != "" {
		flags.Tool = *toolAlias
	}
	if flags.ConfigFile == "" && *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	if flags.Tool == "" {
		fmt.Fprintln(os.Stderr, "[FATAL] -tool argument is required")
		flag.Usage()
		os.Exit(1)
	}

	return flags
}
