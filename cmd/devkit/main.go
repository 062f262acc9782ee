package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/aleister1102/devkit/internal/config"
	"github.com/aleister1102/devkit/internal/logger"
)

func main() {
	flags := ParseFlags()

	cfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load config using path '%s': %v", flags.ConfigFile, err)
	}

	if err := config.ValidateConfig(cfg); err != nil {
		log.Fatalf("[FATAL] Invalid configuration: %v", err)
	}

	zLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	runner, ok := toolRunners[strings.ToLower(flags.Tool)]
	if !ok {
		fmt.Fprintf(os.Stderr, "[FATAL] Unknown tool '%s'. Available tools: %s\n", flags.Tool, strings.Join(toolNames(), ", "))
		os.Exit(1)
	}

	zLogger.Debug().Str("tool", flags.Tool).Msg("Running tool")

	if err := runner(flags, cfg, zLogger); err != nil {
		zLogger.Error().Err(err).Str("tool", flags.Tool).Msg("Tool failed")
		os.Exit(1)
	}
}

func toolNames() []string {
	names := make([]string, 0, len(toolRunners))
	for name := range toolRunners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
