// Command nooa is the CLI entry point for the architectural linter: it
// wires the default filesystem/parser collaborators to internal/analysis
// and reports the resulting violation stream (§6).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"nooa/internal/analysis"
	"nooa/internal/config"
	"nooa/pkg/lint"
	nooalog "nooa/pkg/nooalog"
)

func main() {
	configFilePath := flag.String("config", config.DefaultConfigFile, "Path to configuration file (e.g., nooa.yaml)")
	targetDirFlag := flag.String("dir", "", "Project directory to analyze (overrides config file)")
	grammarFlag := flag.String("grammar", "", "Path to the grammar document (overrides discovery under --dir)")
	outputDirFlag := flag.String("out", "", "Directory to save the violations JSON file (overrides config file)")
	logLevelFlag := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config file)")
	debugFlag := flag.Bool("debug", false, "Shortcut for --log-level=debug")
	concurrencyFlag := flag.Int("concurrency", 0, "Number of rule evaluators to run in parallel (overrides config file)")
	flag.Parse()

	cfg, err := config.Load(*configFilePath)
	if err != nil {
		nooalog.Fatalf("Failed to load configuration: %v", err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.TargetDir = *targetDirFlag
		case "grammar":
			cfg.GrammarPath = *grammarFlag
		case "out":
			cfg.OutputDir = *outputDirFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "concurrency":
			cfg.Concurrency = *concurrencyFlag
		}
	})

	level := nooalog.LevelFromString(cfg.LogLevel)
	if *debugFlag {
		level = nooalog.LevelDebug
	}
	nooalog.SetLevel(level)

	targetDir, err := filepath.Abs(cfg.TargetDir)
	if err != nil {
		nooalog.Fatalf("Failed to resolve target directory %q: %v", cfg.TargetDir, err)
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}

	analyzer := analysis.NewAnalyzer(afero.NewOsFs(), analysis.Options{
		Concurrency:     concurrency,
		GrammarPath:     cfg.GrammarPath,
		ExcludeGlobs:    cfg.ExcludePatterns,
		ExcludeSuffixes: cfg.ExcludeSuffixes,
		FollowSymlinks:  cfg.FollowSymlinks,
	})

	violations, err := analyzer.Analyze(targetDir)
	if err != nil {
		nooalog.Errorf("Analysis failed: %v", err)
		os.Exit(1)
	}

	printSummary(violations)

	if cfg.OutputDir != "" {
		if err := writeViolationsJSON(cfg.OutputDir, violations); err != nil {
			nooalog.Errorf("Failed to write violations JSON: %v", err)
		}
	}

	os.Exit(exitCode(violations))
}

func exitCode(violations []lint.Violation) int {
	for _, v := range violations {
		if v.Severity == lint.SeverityError {
			return 1
		}
	}
	return 0
}

func printSummary(violations []lint.Violation) {
	if len(violations) == 0 {
		color.Green("No violations found.")
		return
	}

	var errors, warnings, infos int
	for _, v := range violations {
		switch v.Severity {
		case lint.SeverityError:
			errors++
			color.Red("[ERROR] %s: %s", v.RuleName, v.Message)
		case lint.SeverityWarning:
			warnings++
			color.Yellow("[WARN]  %s: %s", v.RuleName, v.Message)
		default:
			infos++
			color.Cyan("[INFO]  %s: %s", v.RuleName, v.Message)
		}
	}

	fmt.Println()
	color.White("%d violations (%d error, %d warning, %d info)", len(violations), errors, warnings, infos)
}

func writeViolationsJSON(outputDir string, violations []lint.Violation) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", outputDir, err)
	}

	path := filepath.Join(outputDir, "violations.json")
	data, err := json.MarshalIndent(violations, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal violations: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	nooalog.Infof("Wrote %d violations to %q", len(violations), path)
	return nil
}
