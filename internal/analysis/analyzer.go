// Package analysis orchestrates the single-threaded cooperative batch
// pipeline described in §2/§5: grammar load, parse, role assign, cache
// fill, rule dispatch, collect.
package analysis

import (
	"fmt"

	"github.com/spf13/afero"

	"nooa/internal/content"
	"nooa/internal/grammar"
	"nooa/internal/iofs"
	"nooa/internal/roles"
	"nooa/internal/rules"
	"nooa/internal/sourcecode"
	"nooa/pkg/lint"
	nooalog "nooa/pkg/nooalog"
)

// Options configures an Analyzer.
type Options struct {
	// Concurrency bounds the rule-dispatch worker pool. 0 or 1 runs
	// evaluators sequentially.
	Concurrency int
	// GrammarPath, when set, names the grammar document directly instead
	// of relying on discovery under the project root.
	GrammarPath string
	// ExcludeGlobs are additional doublestar patterns (matched against the
	// project-relative path) excluded from enumeration, on top of the
	// crawler's built-in directory/suffix defaults.
	ExcludeGlobs []string
	// ExcludeSuffixes are additional file-name suffixes excluded from
	// enumeration, on top of the crawler's defaults.
	ExcludeSuffixes []string
	// FollowSymlinks controls whether symlinked files are enumerated.
	// Symlinked directories are not descended into either way, since the
	// walk does not follow links. Defaults to false.
	FollowSymlinks bool
}

// DefaultOptions returns the Analyzer's default options.
func DefaultOptions() Options {
	return Options{Concurrency: 1}
}

// Analyzer orchestrates one analyze() invocation (§6: "analyze(project_path)
// -> [Violation]").
type Analyzer struct {
	fs      afero.Fs
	options Options
}

// NewAnalyzer creates an Analyzer backed by fs. fs is typically an
// afero.OsFs in production and an afero.MemMapFs in tests.
func NewAnalyzer(fs afero.Fs, opts ...Options) *Analyzer {
	options := DefaultOptions()
	if len(opts) > 0 {
		options = opts[0]
	}
	return &Analyzer{fs: fs, options: options}
}

// Analyze runs the full pipeline against projectRoot and returns the
// stable-ordered violation stream. Any grammar-load, enumeration, or
// parse failure is fatal and returned as an error (§7, kinds 1 and 2);
// rule-evaluation failures never occur, only findings.
func (a *Analyzer) Analyze(projectRoot string) ([]lint.Violation, error) {
	var g *grammar.Grammar
	var err error
	if a.options.GrammarPath != "" {
		g, err = grammar.LoadFile(a.options.GrammarPath)
	} else {
		g, err = grammar.Load(projectRoot)
	}
	if err != nil {
		return nil, err
	}

	crawler := iofs.NewCrawler(a.fs)
	crawler.ExcludeGlobs = a.options.ExcludeGlobs
	crawler.ExcludeSuffixes = append(crawler.ExcludeSuffixes, a.options.ExcludeSuffixes...)
	crawler.FollowSymlinks = a.options.FollowSymlinks
	files, err := crawler.Enumerate(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("analysis: failed to enumerate project files: %w", err)
	}
	nooalog.Debugf("Enumerated %d candidate source files under %q", len(files), projectRoot)

	reader := iofs.NewReader(a.fs, projectRoot)

	parser := sourcecode.NewParser(reader)
	symbols, err := parser.Parse(projectRoot, files)
	if err != nil {
		return nil, fmt.Errorf("analysis: failed to parse project sources: %w", err)
	}
	nooalog.Debugf("Parsed %d symbols from %d files", len(symbols), len(files))

	roled := roles.Assign(g, symbols)

	cache := content.Fill(reader, files)

	ctx := &rules.Context{
		Symbols: roled,
		Files:   files,
		Cache:   cache,
		Dirs:    reader,
	}

	violations, err := rules.Dispatch(g, ctx, a.options.Concurrency)
	if err != nil {
		return nil, fmt.Errorf("analysis: rule dispatch failed: %w", err)
	}

	nooalog.Infof("Analysis of %q produced %d violations across %d rules", projectRoot, len(violations), len(g.Rules))
	return violations, nil
}
