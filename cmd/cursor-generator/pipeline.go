package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"cursor-generator/internal/analyze"
	"cursor-generator/internal/config"
	"cursor-generator/internal/diagnostic"
	"cursor-generator/internal/logging"
	"cursor-generator/internal/plan"
)

// errDiagnostics is returned when resolution reported errors. The
// diagnostics themselves have already been printed.
var errDiagnostics = errors.New("cursor resolution failed")

// sourceFlags selects the cursors to work on, either from a configuration
// file or from flags.
type sourceFlags struct {
	config     string
	pkg        string
	types      []string
	value      string
	difference string
	require    string
	strict     bool
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.config, "config", "c", "", "Path to the cursor configuration file")
	cmd.Flags().StringVar(&s.pkg, "pkg", config.DefaultPackage, "Package pattern declaring the cursor types")
	cmd.Flags().StringSliceVar(&s.types, "type", nil, "Cursor type names (comma-separated or repeated)")
	cmd.Flags().StringVar(&s.value, "value", "", "Declared element type for every --type")
	cmd.Flags().StringVar(&s.difference, "difference", "", "Declared offset type for every --type")
	cmd.Flags().StringVar(&s.require, "require", "", "Minimum category for every --type")
	cmd.Flags().BoolVar(&s.strict, "strict", false, "Treat warnings as errors")
	cmd.MarkFlagsMutuallyExclusive("config", "type")
	cmd.MarkFlagsMutuallyExclusive("config", "pkg")
}

// load returns the configuration selected by the flags.
func (s *sourceFlags) load() (*config.File, error) {
	if s.config != "" {
		return config.LoadFile(s.config)
	}

	if len(s.types) == 0 {
		return nil, errors.New("either --config or --type is required")
	}

	return config.NewFile(s.pkg, s.types, s.value, s.difference, s.require), nil
}

func (s *sourceFlags) resolutionConfig() plan.ResolutionConfig {
	cfg := plan.DefaultConfig()
	cfg.StrictMode = s.strict

	return cfg
}

// loadPackage loads the package named by f and returns the type graph and
// the package's import path.
func loadPackage(f *config.File) (*analyze.TypeGraph, string, error) {
	analyzer := analyze.NewAnalyzer(analyze.WithDir(f.Dir))

	graph, err := analyzer.LoadPackages(f.Package)
	if err != nil {
		return nil, "", fmt.Errorf("loading %s: %w", f.Package, err)
	}

	pkg, err := findPackage(graph, f.Dir, f.Package)
	if err != nil {
		return nil, "", err
	}

	logging.Debug().Str("package", pkg.Path).Str("dir", pkg.Dir).Msg("loaded package")

	return graph, pkg.Path, nil
}

// findPackage maps a package pattern back to the loaded package.
func findPackage(graph *analyze.TypeGraph, dir, pattern string) (*analyze.PackageInfo, error) {
	if pkg, ok := graph.Packages[pattern]; ok {
		return pkg, nil
	}

	path := pattern
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, pattern)
	}

	if abs, err := filepath.Abs(path); err == nil {
		if pkg := graph.PackageInDir(abs); pkg != nil {
			return pkg, nil
		}
	}

	if len(graph.Packages) == 1 {
		for _, pkg := range graph.Packages {
			return pkg, nil
		}
	}

	return nil, fmt.Errorf("pattern %s must match exactly one package, matched %d", pattern, len(graph.Packages))
}

// resolve loads the package named by f and resolves its cursors.
func resolve(f *config.File, cfg plan.ResolutionConfig) (*plan.ResolvedCursorPlan, error) {
	graph, pkgPath, err := loadPackage(f)
	if err != nil {
		return nil, err
	}

	return plan.NewResolver(graph, f, pkgPath, cfg).Resolve()
}

// printDiagnostics writes every diagnostic of the plan, errors first.
func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}

// finish prints the diagnostics of a resolution and converts them into the
// command result.
func finish(w io.Writer, p *plan.ResolvedCursorPlan, err error) error {
	if p != nil {
		printDiagnostics(w, &p.Diagnostics)
	}

	if err != nil {
		return err
	}

	if p.Diagnostics.HasErrors() {
		return errDiagnostics
	}

	return nil
}
