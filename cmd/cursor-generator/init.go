package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cursor-generator/internal/analyze"
	"cursor-generator/internal/config"
	"cursor-generator/internal/plan"
)

var (
	initSource sourceFlags
	initOut    string
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration pinned to the detected cursor categories",
	Long: `init resolves the given cursor types, or every type in the package
that declares Dereference, and writes a configuration whose require fields
hold the detected categories. A later change that weakens a cursor then
fails generation instead of silently dropping methods.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := config.NewFile(initSource.pkg, initSource.types, initSource.value, initSource.difference, initSource.require)

		graph, pkgPath, err := loadPackage(f)
		if err != nil {
			return err
		}

		if len(f.Cursors) == 0 {
			f = config.NewFile(initSource.pkg, cursorCandidates(graph, pkgPath), "", "", "")
			if len(f.Cursors) == 0 {
				return errors.New("no type in the package declares Dereference")
			}
		}

		p, err := plan.NewResolver(graph, f, pkgPath, initSource.resolutionConfig()).Resolve()
		if err := finish(cmd.ErrOrStderr(), p, err); err != nil {
			return err
		}

		out := initOut
		if !filepath.IsAbs(out) {
			out = filepath.Join(graph.Packages[pkgPath].Dir, out)
		}

		if _, err := os.Stat(out); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", out)
		}

		exported := plan.ExportConfig(p, config.DefaultPackage)
		if err := config.WriteFile(exported, out); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s with %d cursors\n", out, len(exported.Cursors))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initSource.pkg, "pkg", config.DefaultPackage, "Package pattern declaring the cursor types")
	initCmd.Flags().StringSliceVar(&initSource.types, "type", nil, "Cursor type names (default: every type declaring Dereference)")
	initCmd.Flags().StringVar(&initSource.value, "value", "", "Declared element type for every --type")
	initCmd.Flags().StringVar(&initSource.difference, "difference", "", "Declared offset type for every --type")
	initCmd.Flags().StringVar(&initSource.require, "require", "", "Minimum category for every --type")
	initCmd.Flags().StringVarP(&initOut, "out", "o", "cursor.yaml", "Configuration file, relative to the package directory")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing configuration file")
}

// cursorCandidates returns the types of a package that declare Dereference.
func cursorCandidates(graph *analyze.TypeGraph, pkgPath string) []string {
	var names []string
	for _, name := range config.PackageTypeNames(pkgPath, graph) {
		t := config.ResolveCursorType(name, pkgPath, graph)
		if t != nil && t.AuthoredMethod(analyze.MethodDereference) != nil {
			names = append(names, name)
		}
	}

	return names
}
