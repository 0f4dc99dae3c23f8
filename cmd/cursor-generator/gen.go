package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cursor-generator/internal/config"
	"cursor-generator/internal/gen"
	"cursor-generator/internal/logging"
)

var (
	genSource       sourceFlags
	genOutput       string
	genDryRun       bool
	genNoAssertions bool
	genNoComments   bool
	genNoMetadata   bool
	genDebugDir     string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate the derived cursor methods",
	Example: `  cursor-generator gen -c cursor.yaml
  cursor-generator gen --type cityCursor --value City --require random_access`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := genSource.load()
		if err != nil {
			return err
		}

		if genOutput != "" {
			f.Output = genOutput
		}

		if genNoAssertions {
			f.Options.Assertions = config.Bool(false)
		}

		if genNoComments {
			f.Options.Comments = config.Bool(false)
		}

		if genNoMetadata {
			f.Options.Metadata = config.Bool(false)
		}

		p, err := resolve(f, genSource.resolutionConfig())
		if err := finish(cmd.ErrOrStderr(), p, err); err != nil {
			return err
		}

		cfg := gen.ConfigFromOptions(p.Options)
		cfg.DebugDir = genDebugDir

		file, err := gen.NewGenerator(cfg).Generate(p)
		if err != nil {
			return err
		}

		if genDryRun {
			_, err := cmd.OutOrStdout().Write(file.Content)
			return err
		}

		if err := gen.WriteFiles(file); err != nil {
			return err
		}

		logging.Info().Str("file", file.Path()).Int("cursors", len(p.Cursors)).Msg("wrote cursor file")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(genCmd)
	genSource.register(genCmd)
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", fmt.Sprintf("Generated file name (default %q)", config.DefaultOutput))
	genCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Print the generated file instead of writing it")
	genCmd.Flags().BoolVar(&genNoAssertions, "no-assertions", false, "Omit interface compliance assertions")
	genCmd.Flags().BoolVar(&genNoComments, "no-comments", false, "Omit doc comments")
	genCmd.Flags().BoolVar(&genNoMetadata, "no-metadata", false, "Omit element and offset type aliases")
	genCmd.Flags().StringVar(&genDebugDir, "debug-dir", "", "Directory receiving unformatted output when formatting fails")
}
