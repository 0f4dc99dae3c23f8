package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cursor-generator/internal/plan"
)

var (
	checkSource sourceFlags
	checkFormat string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Show the detected capabilities and chosen strategies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := checkSource.load()
		if err != nil {
			return err
		}

		p, err := resolve(f, checkSource.resolutionConfig())
		if p == nil {
			return err
		}

		switch checkFormat {
		case "yaml":
			data, yerr := plan.ExportReportYAML(p)
			if yerr != nil {
				return yerr
			}

			if _, yerr := cmd.OutOrStdout().Write(data); yerr != nil {
				return yerr
			}
		case "text":
			writeReport(cmd.OutOrStdout(), plan.BuildReport(p))
		default:
			return fmt.Errorf("unknown format %q (want text or yaml)", checkFormat)
		}

		return finish(cmd.ErrOrStderr(), p, err)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkSource.register(checkCmd)
	checkCmd.Flags().StringVar(&checkFormat, "format", "text", "Output format (text, yaml)")
}

func writeReport(w io.Writer, r plan.Report) {
	for i, c := range r.Cursors {
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "%s: %s\n", c.Type, c.Category)
		fmt.Fprintf(w, "  capabilities: %s\n", strings.Join(c.Capabilities, ", "))
		fmt.Fprintf(w, "  reference: %s  element: %s  offset: %s\n", c.RefType, c.ElemType, c.OffsetType)

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, op := range c.Operations {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", op.Method, op.Symbol, op.Strategy, op.Explanation)
		}

		_ = tw.Flush()
	}
}
