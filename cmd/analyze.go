package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/likelens/internal/utils"
	"github.com/spf13/cobra"
)

var (
	anaOutputPath string
	anaJSON       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <category>",
	Short: "Fit likes against views for one category and write its plot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newAnalyzer()
		if err != nil {
			return err
		}
		rep, err := a.Analyze(args[0])
		if err != nil {
			return err
		}

		var out string
		if anaJSON {
			b, err := utils.PrettyJSON(rep)
			if err != nil {
				return err
			}
			out = string(b) + "\n"
		} else {
			var b strings.Builder
			b.WriteString(rep.Insights.Markdown(rep.Title))
			b.WriteString(fmt.Sprintf("\n[PLOT]\n%s\n", rep.Plot.Path))
			if len(rep.Warnings) > 0 {
				b.WriteString("\n[NOTES]\n")
				for _, w := range rep.Warnings {
					b.WriteString("- " + w + "\n")
				}
			}
			out = b.String()
		}

		if anaOutputPath != "" {
			if err := utils.SafeWriteFile(anaOutputPath, []byte(out)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote analysis to %s\n", anaOutputPath)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the report")
	analyzeCmd.Flags().BoolVar(&anaJSON, "json", false, "emit the report as JSON")
}
