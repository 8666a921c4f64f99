package cmd

import (
	"fmt"

	"github.com/KaramelBytes/likelens/internal/category"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the available categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range category.Default().All() {
			fmt.Fprintf(cmd.OutOrStdout(), "- %s: %s (%s)\n", d.Key, d.Title, d.DatasetRef)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
