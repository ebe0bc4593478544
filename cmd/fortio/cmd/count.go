package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syrte/fortio/pkg/store"
)

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count <file>",
	Short: "Count the logical records in a file",
	Long: `Count the logical records in a Fortran unformatted file.

Example:
  fortio count snapshot.unf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := fileConfig(cmd, args[0], store.ModeRead)
		if err != nil {
			return err
		}
		f, err := store.Open(cfg)
		if err != nil {
			return err
		}
		defer f.Close()

		count, err := f.RecordCount()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
