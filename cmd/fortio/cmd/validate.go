package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syrte/fortio/pkg/store"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a file frames cleanly end to end",
	Long: `Walk every subrecord of every record from the start of the file and
check that all prefix/suffix header pairs agree and that the record spans
cover the file exactly.

Example:
  fortio validate snapshot.unf`,
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

		if err := f.Validate(); err != nil {
			return err
		}
		count, err := f.RecordCount()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d records, %d bytes, %v-endian headers\n", count, f.Size(), f.ByteOrder())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
