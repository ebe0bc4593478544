package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syrte/fortio/pkg/store"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show the record layout of a file",
	Long: `Show every logical record in a Fortran unformatted file: its ordinal,
starting offset, payload size and how many subrecords it spans.

Example:
  fortio info snapshot.unf`,
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

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d records, %d bytes, %v-endian headers\n", f.Path(), count, f.Size(), f.ByteOrder())
		fmt.Fprintf(out, "%8s %12s %12s %6s\n", "RECORD", "OFFSET", "BYTES", "SUBREC")
		for i := 0; i < count; i++ {
			info, err := f.RecordInfo(i)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%8d %12d %12d %6d\n", info.Ordinal, info.Offset, info.Payload, info.Subrecords)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
