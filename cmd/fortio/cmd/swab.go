package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syrte/fortio/pkg/store"
)

// swabCmd represents the swab command
var swabCmd = &cobra.Command{
	Use:   "swab <src> <dst>",
	Short: "Rewrite a file with swapped header byte order",
	Long: `Copy a Fortran unformatted file record by record, writing the headers
of the destination in the opposite byte order (or the order given with
--to). Payload bytes are copied untouched; only the record headers are
reframed.

Example:
  fortio swab big.unf little.unf --to little`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		srcCfg, err := fileConfig(cmd, args[0], store.ModeRead)
		if err != nil {
			return err
		}
		src, err := store.Open(srcCfg)
		if err != nil {
			return err
		}
		defer src.Close()

		target, err := swabTarget(cmd, src.ByteOrder())
		if err != nil {
			return err
		}

		dst, err := store.Open(store.Config{
			Path:             args[1],
			Mode:             store.ModeWrite,
			HeaderWidth:      src.HeaderWidth(),
			ByteOrder:        target,
			MaxSubrecordSize: srcCfg.MaxSubrecordSize,
		})
		if err != nil {
			return err
		}
		defer dst.Close()

		count, err := src.RecordCount()
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			data, err := src.ReadRecord()
			if err != nil {
				return err
			}
			if _, err := dst.WriteRecord(data); err != nil {
				return err
			}
		}
		if err := dst.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records rewritten %v-endian\n", args[1], count, target)
		return nil
	},
}

// swabTarget picks the destination byte order: the --to flag if given,
// otherwise the opposite of the source.
func swabTarget(cmd *cobra.Command, source store.ByteOrder) (store.ByteOrder, error) {
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		target, err := ParseByteOrder(to)
		if err != nil {
			return store.AutoByteOrder, err
		}
		if target == store.AutoByteOrder {
			return store.AutoByteOrder, fmt.Errorf("swab target must be little or big")
		}
		return target, nil
	}
	if source == store.BigEndian {
		return store.LittleEndian, nil
	}
	return store.BigEndian, nil
}

func init() {
	swabCmd.Flags().String("to", "", "Destination byte order: little or big (default the opposite of the source)")
	rootCmd.AddCommand(swabCmd)
}
