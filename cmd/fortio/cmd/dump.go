package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/syrte/fortio/pkg/numeric"
	"github.com/syrte/fortio/pkg/store"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <file> <record>",
	Short: "Extract one record's payload",
	Long: `Extract the payload of a single logical record. By default the raw
bytes go to stdout (or to --output); with --dtype the payload is decoded
as an array of numbers in the file's byte order and printed one per line.

Example:
  fortio dump snapshot.unf 3 --dtype float32`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ordinal, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid record ordinal %q: %w", args[1], err)
		}

		cfg, err := fileConfig(cmd, args[0], store.ModeRead)
		if err != nil {
			return err
		}
		f, err := store.Open(cfg)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := f.GotoRecord(ordinal); err != nil {
			return err
		}
		data, err := f.ReadRecord()
		if err != nil {
			return err
		}

		var out io.Writer = cmd.OutOrStdout()
		if outPath, _ := cmd.Flags().GetString("output"); outPath != "" {
			file, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer file.Close()
			out = file
		}

		dtype, _ := cmd.Flags().GetString("dtype")
		if dtype == "" {
			_, err := out.Write(data)
			return err
		}

		order, _ := f.ByteOrder().Binary()
		switch dtype {
		case "int32":
			values, err := numeric.Int32s(data, order)
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Fprintln(out, v)
			}
		case "float32":
			values, err := numeric.Float32s(data, order)
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Fprintln(out, v)
			}
		case "float64":
			values, err := numeric.Float64s(data, order)
			if err != nil {
				return err
			}
			for _, v := range values {
				fmt.Fprintln(out, v)
			}
		default:
			return fmt.Errorf("unknown dtype %q: want int32, float32 or float64", dtype)
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringP("output", "o", "", "Write the payload to a file instead of stdout")
	dumpCmd.Flags().String("dtype", "", "Decode the payload as int32, float32 or float64")
	rootCmd.AddCommand(dumpCmd)
}
