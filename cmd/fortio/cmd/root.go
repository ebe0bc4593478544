/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syrte/fortio/pkg/config"
	"github.com/syrte/fortio/pkg/store"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fortio",
	Short: "Inspect and convert Fortran unformatted files",
	Long: `fortio works with Fortran unformatted sequential files: variable-length
records bounded by signed headers, with subrecord chains for records
larger than one header can express. Header byte order is detected
automatically unless forced with --endian.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("endian", "e", "auto", "Header byte order: auto, little or big")
	rootCmd.PersistentFlags().IntP("header-width", "w", 0, "Header width in bytes (2 or 4)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default "+config.GetDefaultConfigPath()+")")
}

// ParseByteOrder maps a flag or config value onto a store.ByteOrder.
func ParseByteOrder(s string) (store.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return store.AutoByteOrder, nil
	case "little", "le":
		return store.LittleEndian, nil
	case "big", "be":
		return store.BigEndian, nil
	default:
		return store.AutoByteOrder, fmt.Errorf("unknown byte order %q: want auto, little or big", s)
	}
}

// fileConfig resolves the config file and flags into a store.Config for path.
// Flags win over the config file, which wins over built-in defaults.
func fileConfig(cmd *cobra.Command, path string, mode store.Mode) (store.Config, error) {
	cfg := config.DefaultConfig()

	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		if def := config.GetDefaultConfigPath(); config.ConfigExists(def) {
			cfgPath = def
		}
	}
	if cfgPath != "" {
		loaded, err := config.LoadConfig(cfgPath)
		if err != nil {
			return store.Config{}, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("header-width") {
		cfg.HeaderWidth, _ = cmd.Flags().GetInt("header-width")
	}
	if cmd.Flags().Changed("endian") {
		cfg.ByteOrder, _ = cmd.Flags().GetString("endian")
	}

	order, err := ParseByteOrder(cfg.ByteOrder)
	if err != nil {
		return store.Config{}, err
	}

	return store.Config{
		Path:             path,
		Mode:             mode,
		HeaderWidth:      cfg.HeaderWidth,
		ByteOrder:        order,
		MaxSubrecordSize: cfg.MaxSubrecordSize,
	}, nil
}
