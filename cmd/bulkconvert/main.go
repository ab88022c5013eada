// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bulkconvert CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/bulkconvert/internal/batch"
	"github.com/pdiddy/bulkconvert/internal/convert"
	"github.com/pdiddy/bulkconvert/internal/logging"
	"github.com/pdiddy/bulkconvert/internal/summary"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd performs the batch conversion itself; there is no separate run
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "bulkconvert",
	Short: "Bulk convert CSV files to Parquet format",
	Long: `bulkconvert converts every CSV file in a source directory into a Parquet
file, one output per input, preserving column order. Progress is appended to
CSV_to_Parquet_BULK.log in the target directory and a run summary is written
alongside the converted files.`,
	SilenceUsage: true,
	RunE:         runBatch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bulkconvert.yaml or ~/.config/bulkconvert/config.yaml)")

	rootCmd.Flags().String("source", "", "source directory containing CSV files")
	rootCmd.Flags().String("target", "", "target directory for Parquet files (defaults to source)")
	rootCmd.Flags().String("source-ext", batch.DefaultSourceExt, "extension identifying source files")
	rootCmd.Flags().String("dest-ext", batch.DefaultDestExt, "extension for converted output files")
	rootCmd.Flags().String("summary-format", string(summary.FormatJSON), "summary file format: json or yaml")
	_ = rootCmd.MarkFlagRequired("source")

	for _, name := range []string{"target", "source-ext", "dest-ext", "summary-format"} {
		_ = viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bulkconvert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "bulkconvert"))
		}
	}

	viper.SetEnvPrefix("BULKCONVERT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	source, _ := cmd.Flags().GetString("source")
	target := viper.GetString("target")
	if target == "" {
		target = source
	}

	format, err := summary.ParseFormat(viper.GetString("summary-format"))
	if err != nil {
		return err
	}

	log, closeLog, err := logging.New(target)
	if err != nil {
		return err
	}
	defer closeLog()

	runner := batch.NewRunner(log, convert.New(log), summary.New(log, format))
	_, err = runner.Run(batch.Options{
		SourceDir: source,
		TargetDir: target,
		SourceExt: viper.GetString("source-ext"),
		DestExt:   viper.GetString("dest-ext"),
	})
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
