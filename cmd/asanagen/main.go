// Package main is the entry point for the asanagen CLI, which turns
// the heading outline of word-processing documents into Asana-ready
// task import CSVs.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mboyd1/asanagen/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the asanagen CLI.
var rootCmd = &cobra.Command{
	Use:   "asanagen",
	Short: "Generate Asana import CSVs from document outlines",
	Long: `asanagen reads word-processing documents (docx, markdown, html, txt,
pdf), locates the products section in their heading outline, and exports
the product types, manufacturers and description notes beneath it as a
flat, parent-linked task list that Asana's CSV importer understands.

Use convert for one-off or batch conversion, inspect to see how a
document's styles map onto the heading roles, and serve to expose the
converter over HTTP.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./asanagen.yaml or ~/.config/asanagen/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	config.SetDefaults()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("asanagen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "asanagen"))
		}
	}

	viper.SetEnvPrefix("ASANAGEN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the process logger: JSON on stderr so generated CSV
// can go to stdout untouched.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if v, _ := rootCmd.PersistentFlags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
