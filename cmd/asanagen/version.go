package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the asanagen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("asanagen", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
