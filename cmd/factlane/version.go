package main

import (
	"fmt"
	"strings"

	"github.com/factlane/factlane"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of factlane",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("factlane version %s\n", strings.TrimSpace(factlane.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
