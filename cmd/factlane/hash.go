package main

import (
	"fmt"

	"github.com/factlane/factlane/pkg/hashing"
	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash <text>",
	Short: "Compute the content hash identifying a piece of text",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(hashing.ContentHash(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(hashCmd)
}
