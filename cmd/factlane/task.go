package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage persisted workflow tasks",
	Long:  `List, inspect, and remove workflow snapshots from the configured store.`,
}

var taskLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all persisted tasks",
	Run: func(cmd *cobra.Command, args []string) {
		engine, _, err := buildEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing factlane: %v\n", err)
			os.Exit(1)
		}

		hashes, err := engine.Store().List(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing tasks: %v\n", err)
			os.Exit(1)
		}

		if len(hashes) == 0 {
			fmt.Println("No persisted tasks found.")
			return
		}

		fmt.Println("Persisted tasks:")
		for _, h := range hashes {
			snap, err := engine.Store().Load(cmd.Context(), h)
			if err != nil {
				fmt.Printf("- %s (unreadable: %v)\n", h, err)
				continue
			}
			fmt.Printf("- %s  [%s]\n", h, snap.Value)
		}
	},
}

var taskInspectCmd = &cobra.Command{
	Use:   "inspect <content-hash>",
	Short: "Inspect the snapshot of a task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hash := args[0]
		engine, _, err := buildEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing factlane: %v\n", err)
			os.Exit(1)
		}

		snap, err := engine.Store().Load(cmd.Context(), hash)
		if err != nil {
			fmt.Printf("Error loading task '%s': %v\n", hash, err)
			os.Exit(1)
		}

		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	},
}

var taskRmCmd = &cobra.Command{
	Use:   "rm <content-hash>",
	Short: "Remove a persisted task",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		hash := args[0]
		engine, _, err := buildEngine(cmd)
		if err != nil {
			fmt.Printf("Error initializing factlane: %v\n", err)
			os.Exit(1)
		}

		if err := engine.Store().Delete(cmd.Context(), hash); err != nil {
			fmt.Printf("Error removing task '%s': %v\n", hash, err)
			os.Exit(1)
		}
		fmt.Printf("Removed task %s\n", hash)
	},
}

func init() {
	taskCmd.AddCommand(taskLsCmd)
	taskCmd.AddCommand(taskInspectCmd)
	taskCmd.AddCommand(taskRmCmd)
	rootCmd.AddCommand(taskCmd)
}
