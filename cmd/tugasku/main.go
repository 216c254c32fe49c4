package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "tugasku/docs" // Swagger docs
)

var rootCmd = &cobra.Command{
	Use:   "tugasku",
	Short: "Tugasku - pencatat tugas, jadwal, dan catatan sekolah",
	Long: `Tugasku turns short Indonesian chat messages into homework tasks, weekly lesson
schedules and notes. Every parsed message is shown as an editable preview before it is saved.`,
	SilenceUsage: true,
}

var (
	useMemory bool
	verbose   bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&useMemory, "memory", false, "Keep data in memory only (nothing is written to disk)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show informational logs")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(tasksCmd, toggleCmd)
	rootCmd.AddCommand(schedulesCmd, notesCmd, deleteCmd)
	rootCmd.AddCommand(statsCmd, settingsCmd, clearCmd)
	rootCmd.AddCommand(serveCmd)
}

// @title       Tugasku API
// @description Local JSON API for the student task, schedule and note tracker.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
