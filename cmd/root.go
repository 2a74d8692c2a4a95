package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/sumit1004/neurolink_backend/cmd/http"
	systemcmd "github.com/sumit1004/neurolink_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "neurolink",
	Short: "NeuroLink caregiver dashboard backend.",
	Long: `NeuroLink is the backend for a family caregiver dashboard. It tracks a
patient's routines, known people, doctors, health records, conversations,
location and alerts, and pushes realtime updates to the dashboard.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
