package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dspiliot/agora/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "agora",
	Short: "Adaptive philosophy diagnostics server",
	Long:  "Agora — LLM-backed diagnostic question service for an introductory philosophy course.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AGORA_DB env var)")
	rootCmd.PersistentFlags().String("log", "production", "Log mode: production or development")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then AGORA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
