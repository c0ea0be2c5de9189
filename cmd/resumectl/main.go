// Package main is the entry point of the resumectl command line client.
package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"resumebuilder/internal/app"
	"resumebuilder/internal/config"
	"resumebuilder/internal/logger"
)

var (
	output     string
	backendURL string
)

var rootCmd = &cobra.Command{
	Use:           "resumectl",
	Short:         "Manage resumes stored in the resume builder backend",
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := os.Getenv("LOG_LEVEL")
		if level == "" {
			level = "warn"
		}
		logger.InitWithWriter(logger.Config{Level: level, Format: "pretty"}, os.Stderr)
	},
}

// Run executes the CLI and returns the process exit code.
func Run() int {
	rootCmd.SetOut(os.Stdout)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(Run())
}

// openWorkspace builds and starts a workspace from the environment. The
// caller must Close it.
func openWorkspace(ctx context.Context) (*app.Workspace, error) {
	cfg := config.Load()
	if backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}

	ws, err := app.New(ctx, cfg, app.WithRegisterer(prometheus.NewRegistry()))
	if err != nil {
		return nil, err
	}
	if err := ws.Start(ctx); err != nil {
		_ = ws.Close()
		return nil, err
	}
	return ws, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format: table (default) or json")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "Backend base URL, overrides BACKEND_URL")
}
