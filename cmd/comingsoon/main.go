// Package main is the entry point for the comingsoon splash.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/teamssUTXO/comingsoon/internal/config"
	"github.com/teamssUTXO/comingsoon/internal/logging"
	"github.com/teamssUTXO/comingsoon/internal/page"
	"github.com/teamssUTXO/comingsoon/internal/tui"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "comingsoon",
		Short:   "Terminal \"coming soon\" splash for the teamssUTXO portfolio",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			duration, _ := cmd.Flags().GetInt("duration")
			logFile, _ := cmd.Flags().GetString("log")
			return runSplash(cfgPath, duration, logFile)
		},
	}
	root.Flags().String("config", "", "path to comingsoon.toml (default: search upward)")
	root.Flags().Int("duration", 0, "override loading duration in ms (0 = use config)")
	root.Flags().String("log", "", "override lifecycle log file")

	root.AddCommand(initCmd())
	return root
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create comingsoon.toml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}
}

// applyOverrides folds command-line flag overrides into the loaded config.
func applyOverrides(cfg *config.Config, durationMs int, logFile string) {
	if durationMs > 0 {
		cfg.Splash.LoadingMs = durationMs
	}
	if logFile != "" {
		cfg.Logging.File = logFile
	}
}

// runSplash loads config, wires the document and logger, and runs the
// alt-screen bubbletea program until the user quits.
func runSplash(cfgPath string, durationMs int, logFile string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	applyOverrides(cfg, durationMs, logFile)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.Setup(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	logger.Info().
		Int("loading_ms", cfg.Splash.LoadingMs).
		Str("version", version).
		Msg("splash starting")

	model := tui.New(cfg, page.NewDocument(), logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run splash: %w", err)
	}
	return nil
}
