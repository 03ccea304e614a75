package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/terassyi/kesu/internal/config"
	"github.com/terassyi/kesu/internal/path"
)

const outputJSON = "json"

// globalConfig holds the persistent flags shared by every command.
type globalConfig struct {
	configFile string
	logLevel   string
	noColor    bool
}

var globalCfg globalConfig

var rootCmd = &cobra.Command{
	Use:   "kesu [directory]",
	Short: "Find and delete what fills your disk",
	Long: `Kesu scans a directory and lets you browse it largest-first,
deleting files and folders you no longer need.

  kesu            Browse the current directory
  kesu ~/Downloads
  kesu report .   Print the largest entries without the TUI

When stdout is not a terminal, kesu prints a report instead of
starting the browser.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runBrowse,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalCfg.configFile, "config", config.DefaultConfigFile, "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&globalCfg.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&globalCfg.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		versionCmd,
		reportCmd,
	)
}

// settings is the resolved configuration for one invocation.
type settings struct {
	cfg   *config.Config
	paths *path.Paths
}

// loadSettings reads the config file and applies flag overrides on top.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	configFile, err := path.Expand(globalCfg.configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = globalCfg.logLevel
	}
	if cmd.Flags().Changed("no-color") {
		cfg.UI.NoColor = globalCfg.noColor
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.UI.NoColor {
		disableColor()
	}

	paths, err := path.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize paths: %w", err)
	}

	return &settings{cfg: cfg, paths: paths}, nil
}

// disableColor turns off colour for fatih/color and lipgloss alike.
func disableColor() {
	globalCfg.noColor = true
	color.NoColor = true
	lipgloss.SetColorProfile(termenv.Ascii)
}

// resolveRoot returns the absolute directory to scan.
func resolveRoot(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	expanded, err := path.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", dir, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	return abs, nil
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// openLogFile opens the configured log file for appending.
func openLogFile(name string) (*os.File, error) {
	expanded, err := path.Expand(name)
	if err != nil {
		return nil, err
	}
	if err := path.EnsureDir(filepath.Dir(expanded)); err != nil {
		return nil, err
	}
	return os.OpenFile(expanded, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// fileHandler returns a text handler writing every level to f.
func fileHandler(f *os.File) slog.Handler {
	return slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
}
