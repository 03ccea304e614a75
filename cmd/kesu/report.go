package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/terassyi/kesu/internal/config"
	"github.com/terassyi/kesu/internal/files"
	"github.com/terassyi/kesu/internal/printer"
	"github.com/terassyi/kesu/internal/ui"
)

const outputText = "text"

// reportConfig holds configuration for the report command.
type reportConfig struct {
	top    int
	output string
	wide   bool
}

var reportCfg reportConfig

var reportCmd = &cobra.Command{
	Use:   "report [directory]",
	Short: "Print the largest entries of a directory",
	Long: `Scan a directory and print its largest entries, largest first.

  kesu report
  kesu report --top 20 /var/log
  kesu report -o json ~/Downloads`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		root, err := resolveRoot(args)
		if err != nil {
			return err
		}

		opts := reportConfig{
			top:    s.cfg.Report.Top,
			output: outputText,
			wide:   reportCfg.wide,
		}
		if cmd.Flags().Changed("top") {
			opts.top = reportCfg.top
		}
		if reportCfg.output != outputText {
			if opts.output, err = printer.ResolveFormat(reportCfg.output); err != nil {
				return err
			}
		}
		return runReport(cmd.Context(), root, cmd.OutOrStdout(), cmd.ErrOrStderr(), s.cfg, opts)
	},
}

func init() {
	reportCmd.Flags().IntVar(&reportCfg.top, "top", config.DefaultReportTop, "Number of entries to print")
	reportCmd.Flags().StringVarP(&reportCfg.output, "output", "o", outputText, "Output format (text, table, json)")
	reportCmd.Flags().BoolVar(&reportCfg.wide, "wide", false, "Show byte counts and item counts in table output")
}

// runReport scans root with a progress spinner and prints the top entries.
// Progress goes to errW unless the output is text, so table and JSON output
// stay clean for pipes.
func runReport(ctx context.Context, root string, w, errW io.Writer, cfg *config.Config, opts reportConfig) error {
	level, err := config.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	if cfg.Log.File != "" {
		f, err := openLogFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer f.Close()
		handler = fileHandler(f)
	}
	prevLogger := slog.Default()
	slog.SetDefault(slog.New(handler))
	defer slog.SetDefault(prevLogger)

	progressW := w
	if opts.output != outputText {
		progressW = errW
	}
	pm := ui.NewProgressManager(progressW)
	scanner := files.NewScanner(afero.NewOsFs(),
		files.WithParallelism(cfg.Scan.Parallelism),
		files.WithHidden(cfg.Scan.ShowHidden),
		files.WithProgress(pm.Progress),
	)

	pm.Start(root)
	tree, err := scanner.Scan(ctx, root)
	pm.Done(tree, err)
	if err != nil {
		return err
	}

	if opts.output == outputText {
		ui.PrintReport(w, tree, root, opts.top)
		return nil
	}
	return printer.Run(w, printer.NewReport(tree, root, opts.top), opts.output, opts.wide)
}
