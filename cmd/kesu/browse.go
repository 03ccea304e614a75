package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/terassyi/kesu/internal/config"
	kesuerrors "github.com/terassyi/kesu/internal/errors"
	"github.com/terassyi/kesu/internal/event"
	"github.com/terassyi/kesu/internal/files"
	"github.com/terassyi/kesu/internal/lock"
	"github.com/terassyi/kesu/internal/ui"
	"golang.org/x/sync/errgroup"
)

const (
	eventBufferSize       = 64
	instructionBufferSize = 64
)

func runBrowse(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if !isTerminal() {
		return runReport(cmd.Context(), root, w, cmd.ErrOrStderr(), s.cfg, reportConfig{top: s.cfg.Report.Top, output: outputText})
	}

	l, err := lock.New(s.paths.LockDir(), root)
	if err != nil {
		return err
	}
	if err := l.TryLock(); err != nil {
		return err
	}
	defer func() {
		if err := l.Unlock(); err != nil {
			slog.Warn("failed to release lock", "path", l.Path(), "error", err)
		}
	}()

	return runTUI(cmd.Context(), root, w, s.cfg)
}

// runTUI runs the browser until the user quits, then stops the orchestrator.
func runTUI(ctx context.Context, root string, w io.Writer, cfg *config.Config) error {
	fs := afero.NewOsFs()
	events := make(chan event.Event, eventBufferSize)
	queue := event.NewQueue(instructionBufferSize)

	model := ui.NewModel(root, events, queue, files.NewDeleter(fs))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(w), tea.WithContext(ctx))

	// Route slog output into the TUI status line instead of stderr
	level, err := config.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	var logOpts []ui.LogOption
	if cfg.Log.File != "" {
		f, err := openLogFile(cfg.Log.File)
		if err != nil {
			return kesuerrors.NewConfigError("failed to open log file", err).WithFile(cfg.Log.File)
		}
		defer f.Close()
		logOpts = append(logOpts, ui.WithTee(fileHandler(f)))
	}
	prevLogger := slog.Default()
	slog.SetDefault(slog.New(ui.NewTUILogHandler(p, level, logOpts...)))
	defer slog.SetDefault(prevLogger)

	g, gctx := errgroup.WithContext(ctx)
	orchestrator := event.NewOrchestrator(events, queue)
	g.Go(func() error {
		return orchestrator.Run(gctx)
	})

	scanCtx, cancelScan := context.WithCancel(ctx)
	defer cancelScan()

	reporter := ui.NewScanReporter(p)
	scanner := files.NewScanner(fs,
		files.WithParallelism(cfg.Scan.Parallelism),
		files.WithHidden(cfg.Scan.ShowHidden),
		files.WithProgress(reporter.Progress),
	)
	go func() {
		tree, err := scanner.Scan(scanCtx, root)
		reporter.Done(tree, err)
	}()

	_, runErr := p.Run()

	cancelScan()
	queue.Close()
	select {
	case events <- event.AppExit:
	case <-gctx.Done():
	}
	orchErr := g.Wait()

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return kesuerrors.Wrap(kesuerrors.CategoryUI, "TUI error", runErr)
	}
	if err := model.Err(); err != nil {
		return err
	}
	if orchErr != nil && !errors.Is(orchErr, context.Canceled) {
		slog.Error("feedback orchestrator stopped", "error", orchErr)
		return kesuerrors.Wrap(kesuerrors.CategoryUI, "feedback orchestrator stopped", orchErr).
			WithCode(kesuerrors.CodeEventQueueClosed)
	}

	// AltScreen clears on exit, so leave the total in scrollback
	fmt.Fprintf(w, "Space freed: %s\n", ui.FormatSize(model.SpaceFreed()))
	return nil
}
