package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/akyairhashvil/lighttrack/internal/config"
	"github.com/akyairhashvil/lighttrack/internal/database"
	"github.com/akyairhashvil/lighttrack/internal/httpserver"
	"github.com/akyairhashvil/lighttrack/internal/report"
	"github.com/akyairhashvil/lighttrack/internal/tui"
	"github.com/akyairhashvil/lighttrack/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type options struct {
	serve      bool
	report     bool
	preset     string
	from       string
	to         string
	format     string
	outDir     string
	exportPath string
	importPath string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.serve, "serve", false, "serve the HTTP API instead of the terminal UI")
	fs.BoolVar(&opts.report, "report", false, "print a report for a date range and exit")
	fs.StringVar(&opts.preset, "preset", util.PresetToday, "date preset: today, yesterday, this-week, last-week")
	fs.StringVar(&opts.from, "from", "", "range start (YYYY-MM-DD), overrides -preset")
	fs.StringVar(&opts.to, "to", "", "range end (YYYY-MM-DD), defaults to -from")
	fs.StringVar(&opts.format, "format", "text", "report format: text or pdf")
	fs.StringVar(&opts.outDir, "out", "", "directory for PDF reports")
	fs.StringVar(&opts.exportPath, "export", "", "write intervals in the range to this JSON file and exit")
	fs.StringVar(&opts.importPath, "import", "", "import intervals from this JSON file and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.format != "text" && opts.format != "pdf" {
		return opts, fmt.Errorf("unknown report format %q", opts.format)
	}
	return opts, nil
}

// dateRange resolves -from/-to or, without -from, the preset.
func (o options) dateRange(now time.Time) (util.DateRange, error) {
	if o.from == "" {
		return util.PresetRange(o.preset, now)
	}
	from, err := util.ParseDate(o.from)
	if err != nil {
		return util.DateRange{}, err
	}
	to := from
	if o.to != "" {
		if to, err = util.ParseDate(o.to); err != nil {
			return util.DateRange{}, err
		}
	}
	return util.DateRange{From: from, To: to}, nil
}

func (o options) interactive() bool {
	return !o.serve && !o.report && o.exportPath == "" && o.importPath == ""
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg, err := config.Load(util.ConfigDir(config.AppName), util.DataDir(config.AppName))
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	// The terminal UI owns stderr's screen, so it logs to a file.
	var outputs []string
	if opts.interactive() {
		if err := os.MkdirAll(filepath.Dir(cfg.Logger.File), 0o755); err == nil {
			outputs = append(outputs, cfg.Logger.File)
		}
	}
	log, err := util.NewLogger(cfg.Logger.Level, cfg.Logger.Encoding, outputs...)
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DBPath, database.WithLogger(log))
	if err != nil {
		log.Error("open store", zap.String("path", cfg.DBPath), zap.Error(err))
		fmt.Fprintf(stderr, "open %s: %v\n", cfg.DBPath, err)
		return 1
	}
	defer func() { util.LogError(log, "close store", db.Close()) }()

	switch {
	case opts.importPath != "":
		err = runImport(ctx, db, opts.importPath, stdout)
	case opts.exportPath != "":
		err = runExport(ctx, db, opts, time.Now(), stdout)
	case opts.report:
		err = runReport(ctx, db, opts, time.Now(), stdout)
	case opts.serve:
		err = runServer(ctx, db, cfg, log)
	default:
		err = runTUI(ctx, db, cfg, log)
	}
	if err != nil {
		log.Error("command failed", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func runTUI(ctx context.Context, store tui.Store, cfg *config.Config, log *zap.Logger) error {
	model := tui.NewModel(ctx, store, tui.Options{
		RecentWindowDays: cfg.RecentWindowDays,
		Theme:            cfg.TUI.Theme,
		Logger:           log,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

func runServer(ctx context.Context, repo database.Repository, cfg *config.Config, log *zap.Logger) error {
	srv, err := httpserver.New(repo, httpserver.Config{
		Addr:             cfg.HTTP.Addr,
		Mode:             cfg.HTTP.Mode,
		RecentWindowDays: cfg.RecentWindowDays,
		Logger:           log,
	})
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

func runReport(ctx context.Context, repo database.Repository, opts options, now time.Time, stdout io.Writer) error {
	r, err := opts.dateRange(now)
	if err != nil {
		return err
	}
	entries, err := repo.EntriesForRange(ctx, r.From, r.To)
	if err != nil {
		return err
	}
	if opts.format == "text" {
		summary := report.BuildTrackSummary(entries)
		if summary == "" {
			summary = "Nothing tracked for " + report.RangeTitle(r)
		}
		_, err = fmt.Fprintln(stdout, summary)
		return err
	}

	stats, err := repo.StatsForRange(ctx, r.From, r.To)
	if err != nil {
		return err
	}
	dir := opts.outDir
	if dir == "" {
		dir = util.ReportsDir(config.AppName)
	}
	path, err := report.SavePDF(dir, report.RangeReport{Range: r, Entries: entries, Stats: stats, GeneratedAt: now})
	if err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	_, err = fmt.Fprintf(stdout, "PDF report generated: %s\n", path)
	return err
}

func runExport(ctx context.Context, repo database.TransferRepository, opts options, now time.Time, stdout io.Writer) error {
	r, err := opts.dateRange(now)
	if err != nil {
		return err
	}
	data, err := repo.ExportIntervals(ctx, r.From, r.To)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.exportPath, data, 0o600); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "Exported %s to %s\n", report.RangeTitle(r), opts.exportPath)
	return err
}

func runImport(ctx context.Context, repo database.TransferRepository, path string, stdout io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	n, err := repo.ImportIntervals(ctx, data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "Imported %d intervals\n", n)
	return err
}
