// Package main provides the CLI entrypoint for moodcount.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/moodcount/internal/config"
	"github.com/verte-zerg/moodcount/internal/counterfile"
	"github.com/verte-zerg/moodcount/internal/history"
	"github.com/verte-zerg/moodcount/internal/model"
	"github.com/verte-zerg/moodcount/internal/stats"
	"github.com/verte-zerg/moodcount/internal/store"
	"github.com/verte-zerg/moodcount/internal/tui"
)

const (
	defaultRecent      = 3
	defaultTrendWindow = 7
)

var (
	counterPath string
	recent      int
	noLoad      bool
	noJournal   bool

	statsSince  string
	statsLast   int
	statsWindow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "moodcount",
		Short:         "Count recorded mood check-ins with undo/redo",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runCounterCmd,
	}

	rootCmd.PersistentFlags().StringVar(&counterPath, "file", "", "counter file path (default ~/.rimueirnarn.moodhealth.counter)")
	rootCmd.Flags().IntVar(&recent, "recent", defaultRecent, "number of recent entries to show")
	rootCmd.Flags().BoolVar(&noLoad, "no-load", false, "start empty instead of loading the counter file")
	rootCmd.Flags().BoolVar(&noJournal, "no-journal", false, "do not record saves in the journal database")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newPathCmd())

	return rootCmd
}

// resolveConfig merges the config file with CLI flags. Flags win.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := model.Config{
		CounterPath: config.DefaultCounterPath(),
		Recent:      recent,
		LoadOnStart: !noLoad,
		Journal:     !noJournal,
	}
	if fileCfg.Counter.Path != nil {
		cfg.CounterPath = *fileCfg.Counter.Path
	}
	if counterPath != "" {
		cfg.CounterPath = counterPath
	}
	applyIntConfig(cmd, "recent", &cfg.Recent, fileCfg.Counter.Recent)
	applyBoolConfig(cmd, "no-load", &cfg.LoadOnStart, fileCfg.Counter.LoadOnStart)
	applyBoolConfig(cmd, "no-journal", &cfg.Journal, fileCfg.Counter.Journal)

	path, err := config.ExpandPath(cfg.CounterPath)
	if err != nil {
		return model.Config{}, err
	}
	cfg.CounterPath = path
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runCounterCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var st *store.Store
	if cfg.Journal {
		st, err = store.Open(config.DefaultDBPath())
		if err != nil {
			logErrf("failed to open journal db, saves will not be journaled: %v\n", err)
			st = nil
		} else {
			defer func() {
				if cerr := st.Close(); cerr != nil {
					logErrf("failed to close db: %v\n", cerr)
				}
			}()
		}
	}

	log := history.New()
	m := tui.NewModel(cfg, log, st)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show counts, mood trend and save journal",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "journal start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit journal to last N saves")
	cmd.Flags().IntVar(&statsWindow, "window", defaultTrendWindow, "moving average window for the trend")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	statsCfg := model.StatsConfig{Last: statsLast, Window: statsWindow}
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		statsCfg.Since = &parsed
	}
	if statsCfg.Last < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	cats, err := counterfile.Load(cfg.CounterPath)
	if err != nil {
		return err
	}
	log := history.New()
	log.Import(cats)

	out := cmd.OutOrStdout()
	if err := stats.RenderCounts(out, log.Counts()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderTrend(out, log.Events(), statsCfg.Window, 0); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	saves, err := st.ListSaves(context.Background(), statsCfg)
	if err != nil {
		return fmt.Errorf("failed to list saves: %w", err)
	}
	if err := stats.RenderSaves(out, saves); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the recorded history, one mood per line",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cats, err := counterfile.Load(cfg.CounterPath)
	if err != nil {
		return err
	}
	return writeExport(cmd.OutOrStdout(), cats)
}

func writeExport(w io.Writer, cats []model.Category) error {
	for _, c := range cats {
		if _, err := fmt.Fprintln(w, c.String()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the counter file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), cfg.CounterPath); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# moodcount configuration
# Uncomment a value to enable it. CLI flags override config values.

[counter]
# path = %q   # Counter file
# recent = %d                                  # Recent entries shown
# load-on-start = true                         # Load the counter file on start
# journal = true                               # Record saves in the journal database
`,
		"~/.rimueirnarn.moodhealth.counter",
		defaultRecent,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Recent < 0 {
		return fmt.Errorf("--recent must be >= 0")
	}
	if cfg.CounterPath == "" {
		return fmt.Errorf("counter path must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
