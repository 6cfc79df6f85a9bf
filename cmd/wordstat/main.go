// Package main provides the CLI entrypoint for wordstat.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordstat/internal/analyzer"
	"github.com/verte-zerg/wordstat/internal/config"
	"github.com/verte-zerg/wordstat/internal/export"
	"github.com/verte-zerg/wordstat/internal/model"
	"github.com/verte-zerg/wordstat/internal/stats"
	"github.com/verte-zerg/wordstat/internal/statsui"
	"github.com/verte-zerg/wordstat/internal/store"
	"github.com/verte-zerg/wordstat/internal/wordlist"
)

const (
	defaultTop     = 5
	defaultLongest = 5
	defaultWPM     = 225.0
	defaultFormat  = "text"
)

var (
	analyzeTop        int
	analyzeLongest    int
	analyzeWPM        float64
	analyzeIgnoreFile string
	analyzeFormat     string
	analyzeColor      bool
	analyzeNoSave     bool
	analyzeExport     string

	verbose bool
	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: "wordstat", Level: log.WarnLevel})
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordstat [file...]",
		Short:         "Text statistics: words, sentences, top words, reading time",
		Long:          "Analyze text from files or stdin. Use - to read stdin explicitly.",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			} else {
				logger.SetLevel(log.WarnLevel)
			}
		},
		RunE: runAnalyzeCmd,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().IntVar(&analyzeTop, "top", defaultTop, "number of most frequent words")
	rootCmd.Flags().IntVar(&analyzeLongest, "longest", defaultLongest, "number of longest words")
	rootCmd.Flags().Float64Var(&analyzeWPM, "wpm", defaultWPM, "reading speed in words per minute")
	rootCmd.Flags().StringVar(&analyzeIgnoreFile, "ignore-file", "", "word list excluded from top/longest words")
	rootCmd.Flags().StringVarP(&analyzeFormat, "format", "f", defaultFormat, "output format: text, json, csv, txt, html, md (xlsx only with --export)")
	rootCmd.Flags().BoolVar(&analyzeColor, "color", false, "force colored headings")
	rootCmd.Flags().BoolVar(&analyzeNoSave, "no-save", false, "do not record the analysis in history")
	rootCmd.Flags().StringVarP(&analyzeExport, "export", "o", "", "also write an export file; format follows the extension")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "top", &analyzeTop, fileCfg.Analysis.Top)
	applyIntConfig(cmd, "longest", &analyzeLongest, fileCfg.Analysis.Longest)
	applyFloatConfig(cmd, "wpm", &analyzeWPM, fileCfg.Analysis.WPM)
	applyStringConfig(cmd, "ignore-file", &analyzeIgnoreFile, fileCfg.Analysis.IgnoreFile)
	applyStringConfig(cmd, "format", &analyzeFormat, fileCfg.Output.Format)
	applyBoolConfig(cmd, "color", &analyzeColor, fileCfg.Output.Color)

	save := !analyzeNoSave
	if fileCfg.History.Save != nil && !cmd.Flags().Changed("no-save") {
		save = *fileCfg.History.Save
	}

	cfg := model.Config{
		TopN:       analyzeTop,
		LongestN:   analyzeLongest,
		WPM:        analyzeWPM,
		IgnoreFile: analyzeIgnoreFile,
		Format:     strings.ToLower(strings.TrimSpace(analyzeFormat)),
		Color:      analyzeColor,
		Save:       save,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	opts, err := analyzerOptions(cfg)
	if err != nil {
		return err
	}

	inputs, err := readInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if analyzeExport != "" && len(inputs) != 1 {
		return fmt.Errorf("--export requires exactly one input, got %d", len(inputs))
	}

	now := time.Now()
	out := cmd.OutOrStdout()
	results := make([]analyzer.Stats, len(inputs))
	for i, in := range inputs {
		st := analyzer.AnalyzeWith(in.text, opts)
		results[i] = st
		logger.Debug("analyzed", "source", in.source, "words", st.Words, "unique", st.UniqueWords)

		if len(inputs) > 1 && cfg.Format == defaultFormat {
			if _, err := fmt.Fprintf(out, "==> %s <==\n", in.source); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		if err := writeResult(cmd, cfg, in, st, now); err != nil {
			return err
		}
	}

	if analyzeExport != "" {
		if err := writeExportFile(analyzeExport, inputs[0], results[0], now); err != nil {
			return err
		}
		logger.Info("exported", "path", analyzeExport)
	}

	if cfg.Save {
		recordHistory(inputs, results, now)
	}
	return nil
}

func writeResult(cmd *cobra.Command, cfg model.Config, in input, st analyzer.Stats, now time.Time) error {
	out := cmd.OutOrStdout()
	switch cfg.Format {
	case defaultFormat:
		useColor := stats.ShouldUseColor(out, cfg.Color)
		if err := stats.RenderReport(out, st, useColor); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	case "json":
		if _, err := fmt.Fprintln(out, st.ToJSON()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	doc := export.Document{Stats: st, Text: in.text, Source: in.source, GeneratedAt: now}
	if err := export.Write(out, format, doc); err != nil {
		return fmt.Errorf("failed to write %s output: %w", format, err)
	}
	return nil
}

func writeExportFile(path string, in input, st analyzer.Stats, now time.Time) error {
	format, err := export.FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "wordstat-export-*")
	if err != nil {
		return fmt.Errorf("failed to create temp export: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	doc := export.Document{Stats: st, Text: in.text, Source: in.source, GeneratedAt: now}
	if err := export.Write(tmpFile, format, doc); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close export: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// recordHistory stores results in the history database. Failures are logged, not returned.
func recordHistory(inputs []input, results []analyzer.Stats, now time.Time) {
	storePath := config.DefaultDBPath()
	st, err := store.Open(storePath)
	if err != nil {
		logger.Warn("history disabled: failed to open db", "path", storePath, "err", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("failed to close db", "err", cerr)
		}
	}()
	ctx := context.Background()
	for i, in := range inputs {
		id, err := st.InsertAnalysis(ctx, in.source, now, results[i])
		if err != nil {
			logger.Warn("failed to record analysis", "source", in.source, "err", err)
			continue
		}
		logger.Debug("recorded analysis", "id", id, "source", in.source)
	}
}

func analyzerOptions(cfg model.Config) (analyzer.Options, error) {
	opts := analyzer.Options{
		TopN:           cfg.TopN,
		LongestN:       cfg.LongestN,
		WordsPerMinute: cfg.WPM,
	}
	if cfg.IgnoreFile == "" {
		return opts, nil
	}
	ignore, err := wordlist.LoadSet(cfg.IgnoreFile)
	if err != nil {
		return analyzer.Options{}, fmt.Errorf("failed to load ignore list %s: %w", cfg.IgnoreFile, err)
	}
	logger.Debug("loaded ignore list", "path", cfg.IgnoreFile, "words", len(ignore))
	opts.Ignore = ignore
	return opts, nil
}

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [file]",
		Short: "Browse statistics for a text interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runViewCmd,
	}
}

func runViewCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := model.Config{TopN: defaultTop, LongestN: defaultLongest, WPM: defaultWPM}
	if v := fileCfg.Analysis.Top; v != nil {
		cfg.TopN = *v
	}
	if v := fileCfg.Analysis.Longest; v != nil {
		cfg.LongestN = *v
	}
	if v := fileCfg.Analysis.WPM; v != nil {
		cfg.WPM = *v
	}
	if v := fileCfg.Analysis.IgnoreFile; v != nil {
		cfg.IgnoreFile = *v
	}
	opts, err := analyzerOptions(cfg)
	if err != nil {
		return err
	}

	inputs, err := readInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	in := inputs[0]
	st := analyzer.AnalyzeWith(in.text, opts)

	program := tea.NewProgram(statsui.NewModel(st, in.source, in.text), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run viewer: %w", err)
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
	if err := ensureConfigFile(path); err != nil {
		return err
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

func ensureConfigFile(path string) error {
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
		logger.Debug("created config", "path", path)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordstat configuration
# Uncomment a value to enable it. CLI flags override config values.

[analysis]
# top = %d                # Number of most frequent words
# longest = %d            # Number of longest words
# wpm = %.0f              # Reading speed in words per minute
# ignore-file = ""        # Word list excluded from top/longest words

[output]
# format = %q         # text, json, csv, txt, html, md
# color = false           # Force colored headings

[history]
# save = true             # Record analyses in the history database
`,
		defaultTop,
		defaultLongest,
		defaultWPM,
		defaultFormat,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.TopN <= 0 {
		return fmt.Errorf("--top must be > 0")
	}
	if cfg.LongestN <= 0 {
		return fmt.Errorf("--longest must be > 0")
	}
	if cfg.WPM <= 0 {
		return fmt.Errorf("--wpm must be > 0")
	}
	if cfg.Format == defaultFormat || cfg.Format == "json" {
		return nil
	}
	format, err := export.ParseFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("--format: %w", err)
	}
	if format == export.FormatXLSX {
		return fmt.Errorf("--format xlsx is binary; use --export report.xlsx")
	}
	return nil
}
