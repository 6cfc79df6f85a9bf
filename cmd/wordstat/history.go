package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordstat/internal/config"
	"github.com/verte-zerg/wordstat/internal/model"
	"github.com/verte-zerg/wordstat/internal/stats"
	"github.com/verte-zerg/wordstat/internal/store"
)

var (
	historySource string
	historySince  string
	historyLast   int
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded analyses",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySource, "source", "", "source filter (file path or <stdin>)")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N analyses")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Print a recorded analysis as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShowCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a recorded analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryRemoveCmd,
	})
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	cfg := model.HistoryConfig{
		Source: historySource,
		Since:  sinceTime,
		Last:   historyLast,
	}

	return withStore(func(st *store.Store) error {
		h, err := stats.BuildHistory(context.Background(), st, cfg)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		out := cmd.OutOrStdout()
		return stats.RenderHistory(out, h, stats.TerminalWidth(), stats.ShouldUseColor(out, false))
	})
}

func runHistoryShowCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withStore(func(st *store.Store) error {
		rec, err := st.GetAnalysis(context.Background(), id)
		if err != nil {
			return lookupError(id, err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), rec.Stats.ToJSON())
		return err
	})
}

func runHistoryRemoveCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withStore(func(st *store.Store) error {
		if err := st.DeleteAnalysis(context.Background(), id); err != nil {
			return lookupError(id, err)
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted analysis %d\n", id)
		return err
	})
}

func withStore(fn func(*store.Store) error) error {
	storePath := config.DefaultDBPath()
	st, err := store.Open(storePath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("failed to close db", "err", cerr)
		}
	}()
	return fn(st)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid analysis id %q", arg)
	}
	return id, nil
}

func lookupError(id int64, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("analysis %d not found", id)
	}
	return fmt.Errorf("failed to load analysis %d: %w", id, err)
}
