package stats

import (
	"context"
	"fmt"
	"io"

	mstats "github.com/montanaflynn/stats"

	"github.com/verte-zerg/wordstat/internal/model"
	"github.com/verte-zerg/wordstat/internal/store"
)

const sourceColumnMin = 12

// History contains stored analyses prepared for rendering.
type History struct {
	Records []model.AnalysisRecord
	Words   []float64
}

// WordsSummary describes the distribution of word counts across history records.
type WordsSummary struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// SummarizeWords computes WordsSummary for a word-count series.
func SummarizeWords(words []float64) (WordsSummary, error) {
	var (
		s   WordsSummary
		err error
	)
	data := mstats.Float64Data(words)
	if s.Mean, err = data.Mean(); err != nil {
		return WordsSummary{}, err
	}
	if s.Median, err = data.Median(); err != nil {
		return WordsSummary{}, err
	}
	if s.StdDev, err = data.StandardDeviation(); err != nil {
		return WordsSummary{}, err
	}
	if s.Min, err = data.Min(); err != nil {
		return WordsSummary{}, err
	}
	if s.Max, err = data.Max(); err != nil {
		return WordsSummary{}, err
	}
	return s, nil
}

// BuildHistory loads stored analyses matching cfg.
func BuildHistory(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (History, error) {
	records, err := st.ListAnalyses(ctx, cfg)
	if err != nil {
		return History{}, err
	}
	words := make([]float64, len(records))
	for i, rec := range records {
		words[i] = float64(rec.Stats.Words)
	}
	return History{Records: records, Words: words}, nil
}

// RenderHistory prints stored analyses as a table followed by a word-count trend.
// Sources wider than the space left by width are truncated; width <= 0 disables truncation.
func RenderHistory(w io.Writer, h History, width int, useColor bool) error {
	if len(h.Records) == 0 {
		_, err := fmt.Fprintln(w, "No analyses found.")
		return err
	}
	if err := writeHeading(w, "History", useColor); err != nil {
		return err
	}
	headers := []string{"ID", "Analyzed", "Words", "Unique", "Reading", "Source"}
	rows := make([][]string, 0, len(h.Records))
	for _, rec := range h.Records {
		rows = append(rows, []string{
			fmt.Sprintf("%d", rec.ID),
			rec.AnalyzedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", rec.Stats.Words),
			fmt.Sprintf("%d", rec.Stats.UniqueWords),
			FormatDuration(rec.Stats.ReadingTimeSeconds),
			rec.Source,
		})
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true}
	if width > 0 {
		fixed := 0
		probe := formatTable(headers[:5], stripLastColumn(rows), rightAlign)
		if len(probe) > 0 {
			fixed = displayWidth(probe[0]) + 1
		}
		avail := width - fixed
		if avail < sourceColumnMin {
			avail = sourceColumnMin
		}
		for _, row := range rows {
			row[5] = truncate(row[5], avail)
		}
	}
	if err := writeLines(w, formatTable(headers, rows, rightAlign)); err != nil {
		return err
	}
	if len(h.Words) > 1 {
		if _, err := fmt.Fprintf(w, "Words trend: %s\n", Sparkline(h.Words)); err != nil {
			return err
		}
		sum, err := SummarizeWords(h.Words)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Words: mean %.1f, median %.1f, stddev %.1f, min %.0f, max %.0f\n",
			sum.Mean, sum.Median, sum.StdDev, sum.Min, sum.Max); err != nil {
			return err
		}
	}
	return nil
}

func stripLastColumn(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = row[:len(row)-1]
	}
	return out
}
