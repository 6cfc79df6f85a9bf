package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordstat/internal/analyzer"
	"github.com/verte-zerg/wordstat/internal/model"
	"github.com/verte-zerg/wordstat/internal/store"
)

func TestBuildHistory(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "wordstat.db")
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	texts := []string{"one", "one two", "one two three"}
	var ids []int64
	for i, text := range texts {
		at := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		id, err := st.InsertAnalysis(ctx, "draft.md", at, analyzer.Analyze(text))
		if err != nil {
			t.Fatalf("insert analysis: %v", err)
		}
		ids = append(ids, id)
	}

	h, err := BuildHistory(ctx, st, model.HistoryConfig{Source: "draft.md", Last: 2})
	if err != nil {
		t.Fatalf("build history: %v", err)
	}
	if len(h.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(h.Records))
	}
	if h.Records[0].ID != ids[1] || h.Records[1].ID != ids[2] {
		t.Fatalf("unexpected record ids: %+v", h.Records)
	}
	if len(h.Words) != 2 || h.Words[0] != 2 || h.Words[1] != 3 {
		t.Fatalf("unexpected word series: %v", h.Words)
	}

	var buf bytes.Buffer
	if err := RenderHistory(&buf, h, 0, false); err != nil {
		t.Fatalf("render history: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "draft.md") || !strings.Contains(out, "Words trend:") ||
		!strings.Contains(out, "Words: mean 2.5, median 2.5") {
		t.Fatalf("unexpected history output:\n%s", out)
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, History{}, 80, false); err != nil {
		t.Fatalf("render history: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No analyses found." {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRenderHistoryTruncatesSource(t *testing.T) {
	long := strings.Repeat("chapter-", 20) + ".txt"
	h := History{Records: []model.AnalysisRecord{{
		ID:         1,
		AnalyzedAt: time.Now(),
		Source:     long,
		Stats:      analyzer.Analyze("a b c"),
	}}}
	var buf bytes.Buffer
	if err := RenderHistory(&buf, h, 60, false); err != nil {
		t.Fatalf("render history: %v", err)
	}
	if strings.Contains(buf.String(), long) {
		t.Fatalf("expected source to be truncated:\n%s", buf.String())
	}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if displayWidth(line) > 60 {
			t.Fatalf("line wider than 60 columns: %q", line)
		}
	}
}

func TestSummarizeWords(t *testing.T) {
	sum, err := SummarizeWords([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if sum.Mean != 5 || sum.Median != 4.5 || sum.StdDev != 2 || sum.Min != 2 || sum.Max != 9 {
		t.Fatalf("unexpected summary %+v", sum)
	}
	if _, err := SummarizeWords(nil); err == nil {
		t.Fatalf("expected error for empty series")
	}
}
