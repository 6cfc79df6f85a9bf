package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/wordstat/internal/analyzer"
	"github.com/verte-zerg/wordstat/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "wordstat.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestInsertAndGetAnalysis(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	stats := analyzer.Analyze("Hello world. Hello again!")
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	id, err := st.InsertAnalysis(ctx, "notes.txt", at, stats)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	rec, err := st.GetAnalysis(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Source != "notes.txt" || !rec.AnalyzedAt.Equal(at) {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.Stats.Words != 4 || rec.Stats.UniqueWords != 3 {
		t.Fatalf("unexpected stats: %+v", rec.Stats)
	}
	if len(rec.Stats.TopWords) == 0 || rec.Stats.TopWords[0].Word != "hello" {
		t.Fatalf("unexpected top words: %v", rec.Stats.TopWords)
	}
}

func TestGetAnalysisNotFound(t *testing.T) {
	st := openTestStore(t)
	if _, err := st.GetAnalysis(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAnalysesFilters(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sources := []string{"a.txt", "b.txt", "a.txt", "a.txt"}
	var ids []int64
	for i, src := range sources {
		id, err := st.InsertAnalysis(ctx, src, base.Add(time.Duration(i)*24*time.Hour), analyzer.Analyze("one two three"))
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
		ids = append(ids, id)
	}

	all, err := st.ListAnalyses(ctx, model.HistoryConfig{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 4 || all[0].ID != ids[0] || all[3].ID != ids[3] {
		t.Fatalf("unexpected records: %+v", all)
	}

	onlyA, err := st.ListAnalyses(ctx, model.HistoryConfig{Source: "a.txt", Last: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(onlyA) != 2 || onlyA[0].ID != ids[2] || onlyA[1].ID != ids[3] {
		t.Fatalf("unexpected filtered records: %+v", onlyA)
	}

	since := base.Add(36 * time.Hour)
	recent, err := st.ListAnalyses(ctx, model.HistoryConfig{Since: &since})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recent) != 2 || recent[0].ID != ids[2] {
		t.Fatalf("unexpected since records: %+v", recent)
	}
}

func TestDeleteAnalysis(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	id, err := st.InsertAnalysis(ctx, "x", time.Now(), analyzer.Analyze("text"))
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := st.DeleteAnalysis(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := st.DeleteAnalysis(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
