package statsui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordstat/internal/analyzer"
)

func TestTopWordsData(t *testing.T) {
	st := analyzer.Analyze("Hello world. Hello again!")
	cols, rows := topWordsData(st)
	if len(cols) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(cols))
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][1] != "hello" || rows[0][2] != "2" || rows[0][3] != "50.00%" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
}

func TestDensityDataSorted(t *testing.T) {
	st := analyzer.Analyze("b a b c b a")
	_, rows := densityData(st)
	got := []string{rows[0][0], rows[1][0], rows[2][0]}
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order %v", got)
		}
	}
	if rows[0][2] != "3" {
		t.Fatalf("unexpected count %q", rows[0][2])
	}
}

func TestModelTabNavigation(t *testing.T) {
	m := NewModel(analyzer.Analyze("Hello world."), "notes.txt", "Hello world.")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.activeTab != tabOverview {
		t.Fatalf("expected overview tab first")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabTopWords {
		t.Fatalf("expected top words tab, got %d", m.activeTab)
	}
	if !m.tables[tabTopWords].Focused() {
		t.Fatalf("expected active table to be focused")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.activeTab != tabText {
		t.Fatalf("expected wrap-around to text tab, got %d", m.activeTab)
	}
	if !strings.Contains(m.View(), "Hello world.") {
		t.Fatalf("expected text tab to show the analyzed text")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestViewShowsOverview(t *testing.T) {
	m := NewModel(analyzer.Analyze("Hello world. Hello again!"), "", "Hello world. Hello again!")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	out := m.View()
	for _, want := range []string{"Overview", "Words", "Source: <stdin>", "q quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestRenderLongestEmpty(t *testing.T) {
	if got := renderLongest(analyzer.Analyze("")); !strings.Contains(got, "No words found.") {
		t.Fatalf("unexpected output %q", got)
	}
}
