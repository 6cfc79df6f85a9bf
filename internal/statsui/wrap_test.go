package statsui

import "testing"

func TestBuildStyledRunesHighlightsTopWords(t *testing.T) {
	runes := buildStyledRunes("Hi you", map[string]struct{}{"hi": {}})
	if len(runes) != 6 {
		t.Fatalf("expected 6 runes, got %d", len(runes))
	}
	if runes[0].s != topWordStyle.Render("H") || runes[1].s != topWordStyle.Render("i") {
		t.Fatalf("expected top word style for highlighted word")
	}
	if !runes[2].isSpace || runes[2].s != textStyle.Render(" ") {
		t.Fatalf("expected plain space")
	}
	if runes[3].s != textStyle.Render("y") {
		t.Fatalf("expected text style for other word")
	}
}

func TestBuildStyledRunesLineBreaks(t *testing.T) {
	runes := buildStyledRunes("a\r\nb\tc", nil)
	if len(runes) != 5 {
		t.Fatalf("expected 5 runes, got %d", len(runes))
	}
	if !runes[1].lineBreak {
		t.Fatalf("expected line break for newline")
	}
	if !runes[3].isSpace {
		t.Fatalf("expected tab to become a space")
	}
}

func plain(text string) []styledRune {
	runes := make([]styledRune, 0, len(text))
	for _, r := range text {
		if r == '\n' {
			runes = append(runes, styledRune{lineBreak: true})
			continue
		}
		runes = append(runes, styledRune{s: string(r), width: 1, isSpace: r == ' '})
	}
	return runes
}

func TestWrapStyledRunesAtSpaces(t *testing.T) {
	got := wrapStyledRunes(plain("one two three"), 8)
	if got != "one two\nthree" {
		t.Fatalf("unexpected wrap %q", got)
	}
}

func TestWrapStyledRunesKeepsLineBreaks(t *testing.T) {
	got := wrapStyledRunes(plain("ab\ncd"), 0)
	if got != "ab\ncd" {
		t.Fatalf("unexpected wrap %q", got)
	}
}

func TestWrapStyledRunesLongWord(t *testing.T) {
	got := wrapStyledRunes(plain("abcdef"), 4)
	if got != "abcd\nef" {
		t.Fatalf("unexpected wrap %q", got)
	}
}
