package statsui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordstat/internal/analyzer"
)

var (
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	topWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

type styledRune struct {
	s         string
	width     int
	isSpace   bool
	lineBreak bool
}

// buildStyledRunes styles text rune by rune, highlighting tokens found in highlight.
func buildStyledRunes(text string, highlight map[string]struct{}) []styledRune {
	spans := analyzer.WordSpans(text)
	next := 0
	out := make([]styledRune, 0, len(text))
	for i, r := range text {
		for next < len(spans) && spans[next][1] <= i {
			next++
		}
		switch r {
		case '\r':
			continue
		case '\n':
			out = append(out, styledRune{lineBreak: true})
			continue
		case '\t':
			r = ' '
		}
		style := textStyle
		if next < len(spans) && i >= spans[next][0] {
			word := strings.ToLower(text[spans[next][0]:spans[next][1]])
			if _, ok := highlight[word]; ok {
				style = topWordStyle
			}
		}
		out = append(out, styledRune{
			s:       style.Render(string(r)),
			width:   runewidth.RuneWidth(r),
			isSpace: r == ' ',
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines at the last space that fits width. Line breaks in
// the source are kept; width <= 0 disables wrapping.
func wrapStyledRunes(runes []styledRune, width int) string {
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if item.lineBreak {
			out.WriteString(renderStyledRunes(line))
			out.WriteRune('\n')
			line = line[:0]
			lineWidth = 0
			lastSpaceIdx = -1
			i++
			continue
		}
		if width > 0 && lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}

func topWordSet(st analyzer.Stats) map[string]struct{} {
	set := make(map[string]struct{}, len(st.TopWords))
	for _, wc := range st.TopWords {
		set[wc.Word] = struct{}{}
	}
	return set
}
