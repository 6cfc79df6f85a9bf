package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordstat/internal/analyzer"
)

const (
	sparkChars = " .:-=+*#%@"
	barWidth   = 20
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A"))

// FormatDuration renders whole seconds as "45s", "3m 05s" or "1h 02m 09s".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

func bar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	n := int(math.Round(fraction * float64(width)))
	return strings.Repeat("#", n)
}

func writeHeading(w io.Writer, title string, useColor bool) error {
	if useColor {
		title = headingStyle.Render(title)
	}
	_, err := fmt.Fprintln(w, title)
	return err
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderReport prints the summary, top words and longest words sections.
func RenderReport(w io.Writer, st analyzer.Stats, useColor bool) error {
	if err := RenderSummary(w, st, useColor); err != nil {
		return err
	}
	if err := RenderTopWords(w, st, useColor); err != nil {
		return err
	}
	return RenderLongestWords(w, st, useColor)
}

// RenderSummary prints the scalar metrics as aligned key/value lines.
func RenderSummary(w io.Writer, st analyzer.Stats, useColor bool) error {
	if err := writeHeading(w, "Summary", useColor); err != nil {
		return err
	}
	rows := [][]string{
		{"Words", fmt.Sprintf("%d", st.Words)},
		{"Unique words", fmt.Sprintf("%d", st.UniqueWords)},
		{"Characters", fmt.Sprintf("%d", st.Characters)},
		{"Characters (no spaces)", fmt.Sprintf("%d", st.CharactersNoSpaces)},
		{"Sentences", fmt.Sprintf("%d", st.Sentences)},
		{"Paragraphs", fmt.Sprintf("%d", st.Paragraphs)},
		{"Avg word length", fmt.Sprintf("%.2f", st.AvgWordLength)},
		{"Reading time", FormatDuration(st.ReadingTimeSeconds)},
	}
	return writeLines(w, formatTable(nil, rows, map[int]bool{1: true}))
}

// RenderTopWords prints the most frequent words with their share of all words.
func RenderTopWords(w io.Writer, st analyzer.Stats, useColor bool) error {
	if err := writeHeading(w, "Top Words", useColor); err != nil {
		return err
	}
	if len(st.TopWords) == 0 {
		_, err := fmt.Fprintln(w, "No words found.")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, "")
		return err
	}
	maxCount := st.TopWords[0].Count
	rows := make([][]string, 0, len(st.TopWords))
	for _, wc := range st.TopWords {
		share := 0.0
		if st.Words > 0 {
			share = float64(wc.Count) / float64(st.Words)
		}
		rows = append(rows, []string{
			wc.Word,
			fmt.Sprintf("%d", wc.Count),
			fmt.Sprintf("%.2f%%", share*100),
			bar(float64(wc.Count)/float64(maxCount), barWidth),
		})
	}
	headers := []string{"Word", "Count", "Density", ""}
	return writeLines(w, formatTable(headers, rows, map[int]bool{1: true, 2: true}))
}

// RenderLongestWords prints the longest distinct words with their length.
func RenderLongestWords(w io.Writer, st analyzer.Stats, useColor bool) error {
	if err := writeHeading(w, "Longest Words", useColor); err != nil {
		return err
	}
	if len(st.LongestWords) == 0 {
		_, err := fmt.Fprintln(w, "No words found.")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, "")
		return err
	}
	rows := make([][]string, 0, len(st.LongestWords))
	for i, word := range st.LongestWords {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			word,
			fmt.Sprintf("%d", utf8.RuneCountInString(word)),
		})
	}
	headers := []string{"#", "Word", "Length"}
	return writeLines(w, formatTable(headers, rows, map[int]bool{0: true, 2: true}))
}
