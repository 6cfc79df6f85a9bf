// Package export writes analysis results to files in several formats.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/wordstat/internal/analyzer"
)

// Format names an export encoding.
type Format string

// Supported formats.
const (
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatText     Format = "txt"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "md"
	FormatXLSX     Format = "xlsx"
)

const (
	toolName    = "wordstat"
	toolVersion = "1.0"

	jsonPreviewRunes = 1000
	reportPreview    = 500
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatJSON, FormatCSV, FormatText, FormatHTML, FormatMarkdown, FormatXLSX}

// Document is the input for every exporter.
type Document struct {
	Stats       analyzer.Stats
	Text        string
	Source      string
	GeneratedAt time.Time
}

// ParseFormat validates a format name. "markdown", "text" and "htm" are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "txt", "text":
		return FormatText, nil
	case "html", "htm":
		return FormatHTML, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown export format %q (available: %s)", name, strings.Join(names, ", "))
}

// FormatFromPath picks a format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer export format from %q: missing extension", path)
	}
	return ParseFormat(ext)
}

// Write encodes doc in the given format.
func Write(w io.Writer, format Format, doc Document) error {
	if doc.GeneratedAt.IsZero() {
		doc.GeneratedAt = time.Now()
	}
	switch format {
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatCSV:
		return writeCSV(w, doc)
	case FormatText:
		return writeText(w, doc)
	case FormatHTML:
		return writeHTML(w, doc)
	case FormatMarkdown:
		return writeMarkdown(w, doc)
	case FormatXLSX:
		return writeXLSX(w, doc)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// Preview returns the first n runes of text, with "..." appended when it was cut.
func Preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + "..."
}

// entry is one statistic; scalar entries carry Value, collections carry Items.
type entry struct {
	Key   string
	Value string
	Items []item
}

type item struct {
	Key   string
	Value string
}

func (e entry) IsGroup() bool {
	return e.Items != nil
}

func entries(st analyzer.Stats) []entry {
	out := []entry{
		{Key: "words", Value: strconv.Itoa(st.Words)},
		{Key: "characters", Value: strconv.Itoa(st.Characters)},
		{Key: "charactersNoSpaces", Value: strconv.Itoa(st.CharactersNoSpaces)},
		{Key: "sentences", Value: strconv.Itoa(st.Sentences)},
		{Key: "paragraphs", Value: strconv.Itoa(st.Paragraphs)},
		{Key: "uniqueWords", Value: strconv.Itoa(st.UniqueWords)},
		{Key: "avgWordLength", Value: strconv.FormatFloat(st.AvgWordLength, 'f', 2, 64)},
		{Key: "readingTimeSeconds", Value: strconv.Itoa(st.ReadingTimeSeconds)},
	}

	top := entry{Key: "topWords", Items: []item{}}
	for _, wc := range st.TopWords {
		top.Items = append(top.Items, item{Key: wc.Word, Value: strconv.Itoa(wc.Count)})
	}
	longest := entry{Key: "longestWords", Items: []item{}}
	for i, word := range st.LongestWords {
		longest.Items = append(longest.Items, item{Key: strconv.Itoa(i + 1), Value: word})
	}
	density := entry{Key: "density", Items: []item{}}
	for _, word := range densityOrder(st.Density) {
		density.Items = append(density.Items, item{
			Key:   word,
			Value: strconv.FormatFloat(st.Density[word], 'f', 4, 64),
		})
	}
	return append(out, top, longest, density)
}

// tableRows flattens entries into Category/Metric/Value rows.
func tableRows(st analyzer.Stats) [][]string {
	var rows [][]string
	for _, e := range entries(st) {
		if !e.IsGroup() {
			rows = append(rows, []string{e.Key, "", e.Value})
			continue
		}
		for _, it := range e.Items {
			rows = append(rows, []string{e.Key, it.Key, it.Value})
		}
	}
	return rows
}

// densityOrder sorts words by density descending, then alphabetically.
func densityOrder(density map[string]float64) []string {
	words := make([]string, 0, len(density))
	for w := range density {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if density[words[i]] == density[words[j]] {
			return words[i] < words[j]
		}
		return density[words[i]] > density[words[j]]
	})
	return words
}
