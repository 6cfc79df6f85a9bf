// Package analyzer computes descriptive statistics over a block of text.
package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	defaultTopN           = 5
	defaultLongestN       = 5
	defaultWordsPerMinute = 225.0
)

var (
	// A blank line may carry stray whitespace between its newlines.
	paragraphSep = regexp.MustCompile(`\n[^\S\n]*\n`)
	sentenceSep  = regexp.MustCompile(`[.!?]+\s+`)
	wordPattern  = regexp.MustCompile(`[\p{L}\p{M}]+(?:['’-][\p{L}\p{M}]+)*`)
)

// Options tunes ranking and reading-time parameters of an analysis.
type Options struct {
	TopN           int
	LongestN       int
	WordsPerMinute float64
	// Ignore holds lowercased words left out of TopWords and LongestWords.
	// Counts, density and unique words still include them.
	Ignore map[string]struct{}
}

// DefaultOptions returns the options used by Analyze.
func DefaultOptions() Options {
	return Options{
		TopN:           defaultTopN,
		LongestN:       defaultLongestN,
		WordsPerMinute: defaultWordsPerMinute,
	}
}

func (o Options) normalized() Options {
	if o.TopN <= 0 {
		o.TopN = defaultTopN
	}
	if o.LongestN <= 0 {
		o.LongestN = defaultLongestN
	}
	if o.WordsPerMinute <= 0 {
		o.WordsPerMinute = defaultWordsPerMinute
	}
	return o
}

// Analyze computes Stats for text with default options.
func Analyze(text string) Stats {
	return AnalyzeWith(text, DefaultOptions())
}

// AnalyzeWith computes Stats for text. It never fails and never mutates its input.
func AnalyzeWith(text string, opts Options) Stats {
	opts = opts.normalized()

	st := Stats{
		Characters:         utf8.RuneCountInString(text),
		CharactersNoSpaces: countNonSpace(text),
		Paragraphs:         countSegments(paragraphSep.Split(text, -1)),
		Sentences:          countSegments(sentenceSep.Split(text, -1)),
		Density:            map[string]float64{},
		TopWords:           []WordCount{},
		LongestWords:       []string{},
	}

	words := Tokenize(text)
	st.Words = len(words)
	if st.Words == 0 {
		return st
	}

	letters := 0
	counts := make(map[string]int)
	for _, w := range words {
		letters += countLetters(w)
		counts[w]++
	}
	st.AvgWordLength = float64(letters) / float64(st.Words)
	st.UniqueWords = len(counts)
	st.ReadingTimeSeconds = ReadingTime(st.Words, opts.WordsPerMinute)

	for w, c := range counts {
		st.Density[w] = float64(c) / float64(st.Words)
	}
	st.TopWords = topWords(counts, opts.TopN, opts.Ignore)
	st.LongestWords = longestWords(counts, opts.LongestN, opts.Ignore)
	return st
}

// Tokenize extracts lowercased word tokens in order of appearance.
func Tokenize(text string) []string {
	matches := wordPattern.FindAllString(text, -1)
	for i, m := range matches {
		matches[i] = strings.ToLower(m)
	}
	return matches
}

// ReadingTime estimates whole seconds needed to read words at wpm.
func ReadingTime(words int, wpm float64) int {
	if words <= 0 || wpm <= 0 {
		return 0
	}
	return int(float64(words) / wpm * 60)
}

func countNonSpace(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

func countLetters(word string) int {
	n := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

func countSegments(parts []string) int {
	n := 0
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

func topWords(counts map[string]int, n int, ignore map[string]struct{}) []WordCount {
	items := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		if _, skip := ignore[w]; skip {
			continue
		}
		items = append(items, WordCount{Word: w, Count: c})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Word < items[j].Word
		}
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n:n]
}

func longestWords(counts map[string]int, n int, ignore map[string]struct{}) []string {
	distinct := make([]string, 0, len(counts))
	for w := range counts {
		if _, skip := ignore[w]; skip {
			continue
		}
		distinct = append(distinct, w)
	}
	sort.Strings(distinct)
	sort.SliceStable(distinct, func(i, j int) bool {
		return utf8.RuneCountInString(distinct[i]) > utf8.RuneCountInString(distinct[j])
	})
	if n > len(distinct) {
		n = len(distinct)
	}
	return distinct[:n:n]
}

// WordSpans returns the byte offsets of each word token in text, as [start, end) pairs.
func WordSpans(text string) [][]int {
	return wordPattern.FindAllStringIndex(text, -1)
}
