package analyzer

import "encoding/json"

// WordCount pairs a normalized word with its number of occurrences.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Stats is an immutable snapshot of the metrics computed for one text.
type Stats struct {
	Words              int                `json:"words"`
	Characters         int                `json:"characters"`
	CharactersNoSpaces int                `json:"charactersNoSpaces"`
	Sentences          int                `json:"sentences"`
	Paragraphs         int                `json:"paragraphs"`
	UniqueWords        int                `json:"uniqueWords"`
	AvgWordLength      float64            `json:"avgWordLength"`
	ReadingTimeSeconds int                `json:"readingTimeSeconds"`
	Density            map[string]float64 `json:"density"`
	TopWords           []WordCount        `json:"topWords"`
	LongestWords       []string           `json:"longestWords"`
}

// ToJSON renders the stats as an indented JSON document.
// A marshal failure yields "{}" instead of an error.
func (s Stats) ToJSON() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// FromJSON decodes a document produced by ToJSON.
func FromJSON(data []byte) (Stats, error) {
	var s Stats
	if err := json.Unmarshal(data, &s); err != nil {
		return Stats{}, err
	}
	if s.Density == nil {
		s.Density = map[string]float64{}
	}
	if s.TopWords == nil {
		s.TopWords = []WordCount{}
	}
	if s.LongestWords == nil {
		s.LongestWords = []string{}
	}
	return s, nil
}
