package export

import (
	"encoding/json"
	"io"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/wordstat/internal/analyzer"
)

type jsonMetadata struct {
	ExportDate string `json:"exportDate"`
	Tool       string `json:"tool"`
	Version    string `json:"version"`
	Source     string `json:"source,omitempty"`
}

type jsonDocument struct {
	Metadata       jsonMetadata   `json:"metadata"`
	Statistics     analyzer.Stats `json:"statistics"`
	TextPreview    string         `json:"textPreview"`
	FullTextLength int            `json:"fullTextLength"`
}

func writeJSON(w io.Writer, doc Document) error {
	out := jsonDocument{
		Metadata: jsonMetadata{
			ExportDate: doc.GeneratedAt.Format(time.RFC3339),
			Tool:       toolName,
			Version:    toolVersion,
			Source:     doc.Source,
		},
		Statistics:     doc.Stats,
		TextPreview:    Preview(doc.Text, jsonPreviewRunes),
		FullTextLength: utf8.RuneCountInString(doc.Text),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
