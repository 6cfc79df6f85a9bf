package export

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

func writeText(w io.Writer, doc Document) error {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "WORDSTAT - STATISTICS EXPORT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Export Date: %s\n", doc.GeneratedAt.Format("2006-01-02 15:04:05"))
	if doc.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", doc.Source)
	}
	fmt.Fprintf(&b, "Text Length: %d characters\n\n", utf8.RuneCountInString(doc.Text))
	fmt.Fprintln(&b, "STATISTICS:")
	fmt.Fprintln(&b, strings.Repeat("-", 40))
	for _, e := range entries(doc.Stats) {
		if !e.IsGroup() {
			fmt.Fprintf(&b, "%s: %s\n", e.Key, e.Value)
			continue
		}
		fmt.Fprintf(&b, "\n%s:\n", e.Key)
		for _, it := range e.Items {
			fmt.Fprintf(&b, "  %s: %s\n", it.Key, it.Value)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
