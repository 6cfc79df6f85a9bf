package analyzer

import (
	"reflect"
	"strings"
	"testing"
)

func TestToJSONRoundTrip(t *testing.T) {
	st := Analyze("Hello world. Hello again!\n\nSecond paragraph here.")
	doc := st.ToJSON()
	if doc == "" || doc == "{}" {
		t.Fatalf("expected populated document, got %q", doc)
	}
	for _, key := range []string{`"words": 7`, `"charactersNoSpaces"`, `"readingTimeSeconds"`, `"topWords"`, `"longestWords"`, `"density"`} {
		if !strings.Contains(doc, key) {
			t.Fatalf("document missing %s:\n%s", key, doc)
		}
	}
	if !strings.Contains(doc, "\n  \"") {
		t.Fatalf("expected indented output:\n%s", doc)
	}
	decoded, err := FromJSON([]byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, st) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", decoded, st)
	}
}

func TestToJSONEmptyStats(t *testing.T) {
	doc := Analyze("").ToJSON()
	if !strings.Contains(doc, `"topWords": []`) || !strings.Contains(doc, `"longestWords": []`) {
		t.Fatalf("expected empty arrays in document:\n%s", doc)
	}
	if !strings.Contains(doc, `"density": {}`) {
		t.Fatalf("expected empty density object:\n%s", doc)
	}
}

func TestFromJSONRejectsGarbage(t *testing.T) {
	if _, err := FromJSON([]byte("not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}
