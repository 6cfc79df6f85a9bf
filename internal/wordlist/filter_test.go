package wordlist

import "testing"

func TestNewSetNormalizes(t *testing.T) {
	set := NewSet([]string{"The", "  and ", "AND", "co-op", "two words", "123", "Don't"})
	for _, word := range []string{"the", "and", "co-op", "don't"} {
		if _, ok := set[word]; !ok {
			t.Fatalf("expected %q in set: %v", word, set)
		}
	}
	if len(set) != 4 {
		t.Fatalf("expected 4 entries, got %d: %v", len(set), set)
	}
}
