package profile

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	got := Tokenize("Community-based Health programmes, 2026 edition")
	want := []string{"community", "based", "health", "programmes", "edition"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestPhraseTags(t *testing.T) {
	text := "community health outreach community health programme"
	got := PhraseTags(text, 10)

	if len(got) == 0 || got[0] != "community health" {
		t.Fatalf("expected most frequent bigram first, got %v", got)
	}
}

func TestPhraseTagsBlocklist(t *testing.T) {
	got := PhraseTags("submit your grant application early", 10)
	for _, tag := range got {
		if tag == "grant application" {
			t.Fatalf("blocklisted phrase surfaced: %v", got)
		}
	}
}

func TestPhraseTagsStopwordsAndShortTokens(t *testing.T) {
	got := PhraseTags("the of to a an", 10)
	if got != nil {
		t.Errorf("expected no tags from stopwords, got %v", got)
	}
}

func TestPhraseTagsTopN(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta eta theta iota kappa"
	got := PhraseTags(text, 3)
	if len(got) != 3 {
		t.Errorf("expected 3 tags, got %d: %v", len(got), got)
	}
}
