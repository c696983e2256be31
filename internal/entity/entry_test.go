package entity

import "testing"

func TestHasPhonetic(t *testing.T) {
	if (Entry{Phonetic: "  "}).HasPhonetic() {
		t.Fatal("whitespace-only phonetic should count as absent")
	}
	if !(Entry{Phonetic: "/rʌst/"}).HasPhonetic() {
		t.Fatal("expected phonetic to be present")
	}
}

func TestPrimarySource(t *testing.T) {
	if got := (Entry{}).PrimarySource(); got != "" {
		t.Fatalf("expected empty source, got %q", got)
	}
	e := Entry{SourceURLs: []string{"https://a.example", "https://b.example"}}
	if got := e.PrimarySource(); got != "https://a.example" {
		t.Fatalf("expected first source, got %q", got)
	}
}

func TestMeaningTag(t *testing.T) {
	if got := (Meaning{}).Tag(); got != "unknown" {
		t.Fatalf("expected unknown fallback, got %q", got)
	}
	if got := (Meaning{PartOfSpeech: "verb"}).Tag(); got != "verb" {
		t.Fatalf("expected verb, got %q", got)
	}
}
