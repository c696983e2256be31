package entity

import "strings"

// Entry is one dictionary record for a word. The upstream API returns an
// array of entries, one element per homograph; all of them are rendered in
// sequence.
type Entry struct {
	Word       string     `json:"word"`
	Phonetic   string     `json:"phonetic,omitempty"`
	Phonetics  []Phonetic `json:"phonetics,omitempty"`
	Meanings   []Meaning  `json:"meanings"`
	License    *License   `json:"license,omitempty"`
	SourceURLs []string   `json:"sourceUrls,omitempty"`
}

// Phonetic is one pronunciation variant. Some variants carry only an audio
// link and no transcription text.
type Phonetic struct {
	Text  string `json:"text,omitempty"`
	Audio string `json:"audio,omitempty"`
}

// Meaning groups the definitions sharing one part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms,omitempty"`
	Antonyms     []string     `json:"antonyms,omitempty"`
}

// Definition is a single sense of a word.
type Definition struct {
	Text     string   `json:"definition"`
	Example  string   `json:"example,omitempty"`
	Synonyms []string `json:"synonyms,omitempty"`
	Antonyms []string `json:"antonyms,omitempty"`
}

type License struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// HasPhonetic reports whether the entry carries a top-level transcription.
func (e Entry) HasPhonetic() bool {
	return strings.TrimSpace(e.Phonetic) != ""
}

// PrimarySource returns the first source URL, or "" when none are present.
func (e Entry) PrimarySource() string {
	if len(e.SourceURLs) == 0 {
		return ""
	}
	return e.SourceURLs[0]
}

// Tag returns the part-of-speech label to display, falling back to
// "unknown" when the upstream record omits it.
func (m Meaning) Tag() string {
	if strings.TrimSpace(m.PartOfSpeech) == "" {
		return "unknown"
	}
	return m.PartOfSpeech
}
