package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"

	"github.com/eslsoft/dictcli/internal/entity"
)

var (
	labelWord     = color.New(color.FgHiGreen, color.Bold)
	valueWord     = color.New(color.FgHiWhite, color.Bold)
	labelPhonetic = color.New(color.FgHiBlue)
	valuePhonetic = color.New(color.FgHiYellow)
	labelPos      = color.New(color.FgHiMagenta, color.Bold)
	valuePos      = color.New(color.FgHiCyan)
	defNumber     = color.New(color.FgHiGreen)
	defText       = color.New(color.FgWhite)
	labelExample  = color.New(color.FgHiBlue)
	valueExample  = color.New(color.Italic)
	labelSynonyms = color.New(color.FgHiYellow)
	labelAntonyms = color.New(color.FgHiRed)
	labelError    = color.New(color.FgHiRed, color.Bold)
	valueError    = color.New(color.FgHiRed)
	labelLookup   = color.New(color.FgHiGreen)
	valueSource   = color.New(color.Underline)
)

// Renderer formats dictionary entries as colored terminal text. Detail mode
// adds examples, synonym/antonym lists, and the source URL.
type Renderer struct {
	out    io.Writer
	detail bool
}

func NewRenderer(out io.Writer, detail bool) *Renderer {
	return &Renderer{out: out, detail: detail}
}

// Render writes every entry in sequence. Each entry is built in memory
// first so a failed write never emits a partial entry.
func (r *Renderer) Render(entries []entity.Entry) error {
	var b strings.Builder
	for _, entry := range entries {
		r.writeEntry(&b, entry)
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) writeEntry(b *strings.Builder, e entity.Entry) {
	fmt.Fprintf(b, "\n%s %s\n", labelWord.Sprint("Word:"), valueWord.Sprint(e.Word))

	if e.HasPhonetic() {
		fmt.Fprintf(b, "%s %s\n", labelPhonetic.Sprint("Phonetic:"), valuePhonetic.Sprint(e.Phonetic))
	}

	pronunciations := lo.FilterMap(e.Phonetics, func(p entity.Phonetic, _ int) (string, bool) {
		return p.Text, strings.TrimSpace(p.Text) != ""
	})
	for _, text := range pronunciations {
		fmt.Fprintf(b, "%s %s\n", labelPhonetic.Sprint("Pronunciation:"), valuePhonetic.Sprint(text))
	}

	b.WriteString("\n")

	for _, meaning := range e.Meanings {
		r.writeMeaning(b, meaning)
	}

	if r.detail {
		if source := e.PrimarySource(); source != "" {
			fmt.Fprintf(b, "%s %s\n", labelPhonetic.Sprint("Source:"), valueSource.Sprint(source))
		}
	}
}

func (r *Renderer) writeMeaning(b *strings.Builder, m entity.Meaning) {
	fmt.Fprintf(b, "%s %s\n", labelPos.Sprint("Part of speech:"), valuePos.Sprint(m.Tag()))

	for i, def := range m.Definitions {
		fmt.Fprintf(b, "  %s %s\n", defNumber.Sprintf("%d.", i+1), defText.Sprint(def.Text))

		if !r.detail {
			continue
		}
		if def.Example != "" {
			fmt.Fprintf(b, "     %s %s\n", labelExample.Sprint("Example:"), valueExample.Sprint(def.Example))
		}
		// Printed even when empty: the line itself is part of the output
		// contract in detail mode.
		fmt.Fprintf(b, "     %s %s\n", labelSynonyms.Sprint("Synonyms:"), strings.Join(def.Synonyms, ", "))
		fmt.Fprintf(b, "     %s %s\n", labelAntonyms.Sprint("Antonyms:"), strings.Join(def.Antonyms, ", "))
	}

	if r.detail {
		if len(m.Synonyms) > 0 {
			fmt.Fprintf(b, "  %s %s\n", labelSynonyms.Sprint("Synonyms:"), strings.Join(m.Synonyms, ", "))
		}
		if len(m.Antonyms) > 0 {
			fmt.Fprintf(b, "  %s %s\n", labelAntonyms.Sprint("Antonyms:"), strings.Join(m.Antonyms, ", "))
		}
	}

	b.WriteString("\n")
}

// Announce prints the lookup banner shown before each request.
func Announce(out io.Writer, word string) {
	fmt.Fprintf(out, "%s %s\n", labelLookup.Sprint("Looking up:"), valueWord.Sprint(word))
}

// Errorf prints a single-line colored error message.
func Errorf(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, "%s %s\n", labelError.Sprint("Error:"), valueError.Sprintf(format, args...))
}
