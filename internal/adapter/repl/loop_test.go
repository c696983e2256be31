package repl

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/dictcli/internal/adapter/render"
	"github.com/eslsoft/dictcli/internal/entity"
	"github.com/eslsoft/dictcli/internal/usecase"
)

func init() {
	color.NoColor = true
}

type scriptedLookup struct {
	words []string
	err   error
}

func (s *scriptedLookup) Lookup(ctx context.Context, word string) ([]entity.Entry, error) {
	s.words = append(s.words, word)
	if s.err != nil {
		return nil, s.err
	}
	return []entity.Entry{{Word: word, Meanings: []entity.Meaning{
		{PartOfSpeech: "noun", Definitions: []entity.Definition{{Text: "A thing."}}},
	}}}, nil
}

var _ usecase.LookupUsecase = (*scriptedLookup)(nil)

func runLoop(t *testing.T, input string, lookup usecase.LookupUsecase) string {
	t.Helper()
	var out strings.Builder
	loop := NewLoop(strings.NewReader(input), &out, lookup, render.NewRenderer(&out, false), quietLogger())
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestRun_LooksUpThenExits(t *testing.T) {
	lookup := &scriptedLookup{}
	out := runLoop(t, "rust\nexit\n", lookup)

	if len(lookup.words) != 1 || lookup.words[0] != "rust" {
		t.Fatalf("expected exactly one lookup for rust, got %v", lookup.words)
	}
	if !strings.Contains(out, "Looking up: rust") {
		t.Fatalf("missing banner:\n%s", out)
	}
	if !strings.Contains(out, "Word: rust") {
		t.Fatalf("missing rendered entry:\n%s", out)
	}
}

func TestRun_QuitKeywordCaseInsensitive(t *testing.T) {
	lookup := &scriptedLookup{}
	runLoop(t, "QUIT\n", lookup)

	if len(lookup.words) != 0 {
		t.Fatalf("exit keyword must not trigger a lookup, got %v", lookup.words)
	}
}

func TestRun_SkipsEmptyLines(t *testing.T) {
	lookup := &scriptedLookup{}
	runLoop(t, "\n   \nrust\nquit\n", lookup)

	if len(lookup.words) != 1 {
		t.Fatalf("expected 1 lookup, got %v", lookup.words)
	}
}

func TestRun_TerminatesOnEOF(t *testing.T) {
	lookup := &scriptedLookup{}
	runLoop(t, "rust\n", lookup)

	if len(lookup.words) != 1 {
		t.Fatalf("expected 1 lookup before EOF, got %v", lookup.words)
	}
}

func TestRun_LookupFailureKeepsReading(t *testing.T) {
	lookup := &scriptedLookup{err: entity.ErrWordNotFound}
	out := runLoop(t, "zzzzz\nyyyyy\nexit\n", lookup)

	if len(lookup.words) != 2 {
		t.Fatalf("loop must survive lookup failures, got %v", lookup.words)
	}
	if strings.Count(out, "Error: word not found") != 2 {
		t.Fatalf("expected inline error per failed lookup:\n%s", out)
	}
}
