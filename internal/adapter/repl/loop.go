package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/eslsoft/dictcli/internal/adapter/render"
	"github.com/eslsoft/dictcli/internal/usecase"
)

// Loop reads words from the input stream one line at a time and looks each
// one up. It terminates only on end of input or an exit keyword; lookup
// failures are reported inline and the loop keeps reading.
type Loop struct {
	in       io.Reader
	out      io.Writer
	lookup   usecase.LookupUsecase
	renderer *render.Renderer
	logger   *logrus.Logger
}

func NewLoop(in io.Reader, out io.Writer, lookup usecase.LookupUsecase, renderer *render.Renderer, logger *logrus.Logger) *Loop {
	return &Loop{in: in, out: out, lookup: lookup, renderer: renderer, logger: logger}
}

func isExitKeyword(line string) bool {
	switch strings.ToLower(line) {
	case "exit", "quit":
		return true
	}
	return false
}

// Run processes one line fully, including its network round trip, before
// reading the next.
func (l *Loop) Run(ctx context.Context) error {
	fmt.Fprintln(l.out, "Enter a word to look up (exit or quit to leave).")

	scanner := bufio.NewScanner(l.in)
	for {
		fmt.Fprint(l.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(l.out)
			break
		}

		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if isExitKeyword(word) {
			break
		}

		render.Announce(l.out, word)
		entries, err := l.lookup.Lookup(ctx, word)
		if err != nil {
			l.logger.WithField("word", word).Debugf("lookup failed: %v", err)
			render.Errorf(l.out, "%v", err)
			continue
		}
		if err := l.renderer.Render(entries); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return scanner.Err()
}
