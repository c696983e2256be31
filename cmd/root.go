/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/dictcli/internal/adapter/render"
	"github.com/eslsoft/dictcli/internal/adapter/repl"
	"github.com/eslsoft/dictcli/internal/entity"
	"github.com/eslsoft/dictcli/internal/infrastructure/config"
	"github.com/eslsoft/dictcli/internal/infrastructure/dictapi"
	"github.com/eslsoft/dictcli/internal/infrastructure/logging"
	"github.com/eslsoft/dictcli/internal/usecase"
)

const (
	detailKey      = "lookup.detail"
	interactiveKey = "lookup.interactive"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dictcli [word]",
	Short: "Look up English words from the terminal",
	Long: `dictcli queries the free dictionary API and prints definitions,
phonetics, examples, synonyms, and antonyms as colored terminal text.

Pass a word for a single lookup, or --interactive to read words from
standard input one line at a time (exit or quit to leave).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger, err := logging.NewLogger(cfg)
		if err != nil {
			return err
		}

		applyColorMode(cfg.Output.Color)

		detail := viper.GetBool(detailKey)
		interactive := viper.GetBool(interactiveKey)

		client := dictapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
		lookup := usecase.NewLookupUsecase(client)
		out := cmd.OutOrStdout()
		renderer := render.NewRenderer(out, detail)

		if interactive {
			loop := repl.NewLoop(cmd.InOrStdin(), out, lookup, renderer, logger)
			return loop.Run(cmd.Context())
		}

		if len(args) == 0 {
			return errors.New("requires a word to look up, or --interactive")
		}
		word := args[0]

		render.Announce(out, word)
		entries, err := lookup.Lookup(cmd.Context(), word)
		if err != nil {
			// A failed lookup is a handled user-facing condition, not a
			// crash: report it and exit zero.
			render.Errorf(out, "%s", lookupMessage(err))
			return nil
		}
		return renderer.Render(entries)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("detail", "d", false, "show examples, synonyms, and antonyms")
	rootCmd.Flags().BoolP("interactive", "i", false, "read words from standard input, one per line")

	bindFlagToViper(detailKey, rootCmd.Flags().Lookup("detail"))
	bindFlagToViper(interactiveKey, rootCmd.Flags().Lookup("interactive"))
}

// lookupMessage converts a lookup failure into the single-line message shown
// to the user.
func lookupMessage(err error) string {
	switch {
	case errors.Is(err, entity.ErrWordNotFound):
		return "word not found"
	case errors.Is(err, entity.ErrMalformedResponse):
		return "the dictionary returned an unreadable response"
	default:
		return err.Error()
	}
}

func applyColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		fd := os.Stdout.Fd()
		color.NoColor = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	}
}
