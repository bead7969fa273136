/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	clex "github.com/dburkart/clex/api"
	"github.com/dburkart/clex/pkg/output"
	"github.com/dburkart/clex/pkg/scanner"
	"github.com/dburkart/clex/pkg/token"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "repl",
	Short: "Interactive terminal that tokenizes each line as it is entered",

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)
		format := viper.GetString("repl.output")
		if len(filterStringSlice(output.Formats, format)) != 1 {
			return errors.Errorf("unsupported output format %q", format)
		}

		client, err := clex.NewClient(viper.GetString("repl.host"))
		if err != nil {
			return errors.Wrap(err, "creating client")
		}
		defer client.Close()

		if local, ok := client.(*clex.LocalClient); ok {
			local.Options = []scanner.Option{
				scanner.WithLogger(log),
				scanner.WithExtendedWhitespace(viper.GetBool("lexer.extended_whitespace")),
			}
		}

		return readlinePrompt(log, client, format)
	},
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format of results [csv, json, text]")
	Command.Flags().StringP("host", "H", "local", "Scan in-process, or send lines to a clex server URL")

	// Bind flags to viper
	viper.BindPFlag("repl.output", Command.Flags().Lookup("output"))
	viper.BindPFlag("repl.host", Command.Flags().Lookup("host"))
}

func filterStringSlice(s []string, prefix string) []string {
	retList := []string{}
	for i := range s {
		if strings.HasPrefix(s[i], prefix) {
			retList = append(retList, s[i])
		}
	}
	return retList
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// completeKeyword offers keyword spellings for the word under the cursor.
func completeKeyword(line string) []string {
	word := line[strings.LastIndexAny(line, " \t")+1:]
	prefix := strings.TrimSuffix(line, word)

	options := []string{}
	for _, kw := range filterStringSlice(token.Keywords(), word) {
		options = append(options, prefix+kw)
	}
	return options
}

// Session evaluates lines one at a time, writing a listing for each.
type Session struct {
	client  clex.Client
	writer  output.OutputWriter
	printer output.DiagnosticPrinter
	log     zerolog.Logger
}

func NewSession(log zerolog.Logger, client clex.Client, out io.Writer, format string, colorize bool) *Session {
	return &Session{
		client:  client,
		writer:  output.NewOutputWriter(out, format),
		printer: output.NewDiagnosticPrinter(out, colorize),
		log:     log,
	}
}

// Eval tokenizes line and prints its tokens followed by its diagnostics.
func (s *Session) Eval(ctx context.Context, line string) error {
	resp, err := s.client.Lex(ctx, line)
	if err != nil {
		return errors.Wrap(err, "lexing line")
	}
	s.log.Trace().Str("id", resp.ID).Int("tokens", len(resp.Tokens)).Msg("lexed line")

	if err := s.writer.Write(output.TokenListing{Tokens: resp.Tokens, Fatal: resp.Fatal}); err != nil {
		return errors.Wrap(err, "writing listing")
	}
	if _, err := s.printer.PrintEntries(line, resp.Diagnostics); err != nil {
		return errors.Wrap(err, "writing diagnostics")
	}
	return nil
}

func readlinePrompt(log zerolog.Logger, client clex.Client, format string) error {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("help"),
		readline.PcItem("exit"),
		readline.PcItemDynamic(completeKeyword),
	)

	// Setup the readline executor
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31m>\033[0m ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return errors.Wrap(err, "starting readline")
	}
	defer rl.Close()

	session := NewSession(log, client, os.Stdout, format, output.IsTerminal(os.Stdout))

	// Handle input
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			return errors.Wrap(err, "reading line")
		}
		line = strings.TrimSpace(line)

		switch strings.ToUpper(line) {
		case "":
			continue
		case "HELP":
			fmt.Println("usage: enter source text to tokenize it")
			fmt.Println(completer.Tree("    "))
			continue
		case "EXIT":
			return nil
		}

		if err := session.Eval(context.Background(), line); err != nil {
			log.Error().Err(err).Send()
		}
		fmt.Println()
	}
	rl.Clean()
	return nil
}
