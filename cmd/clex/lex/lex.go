/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package lex

import (
	"io"
	"os"

	"github.com/dburkart/clex/pkg/output"
	"github.com/dburkart/clex/pkg/scanner"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ErrDiagnostics = errors.New("lexical diagnostics reported")

var Command = &cobra.Command{
	Use:   "lex [file...]",
	Short: "Tokenize source files and print the token listing",
	Long:  "Tokenize each file in turn, or standard input when no file (or -) is given.",

	RunE: func(cmd *cobra.Command, args []string) error {
		log := viper.Get("logger").(zerolog.Logger)

		opts := Options{
			Format:             viper.GetString("clex.output"),
			Diagnostics:        viper.GetBool("clex.diagnostics"),
			Strict:             viper.GetBool("lexer.strict"),
			ExtendedWhitespace: viper.GetBool("lexer.extended_whitespace"),
			Color:              output.IsTerminal(cmd.ErrOrStderr()),
		}

		return Run(log, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
	},
}

type Options struct {
	Format             string
	Diagnostics        bool
	Strict             bool
	ExtendedWhitespace bool
	Color              bool
}

func init() {
	// Flags for this command
	Command.Flags().StringP("output", "o", "text", "Output format of the listing [csv, json, text]")
	Command.Flags().BoolP("diagnostics", "d", false, "List diagnostics instead of tokens")
	Command.Flags().Bool("strict", false, "Exit non-zero when any diagnostic is reported")

	// Bind flags to viper
	viper.BindPFlag("clex.output", Command.Flags().Lookup("output"))
	viper.BindPFlag("clex.diagnostics", Command.Flags().Lookup("diagnostics"))
	viper.BindPFlag("lexer.strict", Command.Flags().Lookup("strict"))
}

// Run scans every path and writes one listing per source to out. Rendered
// diagnostics go to errOut unless they are the listing themselves. The first
// unterminated literal is returned once every path has been listed.
func Run(log zerolog.Logger, in io.Reader, out, errOut io.Writer, paths []string, opts Options) error {
	if !validFormat(opts.Format) {
		return errors.Errorf("unsupported output format %q", opts.Format)
	}

	if len(paths) == 0 {
		paths = []string{"-"}
	}

	writer := output.NewOutputWriter(out, opts.Format)
	printer := output.NewDiagnosticPrinter(errOut, opts.Color)

	var fatal error
	reported := 0
	for _, path := range paths {
		source, err := readSource(in, path)
		if err != nil {
			return err
		}
		log.Debug().Str("file", path).Str("size", humanize.Bytes(uint64(len(source)))).Msg("read source")

		result := scanner.Scan(source,
			scanner.WithLogger(log.With().Str("file", path).Logger()),
			scanner.WithExtendedWhitespace(opts.ExtendedWhitespace),
		)

		if opts.Diagnostics {
			err = writer.Write(output.NewDiagnosticListing(path, result))
		} else {
			err = writer.Write(output.NewTokenListing(path, result))
		}
		if err != nil {
			return errors.Wrap(err, "writing listing")
		}

		if !opts.Diagnostics {
			if _, err := printer.Print(source, result); err != nil {
				return errors.Wrap(err, "writing diagnostics")
			}
		}
		reported += len(result.Diagnostics)

		log.Debug().
			Str("file", path).
			Str("tokens", humanize.Comma(int64(len(result.Tokens)))).
			Int("diagnostics", len(result.Diagnostics)).
			Msg("scanned source")

		// Each source is scanned on its own; a halted scan does not stop the
		// remaining paths.
		if err := result.Err(); err != nil && fatal == nil {
			fatal = errors.Wrap(err, path)
		}
	}

	if fatal != nil {
		return fatal
	}
	if opts.Strict && reported > 0 {
		return errors.Wrapf(ErrDiagnostics, "%d reported", reported)
	}
	return nil
}

func readSource(in io.Reader, path string) (string, error) {
	var (
		b   []byte
		err error
	)

	if path == "-" {
		b, err = io.ReadAll(in)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(b), nil
}

func validFormat(format string) bool {
	for _, f := range output.Formats {
		if f == format {
			return true
		}
	}
	return false
}
