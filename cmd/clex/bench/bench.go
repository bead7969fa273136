/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package bench

import (
	"fmt"
	"strings"
	"time"

	"github.com/dburkart/clex/pkg/scanner"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "bench",
	Short: "Time the scanner over generated source text",

	Run: func(cmd *cobra.Command, args []string) {
		log := viper.Get("logger").(zerolog.Logger)

		lines := viper.GetInt("bench.lines")
		rounds := viper.GetInt("bench.rounds")
		source := GenerateSource(lines)

		// bench
		timeIt(log, "ScanGenerated", len(source), rounds, func() int {
			return len(scanner.Scan(source).Tokens)
		})
	},
}

func init() {
	// Flags for this command
	Command.Flags().Int("lines", 1000, "Number of generated source lines")
	Command.Flags().Int("rounds", 10, "Number of times to scan the source")

	// Bind flags to viper
	viper.BindPFlag("bench.lines", Command.Flags().Lookup("lines"))
	viper.BindPFlag("bench.rounds", Command.Flags().Lookup("rounds"))
}

var templates = []string{
	"int v%d = 0x%X;",
	"double d%d = %d.5e-3;",
	"if (v%d <= %d && !flag) { total += *ptr; }",
	"s%d = \"line %d\"; /* note */",
	"p%d->next = &node[%d]; // link",
	"x%d <<= 0b101 - 0%o;",
}

// GenerateSource builds n lines drawn round-robin from a fixed set of
// statements that cover every token kind.
func GenerateSource(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, templates[i%len(templates)], i, i)
		b.WriteByte('\n')
	}
	return b.String()
}

func timeIt(log zerolog.Logger, name string, size, rounds int, f func() int) {
	t := time.Now()
	tokens := 0
	for i := 0; i < rounds; i++ {
		tokens += f()
	}
	dur := time.Since(t)

	perSecond := uint64(0)
	if dur > 0 {
		perSecond = uint64(float64(size*rounds) / dur.Seconds())
	}

	log.Info().
		Str("name", name).
		Str("dur", dur.String()).
		Str("source", humanize.Bytes(uint64(size))).
		Str("tokens", humanize.Comma(int64(tokens))).
		Str("throughput", humanize.Bytes(perSecond)+"/s").
		Send()
}
