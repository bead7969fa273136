/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"github.com/dburkart/clex/pkg/server"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Command = &cobra.Command{
	Use:   "server",
	Short: "HTTP service that tokenizes posted source text",

	RunE: func(cmd *cobra.Command, args []string) error {
		logger := viper.Get("logger").(zerolog.Logger)

		maxBody, err := humanize.ParseBytes(viper.GetString("server.max-body"))
		if err != nil {
			return errors.Wrap(err, "parsing max-body")
		}

		srv := server.New(logger, server.Config{
			Port:               viper.GetInt("server.port"),
			MetricsPort:        viper.GetInt("server.prom-port"),
			MaxBody:            int64(maxBody),
			CacheSize:          viper.GetInt("server.cache-size"),
			ExtendedWhitespace: viper.GetBool("lexer.extended_whitespace"),
		})
		logger.Debug().Str("max-body", humanize.IBytes(maxBody)).Msg("configured request limit")

		// Serve the metrics endpoint
		go srv.ServeMetrics()

		// Serve the lexer
		return srv.ServeLex()
	},
}

func init() {
	// Flags for this command
	Command.Flags().IntP("port", "p", 8001, "Port for the /lex endpoint")
	Command.Flags().Int("prom-port", 2112, "Set the port for /metrics")
	Command.Flags().String("max-body", "1MiB", "Largest request body accepted, e.g. 64KiB")
	Command.Flags().Int("cache-size", 128, "Number of scan results to cache, 0 disables the cache")

	// Bind flags to viper
	viper.BindPFlag("server.port", Command.Flags().Lookup("port"))
	viper.BindPFlag("server.prom-port", Command.Flags().Lookup("prom-port"))
	viper.BindPFlag("server.max-body", Command.Flags().Lookup("max-body"))
	viper.BindPFlag("server.cache-size", Command.Flags().Lookup("cache-size"))
}
