/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package clex

import (
	"fmt"
	"os"

	"github.com/dburkart/clex/cmd/clex/bench"
	"github.com/dburkart/clex/cmd/clex/lex"
	"github.com/dburkart/clex/cmd/clex/repl"
	"github.com/dburkart/clex/cmd/clex/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	Version        = "develop"
	CommitHash     = "n/a"
	BuildTimestamp = "n/a"

	rootCmd = &cobra.Command{
		Use:   "clex",
		Short: "Clex is a small lexer for C-like source text",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()
			initLogging(v)
			initLogLevel(v)
			if err := initConfig(v, cmd.Root().PersistentFlags().Lookup("config").Value.String()); err != nil {
				return err
			}
			initLogLevel(v)
			traceConfig(v)
			return nil
		},
		SilenceUsage: true,
		Version:      Version,
	}
)

func init() {
	// Configure the root binary options
	rootCmd.PersistentFlags().CountP("verbose", "v", "-v for debug logs (-vv for trace)")
	rootCmd.PersistentFlags().Bool("local", true, "Configures the logger to print readable logs")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the clex config file (default ./config.toml)")
	rootCmd.PersistentFlags().Bool("extended-whitespace", true, "Treat tabs, carriage returns and form feeds as whitespace")

	// Bind viper config to the root flags
	viper.BindPFlag("clex.local", rootCmd.PersistentFlags().Lookup("local"))
	viper.BindPFlag("clex.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("lexer.extended_whitespace", rootCmd.PersistentFlags().Lookup("extended-whitespace"))

	rootCmd.SetVersionTemplate(fmt.Sprintf("clex version: %s git_commit: %s build_time: %s\n", Version, CommitHash, BuildTimestamp))

	setDefaults(viper.GetViper())
	initEnv(viper.GetViper())

	// Register commands on the root binary command
	for _, cmd := range []*cobra.Command{lex.Command, repl.Command, server.Command, bench.Command} {
		cmd.Version = rootCmd.Version
		rootCmd.AddCommand(cmd)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("root command failed")
		os.Exit(1)
	}
}
