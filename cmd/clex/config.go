/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package clex

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/dburkart/clex/pkg/output"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// defaults mirror the command flags so a config file or the environment can
// stand in for any of them.
var defaults = map[string]interface{}{
	"clex.output":               "text",
	"clex.diagnostics":          false,
	"lexer.extended_whitespace": true,
	"lexer.strict":              false,
	"repl.output":               "text",
	"repl.host":                 "local",
	"server.port":               8001,
	"server.prom-port":          2112,
	"server.max-body":           "1MiB",
	"server.cache-size":         128,
	"bench.lines":               1000,
	"bench.rounds":              10,
}

func setDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// initEnv lets CLEX_SERVER_CACHE_SIZE and friends override lexer.* and
// server.* keys.
func initEnv(v *viper.Viper) {
	v.SetEnvPrefix("clex")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

func initConfig(v *viper.Viper, configFile string) error {
	log := v.Get("logger").(zerolog.Logger)

	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath("/etc/clex")
	v.AddConfigPath("$HOME/.clex")
	v.AddConfigPath(".")

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	err := v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Debug().Msg("No config file found, using flag defaults")
	} else if err != nil {
		return errors.Wrap(err, "loading config file")
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("loaded config from file")
	}

	return validateConfig(v)
}

// validateConfig rejects settings that would only fail later, once a scan
// or the server is already underway.
func validateConfig(v *viper.Viper) error {
	for _, key := range []string{"clex.output", "repl.output"} {
		if !isFormat(v.GetString(key)) {
			return errors.Errorf("%s: unknown output format %q, expected one of %s",
				key, v.GetString(key), strings.Join(output.Formats, ", "))
		}
	}

	for _, key := range []string{"server.port", "server.prom-port"} {
		if port := v.GetInt(key); port < 0 || port > 65535 {
			return errors.Errorf("%s: port %d out of range", key, port)
		}
	}

	if _, err := humanize.ParseBytes(v.GetString("server.max-body")); err != nil {
		return errors.Wrap(err, "server.max-body")
	}

	if size := v.GetInt("server.cache-size"); size < 0 {
		return errors.Errorf("server.cache-size: %d is negative, use 0 to disable the cache", size)
	}

	return nil
}

func isFormat(format string) bool {
	for _, f := range output.Formats {
		if f == format {
			return true
		}
	}
	return false
}

func initLogLevel(v *viper.Viper) {
	switch clamp(2, v.GetInt("clex.verbose")) {
	case 2:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// initLogging stores the logger under the "logger" key. Logs always go to
// stderr so they never mix with a listing on stdout.
func initLogging(v *viper.Viper) {
	var writer io.Writer = os.Stderr
	if v.GetBool("clex.local") {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    !output.IsTerminal(os.Stderr),
		}
	}

	v.Set("logger", zerolog.New(writer).With().Timestamp().Logger())
}

func traceConfig(v *viper.Viper) {
	log := v.Get("logger").(zerolog.Logger)

	for _, key := range v.AllKeys() {
		if key == "logger" {
			continue
		}
		log.Trace().Str("key", key).Interface("value", v.Get(key)).Msg("config")
	}
}

func clamp(clamp, a int) int {
	if a >= clamp {
		return clamp
	}
	return a
}
