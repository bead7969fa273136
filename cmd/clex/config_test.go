/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package clex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	v.Set("logger", zerolog.Nop())
	setDefaults(v)
	return v
}

func TestDefaults(t *testing.T) {
	v := newTestViper()

	if v.GetInt("server.port") != 8001 {
		t.Errorf("expected server.port 8001, got %d", v.GetInt("server.port"))
	}
	if v.GetInt("server.cache-size") != 128 {
		t.Errorf("expected server.cache-size 128, got %d", v.GetInt("server.cache-size"))
	}
	if !v.GetBool("lexer.extended_whitespace") {
		t.Error("expected extended whitespace to default on")
	}
	if v.GetBool("lexer.strict") {
		t.Error("expected strict to default off")
	}
	if err := validateConfig(v); err != nil {
		t.Errorf("defaults failed validation: %s", err)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := map[string]struct {
		key   string
		value interface{}
		want  string
	}{
		"format":     {"clex.output", "xml", "unknown output format"},
		"repl":       {"repl.output", "yaml", "unknown output format"},
		"port":       {"server.port", 70000, "out of range"},
		"prom port":  {"server.prom-port", -1, "out of range"},
		"max body":   {"server.max-body", "lots", "server.max-body"},
		"cache size": {"server.cache-size", -5, "is negative"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			v := newTestViper()
			v.Set(tc.key, tc.value)

			err := validateConfig(v)
			if err == nil {
				t.Fatalf("expected %s=%v to be rejected", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error to mention %q, got %q", tc.want, err)
			}
		})
	}
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("CLEX_SERVER_CACHE_SIZE", "16")
	t.Setenv("CLEX_LEXER_STRICT", "true")

	v := newTestViper()
	initEnv(v)

	if v.GetInt("server.cache-size") != 16 {
		t.Errorf("expected server.cache-size 16, got %d", v.GetInt("server.cache-size"))
	}
	if !v.GetBool("lexer.strict") {
		t.Error("expected CLEX_LEXER_STRICT to turn strict on")
	}
}

func TestInitConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	contents := "[server]\nport = 9000\nmax-body = \"64KiB\"\n\n[lexer]\nextended_whitespace = false\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	v := newTestViper()
	if err := initConfig(v, path); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if v.GetInt("server.port") != 9000 {
		t.Errorf("expected server.port 9000, got %d", v.GetInt("server.port"))
	}
	if v.GetBool("lexer.extended_whitespace") {
		t.Error("expected the config file to turn extended whitespace off")
	}
	if v.GetInt("server.prom-port") != 2112 {
		t.Errorf("expected server.prom-port to keep its default, got %d", v.GetInt("server.prom-port"))
	}
}

func TestInitConfigRejectsBadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte("[server]\ncache-size = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	v := newTestViper()
	if err := initConfig(v, path); err == nil {
		t.Error("expected a negative cache size to be rejected")
	}
}

func TestClamp(t *testing.T) {
	for in, want := range map[int]int{0: 0, 1: 1, 2: 2, 5: 2} {
		if got := clamp(2, in); got != want {
			t.Errorf("clamp(2, %d) = %d, wanted %d", in, got, want)
		}
	}
}
