/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package clex

import (
	"context"
	"net/url"
	"strings"

	"github.com/dburkart/clex/pkg/server"
	"github.com/pkg/errors"
)

type Client interface {
	Open(target string) error
	Close() error
	Lex(ctx context.Context, source string) (server.LexResponse, error)
}

// NewClient creates a Client for target. The empty string and "local" scan
// in-process; an http or https URL talks to a running clex server.
func NewClient(target string) (Client, error) {
	var client Client

	if target == "" || strings.EqualFold(target, "local") {
		client = &LocalClient{}
	} else {
		u, err := url.Parse(target)
		if err != nil {
			return nil, errors.Wrap(err, "parsing target")
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, errors.Errorf("unsupported target scheme %q", u.Scheme)
		}
		client = &RemoteClient{}
	}

	err := client.Open(target)
	if err != nil {
		return nil, err
	}

	return client, nil
}
