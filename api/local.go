/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package clex

import (
	"context"

	"github.com/dburkart/clex/pkg/scanner"
	"github.com/dburkart/clex/pkg/server"
	"github.com/google/uuid"
)

// LocalClient scans in the calling process and answers with the same
// response a server would.
type LocalClient struct {
	Options []scanner.Option
}

func (client *LocalClient) Open(_ string) error {
	return nil
}

func (client *LocalClient) Close() error {
	return nil
}

func (client *LocalClient) Lex(ctx context.Context, source string) (server.LexResponse, error) {
	if err := ctx.Err(); err != nil {
		return server.LexResponse{}, err
	}

	result := scanner.Scan(source, client.Options...)
	return server.NewLexResponse(uuid.New(), result), nil
}
