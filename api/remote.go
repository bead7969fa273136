/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package clex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/dburkart/clex/pkg/server"
	"github.com/pkg/errors"
)

// A RemoteClient holds the data needed to talk to a clex server.
type RemoteClient struct {
	endpoint   string
	httpClient *http.Client

	attempts int
	backoff  time.Duration
}

// StatusError is returned when the server answers with a non-200 status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

func (client *RemoteClient) Open(target string) error {
	client.endpoint = strings.TrimSuffix(target, "/") + server.EndpointLex
	client.httpClient = &http.Client{Timeout: 30 * time.Second}
	client.attempts = 3
	client.backoff = time.Second
	return nil
}

func (client *RemoteClient) Close() error {
	client.httpClient.CloseIdleConnections()
	return nil
}

func (client *RemoteClient) Lex(ctx context.Context, source string) (server.LexResponse, error) {
	resp, err := client.postWithBackoff(ctx, []byte(source))
	if err != nil {
		return server.LexResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		e := server.ErrResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
			return server.LexResponse{}, &StatusError{Code: resp.StatusCode, Message: resp.Status}
		}
		return server.LexResponse{}, &StatusError{Code: e.Code, Message: e.Error}
	}

	lex := server.LexResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&lex); err != nil {
		return server.LexResponse{}, errors.Wrap(err, "unable to decode lex response")
	}
	return lex, nil
}

// postWithBackoff retries transport failures, doubling the delay each time.
// A response of any status ends the retries.
func (client *RemoteClient) postWithBackoff(ctx context.Context, body []byte) (*http.Response, error) {
	var err error

	for i := 0; i < client.attempts; i++ {
		if i > 0 {
			delay := time.Duration(math.Exp2(float64(i-1))) * client.backoff
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, client.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, errors.Wrap(err, "building request")
		}
		req.Header.Set("Content-Type", "text/plain; charset=utf-8")

		var resp *http.Response
		resp, err = client.httpClient.Do(req)
		if err == nil {
			return resp, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, errors.Wrapf(err, "unable to reach %s", client.endpoint)
}
