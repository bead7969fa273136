/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dburkart/clex/pkg/output"
	"github.com/dburkart/clex/pkg/scanner"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LexResponse is the body returned by a successful POST /lex.
type LexResponse struct {
	ID          string                   `json:"id"`
	Tokens      []output.TokenEntry      `json:"tokens"`
	Diagnostics []output.DiagnosticEntry `json:"diagnostics"`
	Fatal       bool                     `json:"fatal"`
}

type ErrResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func NewLexResponse(id uuid.UUID, result scanner.Result) LexResponse {
	tokens := output.NewTokenListing("", result)
	diagnostics := output.NewDiagnosticListing("", result)

	return LexResponse{
		ID:          id.String(),
		Tokens:      tokens.Tokens,
		Diagnostics: diagnostics.Diagnostics,
		Fatal:       result.Fatal,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, log zerolog.Logger, code int, v any) {
	s.metrics.IncRequests(EndpointLex, strconv.Itoa(code))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Error().Err(err).Msg("unable to write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, log zerolog.Logger, code int, err error) {
	log.Warn().Err(err).Int("code", code).Msg("rejected request")
	s.writeJSON(w, log, code, ErrResponse{Code: code, Error: err.Error()})
}
