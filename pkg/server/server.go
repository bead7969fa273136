/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/dburkart/clex/pkg/scanner"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	EndpointLex    = "/lex"
	EndpointHealth = "/healthz"
	EndpointMetric = "/metrics"

	RequestIDHeader = "X-Request-Id"
)

type Config struct {
	Port               int
	MetricsPort        int
	MaxBody            int64
	CacheSize          int
	ExtendedWhitespace bool
}

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore
	cache   *ResultCache

	port               int
	metricsPort        int
	maxBody            int64
	extendedWhitespace bool
}

func New(log zerolog.Logger, cfg Config) Server {
	metrics := NewMetricsStore()
	cache := NewResultCache(cfg.CacheSize)
	metrics.RegisterCollector(NewCacheStatsCollector(cache))

	return Server{
		log:                log,
		metrics:            metrics,
		cache:              cache,
		port:               cfg.Port,
		metricsPort:        cfg.MetricsPort,
		maxBody:            cfg.MaxBody,
		extendedWhitespace: cfg.ExtendedWhitespace,
	}
}

// Handler routes the lexing and health endpoints. Metrics are served
// separately by ServeMetrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(EndpointLex, s.handleLex)
	mux.HandleFunc(EndpointHealth, s.handleHealth)
	return mux
}

func (s *Server) ServeLex() error {
	s.log.Info().Int("port", s.port).Msg("listening for lex requests")
	err := http.ListenAndServe(fmt.Sprintf(":%d", s.port), s.Handler())
	return errors.Wrap(err, "serving lex endpoint")
}

func (s *Server) ServeMetrics() {
	s.log.Info().Int("port", s.metricsPort).Msg("/metrics endpoint started")
	mux := http.NewServeMux()
	mux.Handle(EndpointMetric, s.metrics.Handler())
	err := http.ListenAndServe(fmt.Sprintf(":%d", s.metricsPort), mux)
	if err != nil {
		s.log.Error().Err(err).Msg("error serving metrics")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.IncRequests(EndpointHealth, strconv.Itoa(http.StatusOK))
	w.Write([]byte("ok\n"))
}

func (s *Server) handleLex(w http.ResponseWriter, r *http.Request) {
	id := uuid.New()
	log := s.log.With().Str("id", id.String()).Logger()
	w.Header().Set(RequestIDHeader, id.String())

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeError(w, log, http.StatusMethodNotAllowed, errors.Errorf("method %s not allowed", r.Method))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, log, http.StatusRequestEntityTooLarge, errors.Errorf("body exceeds %d bytes", tooLarge.Limit))
			return
		}
		s.writeError(w, log, http.StatusBadRequest, errors.Wrap(err, "reading body"))
		return
	}

	source := string(body)
	result, cached := s.cache.Get(source)
	if cached {
		s.metrics.IncCache("hit")
	} else {
		s.metrics.IncCache("miss")

		start := time.Now()
		result = scanner.Scan(source,
			scanner.WithLogger(log),
			scanner.WithExtendedWhitespace(s.extendedWhitespace),
		)
		s.metrics.ObserveScanNS(time.Since(start).Nanoseconds())
		s.cache.Put(source, result)
	}

	s.metrics.AddTokens(len(result.Tokens))
	for _, d := range result.Diagnostics {
		s.metrics.IncDiagnostics(d.Kind.ToString())
	}

	log.Debug().
		Int("bytes", len(body)).
		Int("tokens", len(result.Tokens)).
		Int("diagnostics", len(result.Diagnostics)).
		Bool("cached", cached).
		Msg("lexed request")

	s.writeJSON(w, log, http.StatusOK, NewLexResponse(id, result))
}
