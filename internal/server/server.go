package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Emilioaguirre7/MarketPulse/pkg/logger"
	"github.com/Emilioaguirre7/MarketPulse/pkg/models"
)

// Origin always allowed alongside the configured one, matching the local
// web app's dev server.
const localDevOrigin = "http://localhost:3000"

// HeadlineFetcher acquires headlines for a ticker and never fails
type HeadlineFetcher interface {
	Fetch(ctx context.Context, ticker string) []models.Headline
}

// PriceFetcher acquires price history for a ticker and never fails
type PriceFetcher interface {
	Fetch(ctx context.Context, ticker string) []models.PricePoint
}

// Analyzer produces the full sentiment report for a ticker
type Analyzer interface {
	Analyze(ctx context.Context, ticker string) models.AnalyzeResponse
}

// Server exposes the sentiment service HTTP surface
type Server struct {
	server    *http.Server
	handler   http.Handler
	headlines HeadlineFetcher
	prices    PriceFetcher
	analyzer  Analyzer
}

// New creates new HTTP server
func New(port, webOrigin string, headlines HeadlineFetcher, prices PriceFetcher, analyzer Analyzer) *Server {
	s := &Server{
		headlines: headlines,
		prices:    prices,
		analyzer:  analyzer,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /headlines/{ticker}", s.handleHeadlines)
	mux.HandleFunc("GET /prices/{ticker}", s.handlePrices)
	mux.HandleFunc("GET /analyze/{ticker}", s.handleAnalyze)
	mux.HandleFunc("GET /sentiment/{ticker}", s.handleAnalyze) // alias

	s.handler = corsMiddleware([]string{webOrigin, localDevOrigin}, logRequests(mux))

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Handler returns the root handler including middleware
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start runs the server until Shutdown or a listener error
func (s *Server) Start() error {
	logger.Info("http server starting", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}

func (s *Server) handleHeadlines(w http.ResponseWriter, r *http.Request) {
	ticker, err := ValidateTicker(r.PathValue("ticker"))
	if err != nil {
		writeInvalidTicker(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.headlines.Fetch(r.Context(), ticker))
}

func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	ticker, err := ValidateTicker(r.PathValue("ticker"))
	if err != nil {
		writeInvalidTicker(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.PricesResponse{
		Ticker: ticker,
		Series: s.prices.Fetch(r.Context(), ticker),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	ticker, err := ValidateTicker(r.PathValue("ticker"))
	if err != nil {
		writeInvalidTicker(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.analyzer.Analyze(r.Context(), ticker))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func writeInvalidTicker(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
		Error:   "Invalid ticker symbol",
		Message: err.Error(),
	})
}
