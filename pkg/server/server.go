package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yurifrl/extrato/pkg/config"
	"github.com/yurifrl/extrato/pkg/insights"
	"github.com/yurifrl/extrato/pkg/result"
	"github.com/yurifrl/extrato/pkg/service"
)

// maxUpload bounds uploaded spreadsheets.
const maxUpload = 32 << 20

// Server exposes the views over HTTP. Every request loads its own table.
type Server struct {
	settings  *config.Settings
	logger    *log.Logger
	mux       *http.ServeMux
	processor *service.Processor
	now       func() time.Time
}

// New creates a new HTTP server
func New(settings *config.Settings, logger *log.Logger, processor *service.Processor) *Server {
	s := &Server{
		settings:  settings,
		logger:    logger,
		mux:       http.NewServeMux(),
		processor: processor,
		now:       func() time.Time { return insights.WallClock(time.Now()) },
	}
	s.setupRoutes()
	return s
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/home", s.withLogging(s.handleHome))
	s.mux.HandleFunc("/api/cashback", s.withLogging(s.handleCashback))
	s.mux.HandleFunc("/api/reports", s.withLogging(s.handleReports))
	s.mux.HandleFunc("/api/reports/", s.withLogging(s.handleReportFile))
	s.mux.HandleFunc("/api/process", s.withLogging(s.handleProcess))
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	at, err := s.instant(r.URL.Query().Get("at"))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid at", err)
		return
	}
	table, err := s.processor.Load()
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to load operations", err)
		return
	}

	res := s.processor.Home(r.Context(), table, at)
	if err := s.writeJSON(w, statusOf(res.Kind), res); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

func (s *Server) handleCashback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	at, err := s.instant(r.URL.Query().Get("at"))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid at", err)
		return
	}
	table, err := s.processor.Load()
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to load operations", err)
		return
	}

	res, err := s.processor.Cashback(table, at)
	if err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, "cashback analysis failed", err)
		return
	}
	if err := s.writeJSON(w, http.StatusOK, res); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// reportRequest is the body of POST /api/reports.
type reportRequest struct {
	Category string `json:"category"`
	File     string `json:"file"`
	At       string `json:"at"`
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	var req reportRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.respondError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Category == "" {
		req.Category = s.settings.ReportCategory
	}
	if req.File != "" && req.File != filepath.Base(req.File) {
		s.respondError(w, r, http.StatusBadRequest, "file must be a plain name", nil)
		return
	}
	at, err := s.instant(req.At)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid at", err)
		return
	}
	table, err := s.processor.Load()
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to load operations", err)
		return
	}

	res := s.processor.CategoryReport(table, req.Category, req.File, at)
	status := http.StatusCreated
	if res.IsError() {
		status = http.StatusInternalServerError
	}
	if err := s.writeJSON(w, status, res); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// handleReportFile serves a previously saved report.
func (s *Server) handleReportFile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/api/reports/")
	if name == "" || name != filepath.Base(name) {
		s.respondError(w, r, http.StatusBadRequest, "filename required", nil)
		return
	}

	path := filepath.Join(s.processor.ReportsDir(), name)
	if _, err := os.Stat(path); err != nil {
		s.respondError(w, r, http.StatusNotFound, "report not found", err)
		return
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	http.ServeFile(w, r, path)
}

// handleProcess runs the home page and the cashback analysis over an uploaded
// spreadsheet instead of the configured operations file.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)

	file, header, err := r.FormFile("operations")
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to read file", err)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to read file", err)
		return
	}

	at, err := s.instant(r.FormValue("at"))
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid at", err)
		return
	}
	table, err := s.processor.Parse(data, header.Filename)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "failed to process file", err)
		return
	}

	cashback, err := s.processor.Cashback(table, at)
	if err != nil {
		s.respondError(w, r, http.StatusUnprocessableEntity, "cashback analysis failed", err)
		return
	}
	s.logger.Info("processed upload", "file", header.Filename, "rows", table.Len())

	if err := s.writeJSON(w, http.StatusOK, map[string]any{
		"file":     header.Filename,
		"rows":     table.Len(),
		"home":     s.processor.Home(r.Context(), table, at),
		"cashback": cashback,
	}); err != nil {
		s.logger.Warn("failed to write json response", "err", err)
	}
}

// --- helpers ---

// instant parses a reference instant in the settings date_format; empty means now.
func (s *Server) instant(value string) (time.Time, error) {
	if value == "" {
		return s.now(), nil
	}
	return s.settings.ParseInstant(value)
}

func statusOf(k result.Kind) int {
	if k == result.KindError {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

// writeJSON encodes v as JSON with the given status and writes headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, result.Fail[any](err, message))
}

// withLogging wraps a handler to log request start/end and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
				return
			}
			s.logger.Debug("http response", "method", r.Method, "path", r.URL.Path, "took", time.Since(start))
		}()
		next(w, r)
	}
}
