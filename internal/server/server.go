package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/raysh454/reportview/internal/logging"
	_ "github.com/raysh454/reportview/internal/server/docs" // registers the swagger document
	"github.com/raysh454/reportview/internal/view"
)

// RequestIDHeader carries the id assigned to every request.
const RequestIDHeader = "X-Request-Id"

// Server is the HTTP + WebSocket surface of the report view.
type Server struct {
	cfg      Config
	view     *view.View
	router   chi.Router
	upgrader websocket.Upgrader
	logger   logging.Logger
}

// NewServer creates a Server that serves activations of v.
func NewServer(cfg Config, v *view.View, logger logging.Logger) (*Server, error) {
	if v == nil {
		return nil, errors.New("view is nil")
	}
	if logger == nil {
		logger = logging.NewStdoutLogger("Server")
	}

	s := &Server{
		cfg:    cfg,
		view:   v,
		router: chi.NewRouter(),
		logger: logger.With(logging.Field{Key: "component", Value: "server"}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// same policy as corsMiddleware
				return true
			},
		},
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.router

	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)

	// CORS preflight
	r.Options("/api/report", s.optionsHandler("GET"))
	r.Options("/ws/report", s.optionsHandler("GET"))

	// Report page; anything under /report/ carries a report identifier
	r.Get("/", s.handleReportPage)
	r.Get("/report/*", s.handleReportPage)

	r.Get("/api/report", s.handleReportState)
	r.Get("/ws/report", s.handleReportWS)

	r.Get("/healthz", s.handleHealth)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Max-Age", "86400")

		next.ServeHTTP(w, r)
	})
}

func (s *Server) optionsHandler(methods string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Methods", methods)
		w.WriteHeader(http.StatusNoContent)
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqID := r.Header.Get(RequestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	w.Header().Set(RequestIDHeader, reqID)

	fields := []logging.Field{
		{Key: "request_id", Value: reqID},
		{Key: "method", Value: r.Method},
		{Key: "path", Value: r.URL.Path},
	}
	if q := r.URL.Query(); len(q) > 0 {
		fields = append(fields, logging.Field{Key: "query", Value: q})
	}

	s.logger.Info("http_request", fields...)

	s.router.ServeHTTP(w, r)
}

// HTTPServer creates an *http.Server ready to ListenAndServe.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0, // the upstream call has no deadline of its own
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// --- HTTP handlers ---

// handleReportPage godoc
// @Summary Report page
// @Description Fetches the report once and renders it as an HTML table.
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (s *Server) handleReportPage(w http.ResponseWriter, r *http.Request) {
	reportID := view.ReportIDFromPath(r.URL.Path)
	st := s.view.Activate(r.Context(), reportID, nil)

	var buf bytes.Buffer
	if err := view.Render(&buf, st); err != nil {
		s.logger.Error("rendering report page", logging.Field{Key: "error", Value: err})
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleReportState godoc
// @Summary Report state
// @Description Fetches the report once and returns the derived table as JSON.
// @Produce json
// @Param report_id query string false "report identifier hook, logged only"
// @Success 200 {object} ReportStateResponse
// @Router /api/report [get]
func (s *Server) handleReportState(w http.ResponseWriter, r *http.Request) {
	st := s.view.Activate(r.Context(), r.URL.Query().Get("report_id"), nil)
	writeJSON(w, http.StatusOK, newReportStateResponse(st))
}

// handleReportWS godoc
// @Summary Report state stream
// @Description WebSocket sending the loading state, then the final state, then closing.
// @Param report_id query string false "report identifier hook, logged only"
// @Router /ws/report [get]
func (s *Server) handleReportWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrading to websocket", logging.Field{Key: "error", Value: err.Error()})
		return
	}
	defer conn.Close()

	var writeErr error
	s.view.Activate(r.Context(), r.URL.Query().Get("report_id"), func(st view.State) {
		if writeErr != nil {
			return
		}
		// A client that went away does not cancel the fetch.
		writeErr = conn.WriteJSON(newReportStateResponse(st))
	})
	if writeErr != nil {
		s.logger.Warn("writing report state", logging.Field{Key: "error", Value: writeErr.Error()})
		return
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"),
		time.Now().Add(time.Second))
}

// handleHealth godoc
// @Summary Liveness probe
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{OK: true})
}
