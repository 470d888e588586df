package demoapi

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/raysh454/reportview/internal/logging"
)

// ReportEndpointPrefix is the namespace every report method lives under.
const ReportEndpointPrefix = "customreport.reportapi."

// DemoAPI is a stand-in for the upstream report API with switchable
// responses.
type DemoAPI struct {
	cfg     Config
	logger  logging.Logger
	router  chi.Router
	mu      sync.RWMutex
	fixture Fixture
}

// NewDemoAPI creates a new demo API instance.
func NewDemoAPI(cfg Config, logger logging.Logger) *DemoAPI {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	if !cfg.InitialFixture.Valid() {
		cfg.InitialFixture = FixtureRecords
	}
	cfg.PathPrefix = "/" + strings.Trim(cfg.PathPrefix, "/")

	d := &DemoAPI{
		cfg:     cfg,
		logger:  logger.With(logging.Field{Key: "component", Value: "demoapi"}),
		router:  chi.NewRouter(),
		fixture: cfg.InitialFixture,
	}
	d.routes()
	return d
}

func (d *DemoAPI) routes() {
	r := d.router
	r.Use(middleware.Recoverer)

	// Control endpoints
	r.Get("/demo/fixture", d.getFixtureHandler)
	r.Post("/demo/fixture", d.setFixtureHandler)

	reports := func(r chi.Router) {
		r.Get("/{endpoint}", d.reportHandler)
		r.Post("/{endpoint}", d.reportHandler)
	}
	if d.cfg.PathPrefix == "/" {
		reports(r)
	} else {
		r.Route(d.cfg.PathPrefix, reports)
	}
}

// ServeHTTP implements http.Handler.
func (d *DemoAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.router.ServeHTTP(w, r)
}

// Start starts the demo API and blocks until it fails.
func (d *DemoAPI) Start() error {
	addr := fmt.Sprintf(":%d", d.cfg.Port)
	d.logger.Info("demo api starting",
		logging.Field{Key: "addr", Value: addr},
		logging.Field{Key: "base_url", Value: "http://localhost" + addr + strings.TrimSuffix(d.cfg.PathPrefix, "/")},
		logging.Field{Key: "fixture", Value: d.Fixture()})
	return http.ListenAndServe(addr, d)
}

// Fixture returns the fixture currently served.
func (d *DemoAPI) Fixture() Fixture {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.fixture
}

// SetFixture switches the fixture served by report endpoints.
func (d *DemoAPI) SetFixture(f Fixture) error {
	if !f.Valid() {
		return fmt.Errorf("unknown fixture %q", f)
	}
	d.mu.Lock()
	d.fixture = f
	d.mu.Unlock()
	return nil
}

func (d *DemoAPI) authorized(r *http.Request) bool {
	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(d.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(d.cfg.Password)) == 1
	return userOK && passOK
}

// reportHandler answers any report method with the selected fixture.
func (d *DemoAPI) reportHandler(w http.ResponseWriter, r *http.Request) {
	endpoint := chi.URLParam(r, "endpoint")
	name, ok := strings.CutPrefix(endpoint, ReportEndpointPrefix)
	if !ok || name == "" {
		writeRaw(w, http.StatusNotFound, `{"message":"Method not found"}`)
		return
	}

	if !d.authorized(r) {
		d.logger.Warn("rejected unauthenticated report request", logging.Field{Key: "report", Value: name})
		writeRaw(w, http.StatusUnauthorized, `{"message":"Unauthorized"}`)
		return
	}

	fixture := d.Fixture()
	resp := fixtures[fixture]
	d.logger.Info("serving report",
		logging.Field{Key: "method", Value: r.Method},
		logging.Field{Key: "report", Value: name},
		logging.Field{Key: "fixture", Value: fixture},
		logging.Field{Key: "status", Value: resp.status})

	writeRaw(w, resp.status, resp.body)
}

type fixtureState struct {
	Fixture   Fixture   `json:"fixture"`
	Available []Fixture `json:"available,omitempty"`
}

func (d *DemoAPI) getFixtureHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(fixtureState{Fixture: d.Fixture(), Available: Fixtures()})
}

func (d *DemoAPI) setFixtureHandler(w http.ResponseWriter, r *http.Request) {
	var req fixtureState
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := d.SetFixture(req.Fixture); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	d.logger.Info("fixture switched", logging.Field{Key: "fixture", Value: req.Fixture})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(fixtureState{Fixture: req.Fixture})
}

func writeRaw(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
