// Package testutil provides shared test doubles for use across package tests.
// All dummies implement the corresponding interfaces from the production code,
// allowing injection into components under test without real I/O or side effects.
package testutil

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/raysh454/reportview/internal/logging"
	"github.com/raysh454/reportview/internal/webclient"
)

// ─── Logger ────────────────────────────────────────────────────────────

// Entry is one recorded log call.
type Entry struct {
	Level  string
	Msg    string
	Fields []logging.Field
}

// DummyLogger implements logging.Logger with in-memory recording.
type DummyLogger struct {
	mu      sync.Mutex
	Entries []Entry
	Errors  []string
	Infos   []string
	Debugs  []string
	Warns   []string
}

func (l *DummyLogger) record(level, msg string, fields []logging.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, Entry{Level: level, Msg: msg, Fields: fields})
	switch level {
	case "debug":
		l.Debugs = append(l.Debugs, msg)
	case "info":
		l.Infos = append(l.Infos, msg)
	case "warn":
		l.Warns = append(l.Warns, msg)
	case "error":
		l.Errors = append(l.Errors, msg)
	}
}

func (l *DummyLogger) Debug(msg string, fields ...logging.Field) { l.record("debug", msg, fields) }
func (l *DummyLogger) Info(msg string, fields ...logging.Field)  { l.record("info", msg, fields) }
func (l *DummyLogger) Warn(msg string, fields ...logging.Field)  { l.record("warn", msg, fields) }
func (l *DummyLogger) Error(msg string, fields ...logging.Field) { l.record("error", msg, fields) }

func (l *DummyLogger) With(_ ...logging.Field) logging.Logger { return l }

// Count returns how many entries were recorded at level.
func (l *DummyLogger) Count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.Entries {
		if e.Level == level {
			n++
		}
	}
	return n
}

// Has reports whether a message containing substr was logged at level.
func (l *DummyLogger) Has(level, substr string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.Entries {
		if e.Level == level && strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}

// ─── WebClient ─────────────────────────────────────────────────────────

// DummyWebClient implements webclient.WebClient.
// By default it returns body `{"message":[]}` with status 200. Set
// StatusCode/Body to script a response, or Err to fail every call.
type DummyWebClient struct {
	ResponseDelay time.Duration
	StatusCode    int
	Body          []byte
	Err           error

	mu       sync.Mutex
	Requests []*webclient.Request
}

func (d *DummyWebClient) Do(ctx context.Context, req *webclient.Request) (*webclient.Response, error) {
	if d.ResponseDelay > 0 {
		select {
		case <-time.After(d.ResponseDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if req == nil {
		return nil, errors.New("nil request")
	}
	d.mu.Lock()
	d.Requests = append(d.Requests, req)
	d.mu.Unlock()

	if d.Err != nil {
		return nil, d.Err
	}

	code := d.StatusCode
	if code == 0 {
		code = 200
	}
	body := d.Body
	if body == nil {
		body = []byte(`{"message":[]}`)
	}
	return &webclient.Response{
		Request:    req,
		Body:       body,
		StatusCode: code,
		FetchedAt:  time.Now(),
	}, nil
}

func (d *DummyWebClient) Close() error { return nil }

// Calls returns the number of requests received.
func (d *DummyWebClient) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.Requests)
}

// LastRequest returns the most recent request, or nil.
func (d *DummyWebClient) LastRequest() *webclient.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Requests) == 0 {
		return nil
	}
	return d.Requests[len(d.Requests)-1]
}
