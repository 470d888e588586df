package reportapi_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/reportview/internal/logging"
	"github.com/raysh454/reportview/internal/reportapi"
	"github.com/raysh454/reportview/internal/testutil"
	"github.com/raysh454/reportview/internal/webclient"
)

func validConfig(baseURL string) reportapi.Config {
	return reportapi.Config{Username: "report-user", Password: "s3cret", BaseURL: baseURL}
}

func newDummyClient(t *testing.T, wc *testutil.DummyWebClient) (*reportapi.Client, *testutil.DummyLogger) {
	t.Helper()
	logger := &testutil.DummyLogger{}
	c, err := reportapi.NewClient(validConfig("https://reports.example.com/api/method"), wc, logger)
	require.NoError(t, err)
	return c, logger
}

// ─── Configuration ─────────────────────────────────────────────────────

func TestNewClient_IncompleteConfig_NoNetwork(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		cfg     reportapi.Config
		missing string
	}{
		{"missing username", reportapi.Config{Password: "p", BaseURL: "https://x.io"}, reportapi.EnvUsername},
		{"missing password", reportapi.Config{Username: "u", BaseURL: "https://x.io"}, reportapi.EnvPassword},
		{"missing base url", reportapi.Config{Username: "u", Password: "p"}, reportapi.EnvBaseURL},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wc := &testutil.DummyWebClient{}
			c, err := reportapi.NewClient(tt.cfg, wc, logging.NopLogger{})

			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, reportapi.ErrIncompleteConfig)
			assert.Contains(t, err.Error(), tt.missing)
			assert.Zero(t, wc.Calls())
		})
	}
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	t.Parallel()
	_, err := reportapi.NewClient(validConfig("not a url"), &testutil.DummyWebClient{}, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, reportapi.ErrIncompleteConfig)
}

func TestCall_ZeroClient_FailsBeforeNetwork(t *testing.T) {
	t.Parallel()
	var c reportapi.Client

	env, err := reportapi.FirstReport[[]map[string]any](context.Background(), &c)

	assert.Nil(t, env)
	assert.ErrorIs(t, err, reportapi.ErrIncompleteConfig)
}

// ─── Success ───────────────────────────────────────────────────────────

func TestCall_Success_ReturnsBodyUnmodified(t *testing.T) {
	t.Parallel()
	body := []byte(`{"message":[{"id":1,"name":"a"}],"success":true,"status":200,"extra":"kept"}`)
	wc := &testutil.DummyWebClient{Body: body}
	c, logger := newDummyClient(t, wc)

	env, err := reportapi.FirstReport[[]map[string]any](context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, string(body), string(env.Raw))
	require.Len(t, env.Message, 1)
	assert.Equal(t, "a", env.Message[0]["name"])
	require.NotNil(t, env.Success)
	assert.True(t, *env.Success)
	require.NotNil(t, env.Status)
	assert.Equal(t, 200, *env.Status)

	assert.True(t, logger.Has("info", "sending report api request"))
	assert.True(t, logger.Has("info", "report api call successful"))
}

func TestCall_OptionalFieldsAbsent(t *testing.T) {
	t.Parallel()
	wc := &testutil.DummyWebClient{Body: []byte(`{"message":"hello"}`)}
	c, _ := newDummyClient(t, wc)

	env, err := reportapi.Call[string](context.Background(), c, "x.y", nil, "")
	require.NoError(t, err)

	assert.Equal(t, "hello", env.Message)
	assert.Nil(t, env.Success)
	assert.Nil(t, env.Status)
	assert.Equal(t, http.MethodGet, wc.LastRequest().Method)
}

func TestCall_SendsAuthAndContentType(t *testing.T) {
	t.Parallel()
	wc := &testutil.DummyWebClient{}
	c, _ := newDummyClient(t, wc)

	_, err := reportapi.FirstReport[json.RawMessage](context.Background(), c)
	require.NoError(t, err)

	req := wc.LastRequest()
	require.NotNil(t, req)
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("report-user:s3cret"))
	assert.Equal(t, want, req.Headers.Get("Authorization"))
	assert.Equal(t, "application/json", req.Headers.Get("Content-Type"))
	assert.Equal(t, "https://reports.example.com/api/method/customreport.reportapi.get_first_report", req.URL)
	assert.Empty(t, req.Body)
}

func TestCustomReport_InterpolatesPathAndQuery(t *testing.T) {
	t.Parallel()
	wc := &testutil.DummyWebClient{}
	c, _ := newDummyClient(t, wc)

	_, err := reportapi.CustomReport[json.RawMessage](context.Background(), c, "get_sales", reportapi.Params{
		"year":   2024,
		"region": "north",
		"skip":   nil,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"https://reports.example.com/api/method/customreport.reportapi.get_sales?region=north&year=2024",
		wc.LastRequest().URL)
}

// ─── Round trip over a real server ─────────────────────────────────────

func TestCall_HTTPRoundTrip_GETAndPOST(t *testing.T) {
	t.Parallel()
	type seen struct {
		method, path, query, auth, body string
	}
	got := make(chan seen, 2)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got <- seen{r.Method, r.URL.Path, r.URL.RawQuery, r.Header.Get("Authorization"), string(b)}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"message":{"ok":true}}`)
	}))
	defer ts.Close()

	wc := webclient.NewNetHTTPClient(webclient.Config{}, logging.NopLogger{}, ts.Client())
	c, err := reportapi.NewClient(validConfig(ts.URL+"/api/method/"), wc, logging.NopLogger{})
	require.NoError(t, err)

	_, err = reportapi.Call[map[string]bool](context.Background(), c, "a.b.c", reportapi.Params{"id": 7}, reportapi.MethodGet)
	require.NoError(t, err)
	s := <-got
	assert.Equal(t, http.MethodGet, s.method)
	assert.Equal(t, "/api/method/a.b.c", s.path)
	assert.Equal(t, "id=7", s.query)
	assert.Empty(t, s.body)
	assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("report-user:s3cret")), s.auth)

	env, err := reportapi.Call[map[string]bool](context.Background(), c, "a.b.c", reportapi.Params{"id": 7}, reportapi.MethodPost)
	require.NoError(t, err)
	s = <-got
	assert.Equal(t, http.MethodPost, s.method)
	assert.Empty(t, s.query)
	assert.JSONEq(t, `{"id":7}`, s.body)
	assert.True(t, env.Message["ok"])
}

func TestCall_UnsupportedMethod(t *testing.T) {
	t.Parallel()
	wc := &testutil.DummyWebClient{}
	c, _ := newDummyClient(t, wc)

	_, err := reportapi.Call[any](context.Background(), c, "a.b", nil, "DELETE")
	require.Error(t, err)
	assert.Zero(t, wc.Calls())
}

// ─── Failures ──────────────────────────────────────────────────────────

func TestCall_HTTPError_PrefersServerMessage(t *testing.T) {
	t.Parallel()
	data := `{"message":"X","exc_type":"DoesNotExistError"}`
	wc := &testutil.DummyWebClient{StatusCode: http.StatusNotFound, Body: []byte(data)}
	c, logger := newDummyClient(t, wc)

	_, err := reportapi.FirstReport[any](context.Background(), c)

	var apiErr *reportapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "X", apiErr.Message)
	assert.Equal(t, reportapi.FirstReportEndpoint, apiErr.Endpoint)
	assert.JSONEq(t, data, string(apiErr.Data))
	assert.True(t, logger.Has("error", "report api call failed"))
}

func TestCall_HTTPError_FallsBackToTransportText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body string
		data string
	}{
		{"no message field", `{"detail":"boom"}`, `{"detail":"boom"}`},
		{"empty message", `{"message":""}`, `{"message":""}`},
		{"null message", `{"message":null}`, `{"message":null}`},
		{"plain text body", `Internal Server Error`, `"Internal Server Error"`},
		{"empty body", ``, ``},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wc := &testutil.DummyWebClient{StatusCode: http.StatusInternalServerError, Body: []byte(tt.body)}
			c, _ := newDummyClient(t, wc)

			_, err := reportapi.Call[any](context.Background(), c, "a.b", nil, reportapi.MethodGet)

			var apiErr *reportapi.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 500, apiErr.Status)
			assert.Equal(t, "Request failed with status code 500", apiErr.Message)
			assert.Equal(t, tt.data, string(apiErr.Data))
		})
	}
}

func TestCall_TransportError_Normalized(t *testing.T) {
	t.Parallel()
	cause := errors.New("dial tcp 10.0.0.1:443: connect: connection refused")
	wc := &testutil.DummyWebClient{Err: &webclient.Error{Method: "GET", URL: "https://x", Err: cause}}
	c, _ := newDummyClient(t, wc)

	_, err := reportapi.FirstReport[any](context.Background(), c)

	var apiErr *reportapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.Equal(t, cause.Error(), apiErr.Message)
	assert.Nil(t, apiErr.Data)
	assert.ErrorIs(t, err, cause)
}

func TestCall_UnknownError_PassedThrough(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	wc := &testutil.DummyWebClient{Err: boom}
	c, logger := newDummyClient(t, wc)

	_, err := reportapi.FirstReport[any](context.Background(), c)

	assert.Same(t, boom, err)
	assert.True(t, logger.Has("error", "unknown error"))
}

func TestCall_NonObjectSuccessBody_HasNoMessage(t *testing.T) {
	t.Parallel()
	for _, body := range []string{`[{"id":1}]`, `"text"`, `<html>ok</html>`, ``} {
		wc := &testutil.DummyWebClient{Body: []byte(body)}
		c, logger := newDummyClient(t, wc)

		env, err := c.FetchFirstReport(context.Background())

		require.NoError(t, err, body)
		require.NotNil(t, env, body)
		assert.Empty(t, env.Message, body)
		assert.Nil(t, env.Success, body)
		assert.Equal(t, body, string(env.Raw), body)
		assert.True(t, logger.Has("warn", "not a JSON object"), body)
	}
}

func TestCall_UndecodableObjectBody_PassedThrough(t *testing.T) {
	t.Parallel()
	wc := &testutil.DummyWebClient{Body: []byte(`{"message": [1,`)}
	c, _ := newDummyClient(t, wc)

	_, err := reportapi.FirstReport[any](context.Background(), c)

	require.Error(t, err)
	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
	var apiErr *reportapi.APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestCall_MessageTypeMismatch_PassedThrough(t *testing.T) {
	t.Parallel()
	wc := &testutil.DummyWebClient{Body: []byte(`{"message":"text"}`)}
	c, _ := newDummyClient(t, wc)

	_, err := reportapi.FirstReport[[]map[string]any](context.Background(), c)

	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestFetchFirstReport_KeepsMessageRaw(t *testing.T) {
	t.Parallel()
	wc := &testutil.DummyWebClient{Body: []byte(`{"message":[{"b":1,"a":2}]}`)}
	c, _ := newDummyClient(t, wc)

	env, err := c.FetchFirstReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `[{"b":1,"a":2}]`, string(env.Message))
}
