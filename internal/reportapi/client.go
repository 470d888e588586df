package reportapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/raysh454/reportview/internal/logging"
	"github.com/raysh454/reportview/internal/utils"
	"github.com/raysh454/reportview/internal/webclient"
)

// Method is the HTTP verb of a report API call.
type Method string

const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
)

// Client performs authenticated calls against the report API. It is safe
// for concurrent use; it holds no per-call state.
type Client struct {
	cfg        Config
	baseURL    string
	authHeader string
	wc         webclient.WebClient
	logger     logging.Logger
}

// NewClient validates cfg and returns a Client that sends its requests
// through wc. A nil wc gets a net/http client without timeout.
func NewClient(cfg Config, wc webclient.WebClient, logger logging.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	logger = logger.With(logging.Field{Key: "component", Value: "reportapi"})

	if err := cfg.Validate(); err != nil {
		logger.Error("missing environment variables for report api call", logging.Field{Key: "error", Value: err})
		return nil, err
	}

	base, err := utils.NormalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvBaseURL, err)
	}

	if wc == nil {
		wc = webclient.NewNetHTTPClient(webclient.Config{}, logger, nil)
	}

	creds := base64.StdEncoding.EncodeToString([]byte(cfg.Username + ":" + cfg.Password))
	return &Client{
		cfg:        cfg,
		baseURL:    base,
		authHeader: "Basic " + creds,
		wc:         wc,
		logger:     logger,
	}, nil
}

// BaseURL returns the normalized base URL requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) ready() bool {
	return c != nil && c.wc != nil && c.baseURL != "" && c.cfg.Validate() == nil
}

func (c *Client) log() logging.Logger {
	if c == nil || c.logger == nil {
		return logging.NopLogger{}
	}
	return c.logger
}

// Call sends one request to {base_url}/{endpoint} and decodes the envelope.
//
// Non-2xx responses and requests that never completed are returned as
// *APIError. Any other failure, such as an undecodable success body, is
// returned unchanged. The client never retries.
func Call[T any](ctx context.Context, c *Client, endpoint string, params Params, method Method) (*Envelope[T], error) {
	if !c.ready() {
		c.log().Error("missing environment variables for report api call",
			logging.Field{Key: "endpoint", Value: endpoint})
		return nil, ErrIncompleteConfig
	}

	req, err := c.newRequest(endpoint, params, method)
	if err != nil {
		return nil, err
	}

	c.logger.Info("sending report api request",
		logging.Field{Key: "method", Value: req.Method},
		logging.Field{Key: "url", Value: req.URL},
		logging.Field{Key: "endpoint", Value: endpoint})

	resp, err := c.wc.Do(ctx, req)
	if err != nil {
		var wcErr *webclient.Error
		if errors.As(err, &wcErr) {
			c.logger.Error("report api call failed",
				logging.Field{Key: "url", Value: req.URL},
				logging.Field{Key: "error", Value: wcErr.Err})
			return nil, &APIError{
				Message:  wcErr.Err.Error(),
				Endpoint: endpoint,
				Err:      err,
			}
		}
		c.logger.Error("unknown error in report api call", logging.Field{Key: "error", Value: err})
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data := responseData(resp.Body)
		c.logger.Error("report api call failed",
			logging.Field{Key: "status", Value: resp.StatusCode},
			logging.Field{Key: "status_text", Value: resp.Status},
			logging.Field{Key: "data", Value: string(data)},
			logging.Field{Key: "url", Value: req.URL})

		msg, ok := serverMessage(data)
		if !ok {
			msg = statusMessage(resp.StatusCode)
		}
		return nil, &APIError{
			Status:   resp.StatusCode,
			Message:  msg,
			Endpoint: endpoint,
			Data:     data,
		}
	}

	c.logger.Info("report api call successful", logging.Field{Key: "status", Value: resp.StatusCode})

	var env Envelope[T]
	env.Raw = json.RawMessage(resp.Body)
	if !isJSONObject(resp.Body) {
		// arrays, bare strings, HTML: no envelope, so no message
		c.logger.Warn("report api response is not a JSON object",
			logging.Field{Key: "endpoint", Value: endpoint},
			logging.Field{Key: "bytes", Value: len(resp.Body)})
		return &env, nil
	}
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		c.logger.Error("unknown error in report api call", logging.Field{Key: "error", Value: err})
		return nil, err
	}
	return &env, nil
}

func isJSONObject(body []byte) bool {
	body = bytes.TrimSpace(body)
	return len(body) > 0 && body[0] == '{'
}

func (c *Client) newRequest(endpoint string, params Params, method Method) (*webclient.Request, error) {
	m := Method(strings.ToUpper(string(method)))
	if m == "" {
		m = MethodGet
	}

	headers := http.Header{}
	headers.Set("Authorization", c.authHeader)
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")

	req := &webclient.Request{
		Method:  string(m),
		URL:     utils.JoinEndpoint(c.baseURL, endpoint),
		Headers: headers,
	}

	switch m {
	case MethodGet:
		q, err := params.Query()
		if err != nil {
			return nil, fmt.Errorf("encode query for %s: %w", endpoint, err)
		}
		if len(q) > 0 {
			req.URL += "?" + q.Encode()
		}
	case MethodPost:
		if params != nil {
			body, err := json.Marshal(params)
			if err != nil {
				return nil, fmt.Errorf("encode body for %s: %w", endpoint, err)
			}
			req.Body = body
		}
	default:
		return nil, fmt.Errorf("unsupported method %q", method)
	}
	return req, nil
}
