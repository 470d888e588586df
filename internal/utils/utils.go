package utils

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

var (
	ErrEmptyURL          = errors.New("empty url")
	ErrMissingHost       = errors.New("missing host")
	ErrUnsupportedScheme = errors.New("unsupported scheme")
)

// NormalizeBaseURL returns a canonical form of an API base URL: lower-case
// scheme and host, IDN host converted to punycode, default port dropped,
// fragment removed and no trailing slash. The path is kept as-is so the
// base can point below the server root.
//
// Examples:
//
//	"HTTPS://Example.com/api/method/"  → "https://example.com/api/method"
//	"http://bücher.example:80"         → "http://xn--bcher-kva.example"
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", &url.Error{Op: "parse", URL: raw, Err: ErrEmptyURL}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &url.Error{Op: "parse", URL: raw, Err: ErrUnsupportedScheme}
	}
	if u.Host == "" {
		return "", &url.Error{Op: "parse", URL: raw, Err: ErrMissingHost}
	}

	host := strings.ToLower(u.Hostname())
	if puny, err := idna.Lookup.ToASCII(host); err == nil {
		host = puny
	}

	port := u.Port()
	switch {
	case (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443"):
		u.Host = host
	case port != "":
		u.Host = net.JoinHostPort(host, port)
	default:
		u.Host = host
	}

	u.Fragment = ""
	u.RawFragment = ""
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""

	return u.String(), nil
}

// JoinEndpoint appends a logical endpoint name to a base URL with exactly
// one slash between them.
//
// Examples:
//
//	JoinEndpoint("https://x.io/api/method", "customreport.reportapi.get_first_report")
//	    → "https://x.io/api/method/customreport.reportapi.get_first_report"
func JoinEndpoint(base, endpoint string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), strings.TrimLeft(endpoint, "/"))
}
