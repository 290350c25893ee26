package chatalert

import (
	"fmt"
	"net/url"
	"strconv"
)

type Scheme string

const (
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
)

func (scheme Scheme) DefaultPort() int {
	switch scheme {
	case SchemeHTTPS:
		return 443
	case SchemeHTTP:
		return 80
	default:
		return 80
	}
}

// Endpoint is a validated webhook target URL.
type Endpoint struct {
	scheme   Scheme
	host     string
	port     int
	path     string
	rawQuery string
}

// ParseEndpoint validates a webhook URL. Only http and https endpoints
// with a non-empty host are accepted.
func ParseEndpoint(rawURL string) (*Endpoint, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, &EndpointParseError{"invalid url"}
	}

	var scheme Scheme
	switch parsedURL.Scheme {
	case "http":
		scheme = SchemeHTTP
	case "https":
		scheme = SchemeHTTPS
	default:
		return nil, &EndpointParseError{"invalid scheme"}
	}

	host := parsedURL.Hostname()
	if host == "" {
		return nil, &EndpointParseError{"empty host"}
	}

	var port int
	if parsedURL.Port() != "" {
		parsedPort, err := strconv.Atoi(parsedURL.Port())
		if err != nil {
			return nil, &EndpointParseError{"invalid port"}
		}
		port = parsedPort
	}

	return &Endpoint{
		scheme:   scheme,
		host:     host,
		port:     port,
		path:     parsedURL.Path,
		rawQuery: parsedURL.RawQuery,
	}, nil
}

func (endpoint Endpoint) Port() int {
	if endpoint.port == 0 {
		return endpoint.scheme.DefaultPort()
	}
	return endpoint.port
}

func (endpoint Endpoint) String() string {
	var rawURL string
	rawURL += fmt.Sprintf("%s://%s", endpoint.scheme, endpoint.host)
	if endpoint.Port() != endpoint.scheme.DefaultPort() {
		rawURL += fmt.Sprintf(":%d", endpoint.Port())
	}
	rawURL += endpoint.path
	if endpoint.rawQuery != "" {
		rawURL += "?" + endpoint.rawQuery
	}
	return rawURL
}
