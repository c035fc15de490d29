package coingecko_common

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	// Base URL for the public CoinGecko API
	COINGECKO_PUBLIC_URL = "https://api.coingecko.com"
)

// buildURL safely combines a base URL with a path
func buildURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	trimmedPath := strings.TrimLeft(path, "/")

	return baseURL + "/" + trimmedPath
}

// RequestBuilder implements the Builder pattern for CoinGecko API requests
type RequestBuilder struct {
	baseURL   string
	apiPath   string
	params    map[string]string
	apiKey    string
	userAgent string
	headers   map[string]string
}

// NewRequestBuilder creates a new base request builder for CoinGecko endpoints
func NewRequestBuilder(baseURL, apiPath string) *RequestBuilder {
	rb := &RequestBuilder{
		baseURL:   baseURL,
		apiPath:   apiPath,
		params:    make(map[string]string),
		headers:   make(map[string]string),
		userAgent: "Mozilla/5.0 Price-Proxy",
	}

	rb.headers["Accept"] = "application/json"

	return rb
}

// With adds a custom parameter to the URL query
func (rb *RequestBuilder) With(key, value string) *RequestBuilder {
	rb.params[key] = value
	return rb
}

// WithAPIKey sets the API key, sent as the x-cg-api-key header.
// An empty key leaves the request unauthenticated.
func (rb *RequestBuilder) WithAPIKey(apiKey string) *RequestBuilder {
	rb.apiKey = apiKey
	return rb
}

// WithUserAgent sets the User-Agent header
func (rb *RequestBuilder) WithUserAgent(userAgent string) *RequestBuilder {
	rb.userAgent = userAgent
	return rb
}

// BuildURL builds the complete URL for the request
func (rb *RequestBuilder) BuildURL() string {
	fullPath := buildURL(rb.baseURL, rb.apiPath)

	query := url.Values{}
	for key, value := range rb.params {
		query.Add(key, value)
	}

	finalURL := fullPath
	if queryString := query.Encode(); queryString != "" {
		finalURL = fmt.Sprintf("%s?%s", finalURL, queryString)
	}

	return finalURL
}

// Build creates an http.Request object
func (rb *RequestBuilder) Build() (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, rb.BuildURL(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", rb.userAgent)
	for key, value := range rb.headers {
		req.Header.Set(key, value)
	}
	if rb.apiKey != "" {
		req.Header.Set("x-cg-api-key", rb.apiKey)
	}

	return req, nil
}
