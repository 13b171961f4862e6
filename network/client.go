// Package network holds the HTTP clients shared by search providers.
package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/spf13/viper"
)

// Client is the plain client used for APIs that do not care about TLS fingerprints.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 20
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

// Doer is satisfied by *http.Client and by the fingerprinting client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Default returns the client selected by network.spoof_tls.
func Default() Doer {
	if viper.GetBool(key.NetworkSpoofTLS) {
		return Spoofed()
	}
	return Client
}

// Timeout is the per-request timeout from config.
func Timeout() time.Duration {
	seconds := viper.GetInt(key.NetworkTimeout)
	if seconds <= 0 {
		return time.Minute
	}
	return time.Duration(seconds) * time.Second
}

// Response is a fully read HTTP response.
type Response struct {
	Status  int
	Body    string
	Headers http.Header
}

// Fetch performs a request with browser-like default headers and reads the whole body.
// Non-2xx statuses are not errors; callers decide.
func Fetch(ctx context.Context, doer Doer, method, rawURL string, headers map[string]string, body string) (*Response, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &Response{
		Status:  resp.StatusCode,
		Body:    string(data),
		Headers: resp.Header,
	}, nil
}

// Get is Fetch for a GET request that must answer 200.
func Get(ctx context.Context, doer Doer, rawURL string) (string, error) {
	resp, err := Fetch(ctx, doer, http.MethodGet, rawURL, nil, "")
	if err != nil {
		return "", err
	}

	if resp.Status != http.StatusOK {
		return "", fmt.Errorf("GET %s: unexpected status %d", rawURL, resp.Status)
	}

	return resp.Body, nil
}
