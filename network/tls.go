package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/log"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// spoofed sends requests with a Chrome 120 ClientHello.
// It tries HTTP/2 first and retries over HTTP/1.1 when the h2 round trip fails.
type spoofed struct {
	h2 *http.Client
	h1 *http.Client
}

var (
	spoofedClient *spoofed
	spoofedOnce   sync.Once
)

// Spoofed returns the shared fingerprinting client.
func Spoofed() Doer {
	spoofedOnce.Do(func() {
		timeout := Timeout()
		spoofedClient = &spoofed{
			h2: &http.Client{
				Timeout: timeout,
				Transport: &http2.Transport{
					DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
						return dialChrome(ctx, network, addr, timeout, nil)
					},
				},
			},
			h1: &http.Client{
				Timeout: timeout,
				Transport: &http.Transport{
					DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
						return dialChrome(ctx, network, addr, timeout, []string{"http/1.1"})
					},
				},
			},
		}
	})

	return spoofedClient
}

func (s *spoofed) Do(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return s.h1.Do(req)
	}

	resp, err := s.h2.Do(req)
	if err == nil {
		return resp, nil
	}

	if req.Body != nil && req.GetBody == nil {
		return nil, err
	}

	log.Debugf("h2 request to %s failed, retrying over http/1.1: %s", req.URL.Host, err)

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		if retry.Body, err = req.GetBody(); err != nil {
			return nil, err
		}
	}

	return s.h1.Do(retry)
}

func dialChrome(ctx context.Context, network, addr string, timeout time.Duration, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake with %s: %w", host, err)
	}

	return tlsConn, nil
}
