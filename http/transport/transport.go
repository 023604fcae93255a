// Package transport builds the HTTP client used to fetch remote corpora.
//
// Environment variables:
//
//   - HTTP_TRANSPORT_DNS_CACHE: cache DNS lookups (default: true)
//   - HTTP_TRANSPORT_MAX_IDLE_CONNS: maximum idle connections (default: 16)
//   - HTTP_TRANSPORT_IDLE_CONN_TIMEOUT: idle connection timeout (default: 90s)
//   - HTTP_TRANSPORT_TLS_HANDSHAKE_TIMEOUT: TLS handshake timeout (default: 10s)
//   - HTTP_TRANSPORT_DIAL_TIMEOUT: connection dial timeout (default: 30s)
//   - HTTP_TRANSPORT_DIAL_KEEPALIVE: TCP keep-alive (default: 30s)
//   - HTTP_CLIENT_TIMEOUT: whole-request timeout (default: 2m)
package transport

import (
	"context"
	"net"
	"net/http"

	"github.com/amp-labs/amp-containers/envutil"
)

// New returns an http.Transport configured from the environment and opts.
func New(ctx context.Context, opts ...Option) *http.Transport {
	return create(ctx, readOptions(ctx, opts...))
}

func create(ctx context.Context, cfg *config) *http.Transport {
	maxIdleConns := envutil.Int[int](ctx, "HTTP_TRANSPORT_MAX_IDLE_CONNS",
		envutil.Default(defaultMaxIdleConns)).
		ValueOrElse(defaultMaxIdleConns)

	idleConnTimeout := envutil.Duration(ctx, "HTTP_TRANSPORT_IDLE_CONN_TIMEOUT",
		envutil.Default(defaultIdleConnTimeout)).
		ValueOrElse(defaultIdleConnTimeout)

	tlsHandshakeTimeout := envutil.Duration(ctx, "HTTP_TRANSPORT_TLS_HANDSHAKE_TIMEOUT",
		envutil.Default(defaultTLSHandshakeTimeout)).
		ValueOrElse(defaultTLSHandshakeTimeout)

	dialTimeout := envutil.Duration(ctx, "HTTP_TRANSPORT_DIAL_TIMEOUT",
		envutil.Default(defaultTransportDialTimeout)).
		ValueOrElse(defaultTransportDialTimeout)

	keepAlive := envutil.Duration(ctx, "HTTP_TRANSPORT_DIAL_KEEPALIVE",
		envutil.Default(defaultKeepAlive)).
		ValueOrElse(defaultKeepAlive)

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dialTimeout,
			KeepAlive: keepAlive,
		}).DialContext,
		MaxIdleConns:        maxIdleConns,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: tlsHandshakeTimeout,
		// Decoding is left to the decompressor so every encoding is handled
		// the same way.
		DisableCompression: true,
	}

	if cfg.DisableConnectionPooling {
		transport.DisableKeepAlives = true
	}

	if cfg.EnableDNSCache {
		useDNSCacheDialer(transport, dialTimeout, keepAlive)
	}

	return transport
}

// NewClient returns an http.Client over New(ctx, opts...), decoding
// compressed responses unless DisableDecompression is given.
func NewClient(ctx context.Context, opts ...Option) *http.Client {
	cfg := readOptions(ctx, opts...)

	var rt http.RoundTripper = create(ctx, cfg)

	if !cfg.DisableDecompression {
		rt = NewDecompressor(rt)
	}

	return &http.Client{
		Transport: rt,
		Timeout: envutil.Duration(ctx, "HTTP_CLIENT_TIMEOUT",
			envutil.Default(defaultRequestTimeout)).ValueOrElse(defaultRequestTimeout),
	}
}
