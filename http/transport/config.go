package transport

import (
	"context"
	"time"

	"github.com/amp-labs/amp-containers/envutil"
)

const (
	defaultIdleConnTimeout      = 90 * time.Second
	defaultMaxIdleConns         = 16
	defaultTLSHandshakeTimeout  = 10 * time.Second
	defaultTransportDialTimeout = 30 * time.Second
	defaultKeepAlive            = 30 * time.Second
	defaultRequestTimeout       = 2 * time.Minute
)

type Option func(*config)

type config struct {
	DisableConnectionPooling bool
	EnableDNSCache           bool
	DisableDecompression     bool
}

// DisableConnectionPooling turns off keep-alive.
func DisableConnectionPooling(c *config) {
	c.DisableConnectionPooling = true
}

// EnableDNSCache resolves hosts through a shared caching resolver.
func EnableDNSCache(c *config) {
	c.EnableDNSCache = true
}

// DisableDecompression leaves Content-Encoding bodies untouched.
func DisableDecompression(c *config) {
	c.DisableDecompression = true
}

func readOptions(ctx context.Context, opts ...Option) *config {
	cfg := &config{
		EnableDNSCache: envutil.Bool(ctx, "HTTP_TRANSPORT_DNS_CACHE",
			envutil.Default(true)).ValueOrElse(true),
	}

	for _, c := range opts {
		if c != nil {
			c(cfg)
		}
	}

	return cfg
}
