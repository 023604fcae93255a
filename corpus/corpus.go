// Package corpus produces datasets for the sort benchmark: word lists read
// from local or remote files, and deterministic generated data.
//
// Files may be compressed (the codec is chosen from the extension or given
// explicitly) and in any charset chardet can recognize. Text is converted to
// NFC-normalized UTF-8 before it is split on white space.
package corpus

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	commonerrors "github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/http/transport"
	"github.com/amp-labs/amp-containers/logger"
	"github.com/amp-labs/amp-containers/should"
)

const defaultMaxBytes = 256 << 20

var (
	ErrUnknownCodec = errors.New("unknown codec")
	ErrInvalidText  = errors.New("text is not valid in any detected charset")
	ErrTooLarge     = commonerrors.Exhausted("corpus exceeds size limit")
	ErrFetch        = errors.New("fetching corpus failed")
)

func unknownCodec(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

func invalidText(charset string) error {
	return fmt.Errorf("%w (tried %s)", ErrInvalidText, charset)
}

type loadOptions struct {
	codec    string
	charset  string
	maxBytes int64
	maxWords int
	client   *http.Client
}

// Option configures Load.
type Option func(*loadOptions)

// WithCodec forces a decompression codec instead of guessing from the name.
func WithCodec(codec string) Option {
	return func(o *loadOptions) {
		o.codec = codec
	}
}

// WithCharset names the input charset (e.g. "iso-8859-1"). Without it the
// input is taken as UTF-8 when valid and detected otherwise.
func WithCharset(label string) Option {
	return func(o *loadOptions) {
		o.charset = label
	}
}

// WithMaxBytes caps the decompressed input size.
func WithMaxBytes(n int64) Option {
	return func(o *loadOptions) {
		o.maxBytes = n
	}
}

// WithMaxWords keeps only the first n words.
func WithMaxWords(n int) Option {
	return func(o *loadOptions) {
		o.maxWords = n
	}
}

// WithHTTPClient sets the client used for http and https sources.
func WithHTTPClient(client *http.Client) Option {
	return func(o *loadOptions) {
		o.client = client
	}
}

// Load reads the words of the corpus at source, a file path or an http(s)
// URL.
func Load(ctx context.Context, source string, opts ...Option) ([]string, error) {
	options := loadOptions{maxBytes: defaultMaxBytes}
	for _, opt := range opts {
		opt(&options)
	}

	rc, name, err := open(ctx, source, options.client)
	if err != nil {
		return nil, err
	}

	defer should.Close(ctx, rc, "closing corpus source")

	codec := options.codec
	if codec == "" {
		codec = codecForName(name)
	}

	r, release, err := decompress(codec, rc)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", source, err)
	}

	defer release()

	data, err := io.ReadAll(io.LimitReader(r, options.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	if int64(len(data)) > options.maxBytes {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrTooLarge, source, options.maxBytes)
	}

	text, used, err := toUTF8(data, options.charset)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source, err)
	}

	words := Tokenize(text, options.maxWords)

	logger.Get(ctx).Debug("corpus loaded",
		"source", source,
		"codec", codec,
		"charset", used,
		"bytes", len(data),
		"words", len(words))

	return words, nil
}

// Tokenize splits text on white space, keeping at most limit words when
// limit is positive.
func Tokenize(text []byte, limit int) []string {
	fields := bytes.Fields(text)
	if limit > 0 && len(fields) > limit {
		fields = fields[:limit]
	}

	words := make([]string, len(fields))
	for i, f := range fields {
		words[i] = string(f)
	}

	return words
}

// open returns the raw stream for source and the name used to guess its
// codec.
func open(ctx context.Context, source string, client *http.Client) (io.ReadCloser, string, error) {
	u, err := url.Parse(source)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return fetch(ctx, u, client)
	}

	f, err := os.Open(source) // #nosec G304
	if err != nil {
		return nil, "", err
	}

	return f, source, nil
}

func fetch(ctx context.Context, u *url.URL, client *http.Client) (io.ReadCloser, string, error) {
	if client == nil {
		client = transport.NewClient(ctx)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", err
	}

	req.Header.Set("Accept-Encoding", "gzip, br, zstd")

	rsp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrFetch, err)
	}

	if rsp.StatusCode != http.StatusOK {
		should.Close(ctx, rsp.Body, "closing error response")

		return nil, "", fmt.Errorf("%w: %s returned %s", ErrFetch, u.Redacted(), rsp.Status)
	}

	return rsp.Body, strings.TrimSuffix(u.Path, "/"), nil
}
