package transport

import (
	"io"
	"net/http"

	commonerrors "github.com/amp-labs/amp-containers/errors"
	"github.com/fereidani/httpdecompressor"
)

// NewDecompressor wraps roundTripper so response bodies sent with a
// Content-Encoding (gzip, deflate, br, zstd) arrive decoded.
func NewDecompressor(roundTripper http.RoundTripper) http.RoundTripper {
	if roundTripper == nil {
		roundTripper = http.DefaultTransport
	}

	return &decompressor{roundTripper: roundTripper}
}

type decompressor struct {
	roundTripper http.RoundTripper
}

var _ http.RoundTripper = (*decompressor)(nil)

func (d *decompressor) RoundTrip(request *http.Request) (*http.Response, error) {
	rsp, err := d.roundTripper.RoundTrip(request)
	if err != nil {
		return rsp, err
	}

	origBody := rsp.Body

	bodyReader, err := httpdecompressor.Reader(rsp)
	if err != nil {
		_ = origBody.Close()

		return nil, err
	}

	if bodyReader == origBody {
		return rsp, nil
	}

	rsp.Body = &decodedBody{Reader: bodyReader, closers: []io.Closer{bodyReader, origBody}}
	rsp.Header.Del("Content-Encoding")
	rsp.Header.Del("Content-Length")
	rsp.ContentLength = -1

	return rsp, nil
}

// decodedBody closes the decoder before the connection body.
type decodedBody struct {
	io.Reader

	closers []io.Closer
}

func (b *decodedBody) Close() error {
	errs := &commonerrors.Collection{}

	for _, c := range b.closers {
		errs.Add(c.Close())
	}

	return errs.GetError()
}
