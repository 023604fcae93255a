package corpus

import (
	"io"
	"path"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec names accepted by WithCodec.
const (
	CodecNone   = "none"
	CodecGzip   = "gzip"
	CodecZstd   = "zstd"
	CodecSnappy = "snappy"
	CodecLZ4    = "lz4"
	CodecBrotli = "brotli"
)

// Codecs lists every supported codec.
func Codecs() []string {
	return []string{CodecNone, CodecGzip, CodecZstd, CodecSnappy, CodecLZ4, CodecBrotli}
}

// codecForName picks a codec from a file name's extension.
func codecForName(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".gz", ".gzip":
		return CodecGzip
	case ".zst", ".zstd":
		return CodecZstd
	case ".sz", ".snappy":
		return CodecSnappy
	case ".lz4":
		return CodecLZ4
	case ".br":
		return CodecBrotli
	default:
		return CodecNone
	}
}

// decompress wraps r in a reader for codec. The returned closer releases the
// decoder only; r itself is left to the caller.
func decompress(codec string, r io.Reader) (io.Reader, func(), error) {
	noop := func() {}

	switch codec {
	case CodecNone, "":
		return r, noop, nil
	case CodecGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, noop, err
		}

		return zr, func() { _ = zr.Close() }, nil
	case CodecZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, noop, err
		}

		return zr, zr.Close, nil
	case CodecSnappy:
		return snappy.NewReader(r), noop, nil
	case CodecLZ4:
		return lz4.NewReader(r), noop, nil
	case CodecBrotli:
		return brotli.NewReader(r), noop, nil
	default:
		return nil, noop, unknownCodec(codec)
	}
}
