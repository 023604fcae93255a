package corpus

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

// toUTF8 decodes data from label, or from the detected charset when label is
// empty or unknown, and returns NFC-normalized UTF-8 along with the charset
// that was used.
func toUTF8(data []byte, label string) ([]byte, string, error) {
	if label == "" && utf8.Valid(data) {
		return norm.NFC.Bytes(data), "utf-8", nil
	}

	reader, used := utf8Reader(data, label)

	decoded, err := io.ReadAll(reader)
	if err != nil {
		return nil, used, err
	}

	if !utf8.Valid(decoded) {
		return nil, used, invalidText(used)
	}

	return norm.NFC.Bytes(decoded), used, nil
}

// utf8Reader tries the label first, then chardet's best guess, then gives
// up and passes the bytes through.
func utf8Reader(data []byte, label string) (io.Reader, string) {
	if label != "" {
		if r, err := charset.NewReaderLabel(label, bytes.NewReader(data)); err == nil {
			return r, label
		}
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return bytes.NewReader(data), "utf-8"
	}

	r, err := charset.NewReaderLabel(best.Charset, bytes.NewReader(data))
	if err != nil {
		return bytes.NewReader(data), "utf-8"
	}

	return r, best.Charset
}
