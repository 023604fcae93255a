package compare

import (
	"strings"

	"facette.io/natsort"
	commonerrors "github.com/amp-labs/amp-containers/errors"
	"golang.org/x/text/cases"
)

// ErrNullText is raised when a text comparator is handed null (nil) text.
var ErrNullText = commonerrors.Precondition("null text")

type textOptions struct {
	caseSensitive bool
}

// TextOption configures the text comparators.
type TextOption func(*textOptions)

// CaseSensitive makes the comparator distinguish upper and lower case.
func CaseSensitive() TextOption {
	return func(o *textOptions) {
		o.caseSensitive = true
	}
}

// CaseInsensitive makes the comparator fold ASCII letters before comparing.
func CaseInsensitive() TextOption {
	return func(o *textOptions) {
		o.caseSensitive = false
	}
}

func newTextOptions(opts []TextOption) textOptions {
	options := textOptions{caseSensitive: defaultCaseSensitive}

	for _, opt := range opts {
		opt(&options)
	}

	return options
}

// DefaultCaseSensitive reports the build-time default for text comparison.
// It is false unless the module was built with the text_case_sensitive tag.
func DefaultCaseSensitive() bool {
	return defaultCaseSensitive
}

// Text returns a byte-wise lexicographic comparator for strings.
//
// Comparison is case-insensitive (ASCII letters are folded)
// unless CaseSensitive is passed or the module was built with the
// text_case_sensitive tag. A string that is a prefix of another sorts first.
func Text(opts ...TextOption) Comparator[string] {
	options := newTextOptions(opts)

	return func(a, b string) int {
		return compareText(a, b, options.caseSensitive)
	}
}

// Bytes returns the same order as Text over byte slices.
//
// A nil slice is null text. Comparing it is a precondition violation and the
// comparator panics with ErrNullText; the sorting package turns that panic
// into a returned error. Use CheckedBytes for a non-panicking variant.
func Bytes(opts ...TextOption) Comparator[[]byte] {
	options := newTextOptions(opts)

	return func(a, b []byte) int {
		res, err := checkedBytes(a, b, options)
		if err != nil {
			panic(err)
		}

		return res
	}
}

// CheckedBytes compares two byte slices like Bytes, but reports null text as
// ErrNullText instead of panicking.
func CheckedBytes(a, b []byte, opts ...TextOption) (int, error) {
	return checkedBytes(a, b, newTextOptions(opts))
}

func checkedBytes(a, b []byte, options textOptions) (int, error) {
	if a == nil || b == nil {
		return 0, ErrNullText
	}

	return compareText(a, b, options.caseSensitive), nil
}

// Folded returns a comparator that applies full Unicode case folding before
// comparing, so "STRASSE" and "straße" are equivalent.
func Folded() Comparator[string] {
	return func(a, b string) int {
		// A Caser is stateful, so each comparison gets its own.
		return strings.Compare(cases.Fold().String(a), cases.Fold().String(b))
	}
}

// Natural returns a comparator that orders embedded digit runs by numeric
// value, e.g. "file2" before "file10".
func Natural() Comparator[string] {
	return Less(natsort.Compare)
}

func compareText[S ~string | ~[]byte](a, b S, caseSensitive bool) int {
	n := min(len(a), len(b))

	for i := range n {
		ca, cb := a[i], b[i]

		if !caseSensitive {
			ca, cb = lowerASCII(ca), lowerASCII(cb)
		}

		if ca < cb {
			return -1
		}

		if ca > cb {
			return 1
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
