package compare

import (
	"errors"

	commonerrors "github.com/amp-labs/amp-containers/errors"
)

// Guard converts a precondition panic raised by a comparator into an error.
// It must be deferred directly:
//
//	func sortThings(...) (err error) {
//	    defer compare.Guard(&err)
//	    ...
//	}
//
// Panics that do not carry a precondition error are re-raised untouched.
func Guard(err *error) {
	r := recover()
	if r == nil {
		return
	}

	if e, ok := r.(error); ok && errors.Is(e, commonerrors.ErrPrecondition) {
		*err = e

		return
	}

	panic(r)
}

// Checked runs a single comparison and reports a precondition panic as an
// error instead of unwinding the caller.
func Checked[T any](c Comparator[T], a, b T) (res int, err error) {
	defer Guard(&err)

	return c(a, b), nil
}
