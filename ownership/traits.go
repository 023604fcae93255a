package ownership

import (
	"reflect"
)

// Traits is the per-type descriptor for duplicate / release / null-sentinel.
type Traits[T any] interface {
	// Duplicate returns a value that shares no owned resource with v. A
	// failed duplication returns the null value and an error wrapping
	// ErrAllocationFailed; it never returns a partial copy.
	Duplicate(v T) (T, error)

	// Release frees anything v owns and resets *v to the null value.
	// Releasing a null value is a no-op.
	Release(v *T)

	// Null returns the "absent" sentinel. It has no side effects.
	Null() T

	// IsNull reports whether v is the sentinel.
	IsNull(v T) bool
}

// NullValue returns the null sentinel of a self-contained type, which is its
// zero value.
//
// Example:
//
//	ownership.NullValue[int]()      // 0
//	ownership.NullValue[string]()   // ""
//	ownership.NullValue[*Text]()    // nil
func NullValue[T any]() T {
	var zeroVal T

	return zeroVal
}

// isZero reports whether value is the zero value for type T. Unlike
// reflect.DeepEqual it also works for types that are not comparable.
func isZero[T any](value T) bool {
	return reflect.ValueOf(&value).Elem().IsZero()
}

type valueTraits[T any] struct{}

// Value returns the traits for types that own nothing external: duplication
// is a plain copy, release does nothing and null is the zero value.
func Value[T any]() Traits[T] { //nolint:ireturn
	return valueTraits[T]{}
}

func (valueTraits[T]) Duplicate(v T) (T, error) {
	return v, nil
}

func (valueTraits[T]) Release(*T) {}

func (valueTraits[T]) Null() T {
	return NullValue[T]()
}

func (valueTraits[T]) IsNull(v T) bool {
	return isZero(v)
}

func (valueTraits[T]) TriviallyRelocatable() bool {
	return true
}

func (valueTraits[T]) duplicatesByCopy() bool {
	return true
}

// Funcs is a traits descriptor assembled from plain functions. Any nil field
// falls back to value semantics, so a type that only owns a resource needs
// nothing more than DuplicateFunc and ReleaseFunc.
//
// Example:
//
//	fileTraits := ownership.Funcs[*os.File]{
//	    DuplicateFunc: reopen,
//	    ReleaseFunc:   func(f **os.File) { _ = (*f).Close() },
//	}
type Funcs[T any] struct {
	DuplicateFunc func(T) (T, error)

	// ReleaseFunc frees the resource. It is never called with a null value
	// and does not need to reset *v; Release does that afterwards.
	ReleaseFunc func(v *T)

	NullFunc   func() T
	IsNullFunc func(T) bool

	// Trivial marks T as safe to relocate with a bulk copy.
	Trivial bool
}

var _ Traits[int] = Funcs[int]{}

func (f Funcs[T]) Duplicate(v T) (T, error) {
	if f.DuplicateFunc == nil {
		return v, nil
	}

	if f.IsNull(v) {
		return f.Null(), nil
	}

	dup, err := f.DuplicateFunc(v)
	if err != nil {
		return f.Null(), err
	}

	return dup, nil
}

func (f Funcs[T]) Release(v *T) {
	if v == nil || f.IsNull(*v) {
		return
	}

	if f.ReleaseFunc != nil {
		f.ReleaseFunc(v)
	}

	*v = f.Null()
}

func (f Funcs[T]) Null() T {
	if f.NullFunc != nil {
		return f.NullFunc()
	}

	return NullValue[T]()
}

func (f Funcs[T]) IsNull(v T) bool {
	if f.IsNullFunc != nil {
		return f.IsNullFunc(v)
	}

	return isZero(v)
}

func (f Funcs[T]) TriviallyRelocatable() bool {
	return f.Trivial
}

func (f Funcs[T]) duplicatesByCopy() bool {
	return f.DuplicateFunc == nil
}
