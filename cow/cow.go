// Package cow provides a shared, copy-on-write smart pointer.
//
// A [Pointer] owns, or shares ownership of, exactly one cell holding a value.
// Sharing is explicit: Clone and Assign make two pointers reference the same
// cell without copying anything. The cell lives as long as its longest-lived
// owner; when the last owner calls Reset the value is released through the
// pointer's ownership traits.
//
// Reading through Get never copies. Mutable first checks whether the cell is
// shared; if it is, the value is duplicated through the traits and this pointer
// is moved to a private cell holding the duplicate before the mutable
// reference is handed out. Other owners keep observing the original value.
//
// # Concurrency
//
// The reference count itself is atomic, so distinct pointers sharing a cell
// may be cloned and reset from different goroutines. The check-then-detach in
// Mutable is not a critical section, though: a single Pointer must only be
// used by one goroutine at a time, and a cell must have at most one writer
// without external synchronization.
//
// Pointers must not be copied by value; use Clone.
package cow

import (
	"fmt"

	commonerrors "github.com/amp-labs/amp-containers/errors"
	"github.com/amp-labs/amp-containers/ownership"
	"go.uber.org/atomic"
)

// ErrUnbound is returned when a pointer with no cell is dereferenced.
var ErrUnbound = commonerrors.Precondition("pointer is not bound to a value")

type cell[T any] struct {
	value T
	refs  *atomic.Int64
}

func newCell[T any](value T) *cell[T] {
	cellsCreated.Inc()

	return &cell[T]{
		value: value,
		refs:  atomic.NewInt64(1),
	}
}

// Pointer is a copy-on-write smart pointer. The zero value is an unbound
// pointer with value-semantics traits.
type Pointer[T any] struct {
	cell   *cell[T]
	traits ownership.Traits[T]
}

// Option configures a Pointer.
type Option[T any] func(*Pointer[T])

// WithTraits sets the ownership traits used to duplicate and release the
// pointee. The default is ownership.Value.
func WithTraits[T any](traits ownership.Traits[T]) Option[T] {
	return func(p *Pointer[T]) {
		p.traits = traits
	}
}

// New makes the returned pointer the sole owner of a new cell holding value.
// The pointer takes ownership of value: it will be released when the last
// owner lets go of the cell.
func New[T any](value T, opts ...Option[T]) *Pointer[T] {
	p := Empty(opts...)
	p.cell = newCell(value)

	return p
}

// Empty returns an unbound pointer. Dereferencing it fails with ErrUnbound
// until Set or Assign binds it.
func Empty[T any](opts ...Option[T]) *Pointer[T] {
	p := &Pointer[T]{}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Pointer[T]) traitsOrDefault() ownership.Traits[T] { //nolint:ireturn
	if p.traits == nil {
		return ownership.Value[T]()
	}

	return p.traits
}

// Traits returns the ownership traits bound to this pointer.
func (p *Pointer[T]) Traits() ownership.Traits[T] { //nolint:ireturn
	return p.traitsOrDefault()
}

// Clone returns a new pointer sharing this pointer's cell. Nothing is
// duplicated. Cloning an unbound pointer yields another unbound pointer.
func (p *Pointer[T]) Clone() *Pointer[T] {
	clone := &Pointer[T]{
		cell:   p.cell,
		traits: p.traits,
	}

	if clone.cell != nil {
		clone.cell.refs.Inc()
	}

	return clone
}

// Assign drops this pointer's current reference and makes it share other's
// cell (and traits). Assigning a pointer to itself, or to a pointer already
// sharing its cell, changes nothing.
func (p *Pointer[T]) Assign(other *Pointer[T]) {
	if other == nil {
		p.Reset()

		return
	}

	if p.cell == other.cell {
		p.traits = other.traits

		return
	}

	if other.cell != nil {
		other.cell.refs.Inc()
	}

	p.Reset()

	p.cell = other.cell
	p.traits = other.traits
}

// Set drops the current reference and binds the pointer to a new private cell
// holding value.
func (p *Pointer[T]) Set(value T) {
	p.Reset()
	p.cell = newCell(value)
}

// Get returns the pointee. It never duplicates, whether or not the cell is
// shared. The returned value is a shallow copy: for owning types it aliases
// the cell's resource and must not be released or modified by the caller.
func (p *Pointer[T]) Get() (T, error) {
	if p.cell == nil {
		return p.traitsOrDefault().Null(), ErrUnbound
	}

	return p.cell.value, nil
}

// Mutable returns a pointer through which the pointee may be modified.
//
// If the cell is shared with another owner, the value is first duplicated
// through the traits and this pointer is moved to a new private cell; the
// other owners keep the original. If duplication fails the pointer keeps
// sharing the original cell and the error is returned.
func (p *Pointer[T]) Mutable() (*T, error) {
	if p.cell == nil {
		return nil, ErrUnbound
	}

	if p.cell.refs.Load() > 1 {
		if err := p.detach(); err != nil {
			return nil, err
		}
	}

	return &p.cell.value, nil
}

func (p *Pointer[T]) detach() error {
	traits := p.traitsOrDefault()

	dup, err := traits.Duplicate(p.cell.value)
	if err != nil {
		duplicationErrors.Inc()

		return fmt.Errorf("detaching shared value: %w", err)
	}

	duplications.Inc()

	shared := p.cell
	p.cell = newCell(dup)

	// Another owner may have let go since the uniqueness check.
	if shared.refs.Dec() == 0 {
		traits.Release(&shared.value)
		cellsReleased.Inc()
	}

	return nil
}

// Update applies f to the pointee through Mutable.
func (p *Pointer[T]) Update(f func(value *T)) error {
	ptr, err := p.Mutable()
	if err != nil {
		return err
	}

	f(ptr)

	return nil
}

// Reset drops this pointer's reference. If it was the last owner, the value
// is released through the traits. The pointer is unbound afterwards; calling
// Reset on an unbound pointer does nothing.
func (p *Pointer[T]) Reset() {
	c := p.cell
	if c == nil {
		return
	}

	p.cell = nil

	if c.refs.Dec() == 0 {
		p.traitsOrDefault().Release(&c.value)
		cellsReleased.Inc()
	}
}

// Equal reports whether both pointers reference the same cell. It compares
// identity, not values: two pointers holding separately duplicated but equal
// values are not Equal. Two unbound pointers are Equal.
func (p *Pointer[T]) Equal(other *Pointer[T]) bool {
	if other == nil {
		return p.cell == nil
	}

	return p.cell == other.cell
}

// IsBound reports whether the pointer references a cell.
func (p *Pointer[T]) IsBound() bool {
	return p.cell != nil
}

// IsShared reports whether another pointer references the same cell.
func (p *Pointer[T]) IsShared() bool {
	return p.UseCount() > 1
}

// UseCount returns the number of pointers sharing the cell, or 0 when unbound.
func (p *Pointer[T]) UseCount() int64 {
	if p.cell == nil {
		return 0
	}

	return p.cell.refs.Load()
}
