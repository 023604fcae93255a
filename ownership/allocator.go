package ownership

import (
	"fmt"

	commonerrors "github.com/amp-labs/amp-containers/errors"
	"go.uber.org/atomic"
)

// ErrAllocationFailed is returned when an Allocator cannot satisfy a request.
var ErrAllocationFailed = commonerrors.Exhausted("allocation failed")

// Allocator is the byte-buffer facility behind owning text. Allocate may fail
// and callers must check the error.
type Allocator interface {
	Allocate(n int) ([]byte, error)
	Free(buf []byte)
}

type heapAllocator struct{}

// Heap allocates from the Go heap. Free is a no-op; the garbage collector
// reclaims released buffers.
var Heap Allocator = heapAllocator{} //nolint:gochecknoglobals

func (heapAllocator) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocationFailed, n)
	}

	return make([]byte, n), nil
}

func (heapAllocator) Free([]byte) {}

// Budget is an Allocator that hands out at most a fixed number of bytes at a
// time. Allocations beyond the budget fail with ErrAllocationFailed; freeing a
// buffer returns its capacity to the budget. It is safe for concurrent use.
type Budget struct {
	limit  int64
	inUse  *atomic.Int64
	allocs *atomic.Int64
	frees  *atomic.Int64
}

// NewBudget creates an allocator limited to limit bytes outstanding.
func NewBudget(limit int64) *Budget {
	return &Budget{
		limit:  limit,
		inUse:  atomic.NewInt64(0),
		allocs: atomic.NewInt64(0),
		frees:  atomic.NewInt64(0),
	}
}

func (b *Budget) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative size %d", ErrAllocationFailed, n)
	}

	size := int64(n)

	for {
		cur := b.inUse.Load()
		if cur+size > b.limit {
			return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use",
				ErrAllocationFailed, n, cur, b.limit)
		}

		if b.inUse.CompareAndSwap(cur, cur+size) {
			break
		}
	}

	b.allocs.Inc()

	return make([]byte, n), nil
}

func (b *Budget) Free(buf []byte) {
	if buf == nil {
		return
	}

	b.inUse.Sub(int64(cap(buf)))
	b.frees.Inc()
}

// InUse returns the number of bytes currently allocated.
func (b *Budget) InUse() int64 {
	return b.inUse.Load()
}

// Limit returns the configured budget.
func (b *Budget) Limit() int64 {
	return b.limit
}

// Outstanding returns allocations minus frees.
func (b *Budget) Outstanding() int64 {
	return b.allocs.Load() - b.frees.Load()
}
