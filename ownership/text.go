package ownership

import (
	"fmt"
)

// Text is an owning text buffer. A *Text handle owns its bytes: copying the
// handle aliases the buffer, while TextTraits.Duplicate produces an
// independent buffer. A nil *Text is null text.
type Text struct {
	data     []byte
	alloc    Allocator
	released bool
}

// NewText copies s into a heap-allocated Text.
func NewText(s string) *Text {
	t, err := NewTextWith(Heap, s)
	if err != nil {
		// The heap allocator only fails on negative sizes.
		panic(err)
	}

	return t
}

// NewTextWith copies s into a Text allocated from alloc.
func NewTextWith(alloc Allocator, s string) (*Text, error) {
	if alloc == nil {
		alloc = Heap
	}

	buf, err := alloc.Allocate(len(s))
	if err != nil {
		return nil, err
	}

	copy(buf, s)

	return &Text{data: buf, alloc: alloc}, nil
}

// String returns the content. Null or released text yields "".
func (t *Text) String() string {
	if t == nil {
		return ""
	}

	return string(t.data)
}

// Bytes returns a view of the owned buffer. The view is only valid until the
// text is released or modified.
func (t *Text) Bytes() []byte {
	if t == nil {
		return nil
	}

	return t.data
}

// Len returns the number of bytes held.
func (t *Text) Len() int {
	if t == nil {
		return 0
	}

	return len(t.data)
}

// Released reports whether the buffer has been freed.
func (t *Text) Released() bool {
	return t == nil || t.released
}

// Append grows the text by s. The buffer is reallocated through the text's
// allocator; on failure the text is left unchanged.
func (t *Text) Append(s string) error {
	if t.Released() {
		return fmt.Errorf("%w: append to released text", ErrAllocationFailed)
	}

	buf, err := t.allocator().Allocate(len(t.data) + len(s))
	if err != nil {
		return err
	}

	n := copy(buf, t.data)
	copy(buf[n:], s)

	t.allocator().Free(t.data)
	t.data = buf

	return nil
}

func (t *Text) allocator() Allocator {
	if t.alloc == nil {
		return Heap
	}

	return t.alloc
}

func (t *Text) free() {
	if t == nil || t.released {
		return
	}

	t.allocator().Free(t.data)
	t.data = nil
	t.released = true
}

// TextTraits governs *Text values. The zero value allocates duplicates from
// the heap; set Alloc to route them through another allocator.
type TextTraits struct {
	Alloc Allocator
}

var _ Traits[*Text] = TextTraits{}

func (tt TextTraits) allocator() Allocator {
	if tt.Alloc == nil {
		return Heap
	}

	return tt.Alloc
}

// Duplicate allocates a new buffer and copies v's bytes into it. Null or
// released text duplicates to null.
func (tt TextTraits) Duplicate(v *Text) (*Text, error) {
	if v.Released() {
		return nil, nil
	}

	dup, err := NewTextWith(tt.allocator(), string(v.data))
	if err != nil {
		return nil, fmt.Errorf("duplicating %d bytes of text: %w", len(v.data), err)
	}

	return dup, nil
}

// Release frees the buffer behind *v and sets *v to nil. Any other handle
// aliasing the same Text observes it as released.
func (tt TextTraits) Release(v **Text) {
	if v == nil || *v == nil {
		return
	}

	(*v).free()
	*v = nil
}

func (TextTraits) Null() *Text {
	return nil
}

func (TextTraits) IsNull(v *Text) bool {
	return v.Released()
}

// TriviallyRelocatable is false: a bulk copy would leave the handle reachable
// from the abandoned buffer too.
func (TextTraits) TriviallyRelocatable() bool {
	return false
}
