package ownership

// Relocator is implemented by traits that know how to move a run of values
// from one buffer to another themselves.
type Relocator[T any] interface {
	Relocate(dst, src []T)
}

// trivial is the marker for traits whose values may be moved with a bulk copy.
type trivial interface {
	TriviallyRelocatable() bool
}

// shallow is implemented by traits whose Duplicate is a plain copy. Being
// movable with a bulk copy says nothing about this: an owning handle can be
// moved but never shared.
type shallow interface {
	duplicatesByCopy() bool
}

func duplicatesByCopy[T any](traits Traits[T]) bool {
	s, ok := traits.(shallow)

	return ok && s.duplicatesByCopy()
}

// IsTriviallyRelocatable reports whether values governed by traits can be
// moved into a new buffer with a plain copy, leaving the old buffer as is.
func IsTriviallyRelocatable[T any](traits Traits[T]) bool {
	t, ok := traits.(trivial)

	return ok && t.TriviallyRelocatable()
}

// Relocate moves min(len(dst), len(src)) values from src into dst and returns
// how many were moved.
//
// Traits implementing Relocator do the move themselves. Trivially relocatable
// traits get a bulk copy. Everything else is moved element by element, and
// every vacated source slot is overwritten with the null value so an owned
// resource is reachable from exactly one buffer afterwards. In no case is
// Duplicate or Release called.
func Relocate[T any](traits Traits[T], dst, src []T) int {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]

	if r, ok := traits.(Relocator[T]); ok {
		r.Relocate(dst, src)

		return n
	}

	if IsTriviallyRelocatable(traits) {
		return copy(dst, src)
	}

	null := traits.Null()

	for i := range src {
		dst[i] = src[i]
		src[i] = null
	}

	return n
}
