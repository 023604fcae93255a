package ownership

type sliceTraits[E any] struct {
	elem Traits[E]
}

// Slice lifts element traits to slices of that element. Duplicating a slice
// allocates a new backing array and duplicates every element through elem;
// releasing it releases every element. The null slice is nil.
//
// A duplication that fails halfway releases the elements it already copied,
// so callers never observe a partial slice.
func Slice[E any](elem Traits[E]) Traits[[]E] { //nolint:ireturn
	if elem == nil {
		elem = Value[E]()
	}

	return sliceTraits[E]{elem: elem}
}

func (s sliceTraits[E]) Duplicate(v []E) ([]E, error) {
	if v == nil {
		return nil, nil
	}

	out := make([]E, len(v))

	if duplicatesByCopy(s.elem) {
		copy(out, v)

		return out, nil
	}

	for i := range v {
		dup, err := s.elem.Duplicate(v[i])
		if err != nil {
			for j := range i {
				s.elem.Release(&out[j])
			}

			return nil, err
		}

		out[i] = dup
	}

	return out, nil
}

func (s sliceTraits[E]) Release(v *[]E) {
	if v == nil || *v == nil {
		return
	}

	for i := range *v {
		s.elem.Release(&(*v)[i])
	}

	*v = nil
}

func (s sliceTraits[E]) Null() []E {
	return nil
}

func (s sliceTraits[E]) IsNull(v []E) bool {
	return v == nil
}

// A slice header moves its backing array along with it.
func (s sliceTraits[E]) TriviallyRelocatable() bool {
	return true
}
