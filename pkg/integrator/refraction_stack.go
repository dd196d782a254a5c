package integrator

// IndexStack records the refractive indices of the media a ray is inside,
// innermost last. The bottom entry is the ambient medium and is never popped.
type IndexStack struct {
	indices []float64
}

// NewIndexStack creates a stack holding only the ambient index
func NewIndexStack(ambient float64) *IndexStack {
	indices := make([]float64, 1, 8)
	indices[0] = ambient
	return &IndexStack{indices: indices}
}

// Push enters a medium
func (s *IndexStack) Push(index float64) {
	s.indices = append(s.indices, index)
}

// Pop leaves the innermost medium. ok is false, and nothing changes, when
// only the ambient entry is left.
func (s *IndexStack) Pop() (index float64, ok bool) {
	if len(s.indices) < 2 {
		return 0, false
	}
	index = s.indices[len(s.indices)-1]
	s.indices = s.indices[:len(s.indices)-1]
	return index, true
}

// Top returns the index of the medium the ray is in
func (s *IndexStack) Top() float64 {
	return s.indices[len(s.indices)-1]
}

// Below returns the index of the medium surrounding the current one, or the
// ambient index when the ray is not inside anything
func (s *IndexStack) Below() float64 {
	if len(s.indices) < 2 {
		return s.indices[0]
	}
	return s.indices[len(s.indices)-2]
}

// Len returns the number of entries, including the ambient one
func (s *IndexStack) Len() int {
	return len(s.indices)
}
