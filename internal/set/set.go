package set

// Set is a collection of unique elements that remembers first-seen order.
// It is not safe for concurrent use; callers own one set per pass.
type Set[T comparable] interface {
	// Insert adds val and reports whether it was not already present.
	Insert(val T) bool
	// Add inserts every value and returns how many were new.
	Add(vals ...T) int
	Has(val T) bool
	// Values returns the members in first-seen order as a new slice.
	Values() []T
	Len() int
}

func New[T comparable](vals ...T) Set[T] {
	s := WithCapacity[T](len(vals))
	s.Add(vals...)
	return s
}

// WithCapacity returns an empty Set sized for about n members.
func WithCapacity[T comparable](n int) Set[T] {
	if n < 0 {
		n = 0
	}
	return &set[T]{
		index: make(map[T]struct{}, n),
		items: make([]T, 0, n),
	}
}

type set[T comparable] struct {
	index map[T]struct{}
	items []T
}

func (s *set[T]) Insert(val T) bool {
	if _, ok := s.index[val]; ok {
		return false
	}
	s.index[val] = struct{}{}
	s.items = append(s.items, val)
	return true
}

func (s *set[T]) Add(vals ...T) int {
	n := 0
	for _, v := range vals {
		if s.Insert(v) {
			n++
		}
	}
	return n
}

func (s *set[T]) Has(val T) bool {
	_, ok := s.index[val]
	return ok
}

func (s *set[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *set[T]) Len() int {
	return len(s.items)
}
