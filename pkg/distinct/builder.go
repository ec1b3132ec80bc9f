package distinct

import "golang.org/x/exp/constraints"

// Builder is the entry point of the fluent API, returned by From().
type Builder[T constraints.Ordered] struct {
	input   []T
	require bool
}

func From[T constraints.Ordered](in []T) *Builder[T] {
	return &Builder[T]{input: in}
}

// RequireInput makes Normalize fail with an *InputError when the input is
// missing or empty instead of returning an empty result.
func (b *Builder[T]) RequireInput() *Builder[T] {
	b.require = true
	return b
}

func (b *Builder[T]) Normalize() ([]T, error) {
	if b.require {
		if err := Check(b.input); err != nil {
			return nil, err
		}
	}
	return Normalize(b.input), nil
}

func (b *Builder[T]) MustNormalize() []T {
	out, err := b.Normalize()
	if err != nil {
		panic(err)
	}
	return out
}
