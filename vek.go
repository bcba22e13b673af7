package vek

// Move transfers ownership of the value at p to the caller: it returns *p and
// leaves the zero value of T behind. It is the explicit stand-in for move
// construction in a language without user-defined move semantics; every
// relocation inside this module funnels through it (or through a custom
// Traits.Move, which must obey the same leave-zero-behind contract).
func Move[T any](p *T) T {
	var zero T
	v := *p
	*p = zero
	return v
}

// Swap exchanges the values at a and b.
func Swap[T any](a, b *T) {
	*a, *b = *b, *a
}

// Zero returns the zero value for T.
func Zero[T any]() T {
	var z T
	return z
}

// Ordered constrains type parameters to types with a total order under '<'.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}
