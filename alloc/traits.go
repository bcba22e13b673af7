package alloc

import "github.com/npillmayer/vek"

// Traits describe the element-level operations a container needs from its
// value type. Nil function fields get stock behaviour when the traits are
// bound into a Container: plain assignment for Copy, vek.Move for Move,
// zeroing for Destroy and the zero value for Default.
//
// Custom Move implementations must leave a value behind that Destroy
// accepts; relocation destroys moved-from elements.
type Traits[T any] struct {
	Copy    func(T) T  // duplicate a value
	Move    func(*T) T // relocate a value, leaving a disposable one behind
	Destroy func(*T)   // dispose a value
	Default func() T   // construct the default value

	// TrivialConstruct marks types whose zero value needs no construction
	// work. Filling fresh storage with defaults is elided for them.
	TrivialConstruct bool

	// TrivialDestroy marks types that need no disposal. For them assignment
	// over a live element and construction into raw storage are the same
	// operation, and containers collapse the two paths.
	TrivialDestroy bool

	// NoAlias asserts that values handed to insert operations never alias
	// container elements. Inserts may then construct the new element
	// directly into a freshly allocated buffer instead of going through a
	// temporary.
	NoAlias bool
}

// Plain returns the traits of value types without ownership semantics.
// This is the default for containers constructed without explicit traits.
func Plain[T any]() Traits[T] {
	return Traits[T]{
		TrivialConstruct: true,
		TrivialDestroy:   true,
	}
}

// normalized fills in stock behaviour for nil fields.
func (tr Traits[T]) normalized() Traits[T] {
	if tr.Copy == nil {
		tr.Copy = func(x T) T { return x }
	}
	if tr.Move == nil {
		tr.Move = vek.Move[T]
	}
	if tr.Destroy == nil {
		tr.Destroy = func(p *T) { *p = vek.Zero[T]() }
	}
	if tr.Default == nil {
		tr.Default = vek.Zero[T]
	}
	return tr
}
