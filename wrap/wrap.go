// Package wrap holds the abstractions whose cost the harness measures.
// Each type has a plain counterpart carrying the same data without the wrapper.
package wrap

// Integer is any signed integer kind.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float is any floating-point kind.
type Float interface {
	~float32 | ~float64
}

// Gen is a generic two-field container.
type Gen[A Integer, B Float] struct {
	T A
	V B
}

// F sums both fields, truncating the float.
func (g Gen[A, B]) F() int64 {
	return int64(g.T) + int64(g.V)
}

// Ungen is the concrete equivalent of Gen[int64, float64].
type Ungen struct {
	T int64
	V float64
}

// F sums both fields, truncating the float.
func (u Ungen) F() int64 {
	return u.T + int64(u.V)
}

// Foo wraps a single integer.
type Foo struct {
	v int64
}

func NewFoo(v int64) Foo { return Foo{v: v} }

func (f Foo) Value() int64 { return f.v }

// Triple is the bare tuple that Bar wraps.
type Triple struct {
	A int64
	B int64
	C float32
}

// Bar wraps a whole Triple as one value.
type Bar struct {
	t Triple
}

func NewBar(t Triple) Bar { return Bar{t: t} }

func (b Bar) Value() Triple { return b.t }
