// Package seq provides the declarative iterator steps used by the
// abstraction-using operations: a source, a transform, a limit and a reducer.
package seq

import (
	"iter"
)

// Number is the set of element types Sum can reduce.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Values yields the elements of s in order.
func Values[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Map yields f(v) for every v of src.
func Map[T, U any](src iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range src {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Take yields at most n elements of src. src is not advanced past the n-th element.
func Take[T any](src iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		remaining := n
		for v := range src {
			if !yield(v) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}

// Sum adds every element of src.
func Sum[T Number](src iter.Seq[T]) T {
	var total T
	for v := range src {
		total += v
	}
	return total
}
