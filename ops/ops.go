// Package ops defines the six operation pairs. Within a pair both functions
// compute the same sum from the same fixture data; one goes through an
// abstraction, the other is written by hand against plain values.
package ops

import (
	"zco-bench/fixture"
	"zco-bench/seq"
)

const (
	// ComposedTake is how many leading elements composed iteration reads.
	ComposedTake = 5000

	// ComposedOffset is added to each element before summing.
	ComposedOffset = 42
)

// Op is one named operation.
type Op struct {
	Name string
	Fn   func() int64
}

// Names is the fixed order both passes run in.
var Names = []string{
	"basic_iterations",
	"composing_iterators",
	"newtypes",
	"option",
	"result",
	"generics",
}

// UsingAbstraction returns the abstraction-using variants in Names order.
func UsingAbstraction() []Op {
	return []Op{
		{Names[0], BasicIterationUsingZCO},
		{Names[1], ComposedIterationUsingZCO},
		{Names[2], NewtypesUsingZCO},
		{Names[3], OptionUsingZCO},
		{Names[4], ResultUsingZCO},
		{Names[5], GenericsUsingZCO},
	}
}

// HandWritten returns the abstraction-free variants in Names order.
func HandWritten() []Op {
	return []Op{
		{Names[0], BasicIterationWithoutZCO},
		{Names[1], ComposedIterationWithoutZCO},
		{Names[2], NewtypesWithoutZCO},
		{Names[3], OptionWithoutZCO},
		{Names[4], ResultWithoutZCO},
		{Names[5], GenericsWithoutZCO},
	}
}

// op: basic iteration

func BasicIterationUsingZCO() int64 {
	return seq.Sum(seq.Values(fixture.Default().Iteration()))
}

func BasicIterationWithoutZCO() int64 {
	col := fixture.Default().Iteration()
	var sum int64
	for i := 0; i < len(col); i++ {
		sum += col[i]
	}
	return sum
}

// op: composed iteration

func addOffset(v int64) int64 { return v + ComposedOffset }

func ComposedIterationUsingZCO() int64 {
	col := fixture.Default().Iteration()
	return seq.Sum(seq.Take(seq.Map(seq.Values(col), addOffset), ComposedTake))
}

func ComposedIterationWithoutZCO() int64 {
	col := fixture.Default().Iteration()
	var sum int64
	for i := 0; i < ComposedTake; i++ {
		sum += col[i] + ComposedOffset
	}
	return sum
}

// op: newtypes

func NewtypesUsingZCO() int64 {
	store := fixture.Default()
	foos, bars := store.Foos(), store.Bars()
	var sum int64
	for i := 0; i < len(foos); i++ {
		sum += foos[i].Value()
		sum += bars[i].Value().A + bars[i].Value().B + int64(bars[i].Value().C)
	}
	return sum
}

func NewtypesWithoutZCO() int64 {
	store := fixture.Default()
	foos, bars := store.RawFoos(), store.RawBars()
	var sum int64
	for i := 0; i < len(foos); i++ {
		sum += foos[i]
		sum += bars[i].A + bars[i].B + int64(bars[i].C)
	}
	return sum
}

// op: option

func OptionUsingZCO() int64 {
	col := fixture.Default().Options()
	var sum int64
	for i := 0; i < len(col); i++ {
		sum += col[i].UnwrapOr(0)
	}
	return sum
}

func OptionWithoutZCO() int64 {
	col := fixture.Default().Defaulted()
	var sum int64
	for i := 0; i < len(col); i++ {
		sum += col[i]
	}
	return sum
}

// op: result

func ResultUsingZCO() int64 {
	col := fixture.Default().Results()
	var sum int64
	for i := 0; i < len(col); i++ {
		sum += col[i].UnwrapOr(0)
	}
	return sum
}

func ResultWithoutZCO() int64 {
	col := fixture.Default().DefaultedResults()
	var sum int64
	for i := 0; i < len(col); i++ {
		sum += col[i]
	}
	return sum
}

// op: generics

func GenericsUsingZCO() int64 {
	col := fixture.Default().Gens()
	var sum int64
	for i := 0; i < len(col); i++ {
		sum += col[i].T + int64(col[i].V)
	}
	return sum
}

func GenericsWithoutZCO() int64 {
	col := fixture.Default().Ungens()
	var sum int64
	for i := 0; i < len(col); i++ {
		sum += col[i].T + int64(col[i].V)
	}
	return sum
}
