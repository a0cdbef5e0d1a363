package fixture

import "zco-bench/wrap"

// Each builder writes the seed at position 0 and then i at position i.

func ints() []int64 {
	v := make([]int64, Len)
	for i := range v {
		v[i] = int64(i)
	}
	return v
}

func (s *Store) buildGens() {
	gens := make([]wrap.Gen[int64, float64], Len)
	ungens := make([]wrap.Ungen, Len)
	for i := range Len {
		gens[i] = wrap.Gen[int64, float64]{T: int64(i), V: float64(i)}
		ungens[i] = wrap.Ungen{T: int64(i), V: float64(i)}
	}
	s.gens, s.ungens = gens, ungens
}

func (s *Store) buildNewtypes() {
	foos := make([]wrap.Foo, Len)
	bars := make([]wrap.Bar, Len)
	rawBars := make([]wrap.Triple, Len)
	for i := range Len {
		t := wrap.Triple{A: int64(i), B: int64(i), C: float32(i)}
		foos[i] = wrap.NewFoo(int64(i))
		bars[i] = wrap.NewBar(t)
		rawBars[i] = t
	}
	s.foos, s.bars = foos, bars
	s.rawFoos, s.rawBars = ints(), rawBars
}

func (s *Store) buildOptions() {
	options := make([]wrap.Option[int64], Len)
	for i := range Len {
		options[i] = wrap.Some(int64(i))
	}
	s.options, s.defaulted = options, ints()
}

func (s *Store) buildResults() {
	results := make([]wrap.Result[int64], Len)
	for i := range Len {
		results[i] = wrap.Ok(int64(i))
	}
	s.results, s.defaultedResults = results, ints()
}
