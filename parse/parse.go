/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package parse provides small composable parsers over strings.
//
// A Parser consumes a prefix of its input and returns the unconsumed
// remainder together with the parsed value. Parsers are combined with
// ordered alternation (Alt), sequencing (PairOf, Preceded, Terminated,
// SeparatedPair), repetition (Many0, Many1, ManyMN, Count) and mapping
// (Map, MapRes, Recognize). Every failure is a *Error that accumulates one
// entry per combinator it unwinds through; Context adds named frames.
//
// The input is always complete: running out of input is an ordinary
// mismatch, never a request for more data. Values that are substrings of
// the input share its memory.
//
// Parsers built here hold no mutable state and may be shared between
// goroutines.
package parse

// Parser consumes a prefix of input. On success it returns the remainder and
// the value; on failure it returns a *Error and the remainder is undefined.
type Parser[O any] func(input string) (string, O, error)

// Pair holds the values of two parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Alt tries each parser in order from the same input and returns the first
// success. When all fail, the last failure is kept and an Alt entry is added.
func Alt[O any](parsers ...Parser[O]) Parser[O] {
	return func(input string) (string, O, error) {
		var (
			zero O
			last error
		)
		for _, p := range parsers {
			rest, v, err := p(input)
			if err == nil {
				return rest, v, nil
			}
			last = err
		}
		if last == nil {
			return "", zero, NewError(input, KindAlt)
		}
		return "", zero, wrap(last, input).Append(input, KindAlt)
	}
}

// Opt makes p optional. A failure of p yields nil and consumes nothing.
func Opt[O any](p Parser[O]) Parser[*O] {
	return func(input string) (string, *O, error) {
		rest, v, err := p(input)
		if err != nil {
			return input, nil, nil
		}
		return rest, &v, nil
	}
}

// Map applies f to the value of p.
func Map[I, O any](p Parser[I], f func(I) O) Parser[O] {
	return func(input string) (string, O, error) {
		rest, v, err := p(input)
		if err != nil {
			var zero O
			return "", zero, err
		}
		return rest, f(v), nil
	}
}

// MapRes applies the fallible conversion f to the value of p. A conversion
// failure is reported as a MapRes entry at the input of p.
func MapRes[I, O any](p Parser[I], f func(I) (O, error)) Parser[O] {
	return func(input string) (string, O, error) {
		var zero O
		rest, v, err := p(input)
		if err != nil {
			return "", zero, err
		}
		out, err := f(v)
		if err != nil {
			return "", zero, NewError(input, KindMapRes)
		}
		return rest, out, nil
	}
}

// Recognize returns the slice of input consumed by p instead of its value.
func Recognize[O any](p Parser[O]) Parser[string] {
	return func(input string) (string, string, error) {
		rest, _, err := p(input)
		if err != nil {
			return "", "", err
		}
		return rest, input[:len(input)-len(rest)], nil
	}
}

// Context names p in the error chain: a failure of p gets a context entry at
// the input p was given.
func Context[O any](name string, p Parser[O]) Parser[O] {
	return func(input string) (string, O, error) {
		rest, v, err := p(input)
		if err != nil {
			var zero O
			return "", zero, wrap(err, input).WithContext(input, name)
		}
		return rest, v, nil
	}
}

// PairOf runs a then b.
func PairOf[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return func(input string) (string, Pair[A, B], error) {
		var out Pair[A, B]
		rest, va, err := a(input)
		if err != nil {
			return "", out, err
		}
		rest, vb, err := b(rest)
		if err != nil {
			return "", out, err
		}
		out.First, out.Second = va, vb
		return rest, out, nil
	}
}

// Preceded runs prefix then p and keeps the value of p.
func Preceded[X, O any](prefix Parser[X], p Parser[O]) Parser[O] {
	return func(input string) (string, O, error) {
		var zero O
		rest, _, err := prefix(input)
		if err != nil {
			return "", zero, err
		}
		return p(rest)
	}
}

// Terminated runs p then suffix and keeps the value of p.
func Terminated[O, X any](p Parser[O], suffix Parser[X]) Parser[O] {
	return func(input string) (string, O, error) {
		var zero O
		rest, v, err := p(input)
		if err != nil {
			return "", zero, err
		}
		rest, _, err = suffix(rest)
		if err != nil {
			return "", zero, err
		}
		return rest, v, nil
	}
}

// SeparatedPair runs a, sep and b and keeps the values of a and b.
func SeparatedPair[A, X, B any](a Parser[A], sep Parser[X], b Parser[B]) Parser[Pair[A, B]] {
	return PairOf(Terminated(a, sep), b)
}

// Many0 repeats p until it fails and collects the values. It fails only when
// p succeeds without consuming anything.
func Many0[O any](p Parser[O]) Parser[[]O] {
	return func(input string) (string, []O, error) {
		var out []O
		for {
			rest, v, err := p(input)
			if err != nil {
				return input, out, nil
			}
			if len(rest) == len(input) {
				return "", nil, NewError(input, KindMany0)
			}
			out = append(out, v)
			input = rest
		}
	}
}

// Many1 is Many0 requiring at least one success. A failure of the first
// attempt gets a Many1 entry.
func Many1[O any](p Parser[O]) Parser[[]O] {
	return func(input string) (string, []O, error) {
		rest, first, err := p(input)
		if err != nil {
			return "", nil, wrap(err, input).Append(input, KindMany1)
		}
		rest, more, err := Many0(p)(rest)
		if err != nil {
			return "", nil, err
		}
		return rest, append([]O{first}, more...), nil
	}
}

// ManyMN runs p at least min and at most max times. It stops after max
// successes even when p would match again, leaving the rest unconsumed.
// Fewer than min successes add a ManyMN entry at the remainder where the
// repetition stopped.
func ManyMN[O any](minCount, maxCount int, p Parser[O]) Parser[[]O] {
	return func(input string) (string, []O, error) {
		out := make([]O, 0, minCount)
		for len(out) < maxCount {
			rest, v, err := p(input)
			if err != nil {
				if len(out) < minCount {
					return "", nil, wrap(err, input).Append(input, KindManyMN)
				}
				return input, out, nil
			}
			if len(rest) == len(input) {
				return "", nil, NewError(input, KindManyMN)
			}
			out = append(out, v)
			input = rest
		}
		return input, out, nil
	}
}

// Count runs p exactly n times. A failure adds a Count entry at the input
// given to Count, not at the failing repetition.
func Count[O any](p Parser[O], n int) Parser[[]O] {
	return func(input string) (string, []O, error) {
		out := make([]O, 0, n)
		rest := input
		for range n {
			next, v, err := p(rest)
			if err != nil {
				return "", nil, wrap(err, rest).Append(input, KindCount)
			}
			out = append(out, v)
			rest = next
		}
		return rest, out, nil
	}
}

// AllConsuming runs p and fails with an Eof entry when input remains.
func AllConsuming[O any](p Parser[O]) Parser[O] {
	return Terminated(p, EOF)
}
