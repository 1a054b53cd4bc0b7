package parsec

// Monoid is the capability that lets AppendResult/Assemble/AtLeastOne
// combine two successful parser values: Empty is the identity element and
// Concat combines two values in order.
//
// Supplying a type with no Monoid instance is a compile-time error (an
// unsatisfied generic constraint), not a runtime type test.
type Monoid[T any] interface {
	Empty() T
	Concat(other T) T
}

// StringMonoid concatenates strings.
type StringMonoid string

// Empty returns the empty string.
func (StringMonoid) Empty() StringMonoid { return "" }

// Concat appends other after s.
func (s StringMonoid) Concat(other StringMonoid) StringMonoid { return s + other }

// SliceMonoid concatenates slices of T.
type SliceMonoid[T any] []T

// Empty returns a nil slice.
func (SliceMonoid[T]) Empty() SliceMonoid[T] { return nil }

// Concat appends other after s.
func (s SliceMonoid[T]) Concat(other SliceMonoid[T]) SliceMonoid[T] {
	out := make(SliceMonoid[T], 0, len(s)+len(other))
	out = append(out, s...)
	out = append(out, other...)
	return out
}
