package bst

import (
	"cmp"
	"fmt"
)

// Ordered is the capability an element needs to be stored in a Tree. Less
// must be a strict total order, and Equals must agree with it: exactly one of
// a.Less(b), b.Less(a) and a.Equals(b) holds for any a and b.
//
// Equality only needs to cover the ordering key, so two elements may be equal
// while carrying different payloads.
type Ordered[T any] interface {
	Equals(other T) bool
	Less(other T) bool
}

func greater[T Ordered[T]](a, b T) bool {
	return b.Less(a)
}

// Key adapts a built-in ordered type to Ordered.
type Key[K cmp.Ordered] struct {
	V K
}

func NewKey[K cmp.Ordered](v K) Key[K] {
	return Key[K]{V: v}
}

func (k Key[K]) Equals(other Key[K]) bool {
	return k.V == other.V
}

func (k Key[K]) Less(other Key[K]) bool {
	return cmp.Less(k.V, other.V)
}

func (k Key[K]) String() string {
	return fmt.Sprint(k.V)
}

// Record is an element ordered by Key alone. Payload rides along and is
// ignored by Equals and Less.
type Record[K cmp.Ordered, V any] struct {
	Key     K
	Payload V
}

func NewRecord[K cmp.Ordered, V any](key K, payload V) Record[K, V] {
	return Record[K, V]{Key: key, Payload: payload}
}

func (r Record[K, V]) Equals(other Record[K, V]) bool {
	return r.Key == other.Key
}

func (r Record[K, V]) Less(other Record[K, V]) bool {
	return cmp.Less(r.Key, other.Key)
}

// String renders only the key; see FullString for the payload too.
func (r Record[K, V]) String() string {
	return fmt.Sprint(r.Key)
}

func (r Record[K, V]) FullString() string {
	return fmt.Sprintf("%v: %v", r.Key, r.Payload)
}
