// Package synctree guards a bst.Tree with a single lock so that it can be
// shared between goroutines.
//
// The underlying tree is not safe for concurrent use: a removal is several
// link writes, and a reader running between them sees a half-spliced graph.
// Every method here holds the lock for the whole operation. Node handles are
// never handed out, since they would escape the lock.
package synctree

import (
	"sync"

	"bst_code/bst"
)

type Tree[T bst.Ordered[T]] struct {
	mu   *sync.Mutex
	tree *bst.Tree[T]
}

func New[T bst.Ordered[T]]() *Tree[T] {
	return &Tree[T]{
		mu:   new(sync.Mutex),
		tree: bst.New[T](),
	}
}

func (t *Tree[T]) Add(v T) (T, error) {
	t.mu.Lock()
	added, err := t.tree.Add(v)
	t.mu.Unlock()
	return added, err
}

func (t *Tree[T]) Search(key T) (T, error) {
	t.mu.Lock()
	found, err := t.tree.Search(key)
	t.mu.Unlock()
	return found, err
}

func (t *Tree[T]) Contains(key T) bool {
	t.mu.Lock()
	ok := t.tree.Contains(key)
	t.mu.Unlock()
	return ok
}

func (t *Tree[T]) Remove(key T) (T, error) {
	t.mu.Lock()
	removed, err := t.tree.Remove(key)
	t.mu.Unlock()
	return removed, err
}

func (t *Tree[T]) Size() uint64 {
	t.mu.Lock()
	size := t.tree.Size()
	t.mu.Unlock()
	return size
}

func (t *Tree[T]) Height() int {
	t.mu.Lock()
	h := t.tree.Height()
	t.mu.Unlock()
	return h
}

func (t *Tree[T]) Validate() bool {
	t.mu.Lock()
	ok := t.tree.Validate()
	t.mu.Unlock()
	return ok
}

// InOrder returns a snapshot of the elements in ascending order.
func (t *Tree[T]) InOrder() []T {
	t.mu.Lock()
	elements := t.tree.InOrder()
	t.mu.Unlock()
	return elements
}

// Do runs f with exclusive access to the underlying tree, for sequences of
// operations that must not interleave with other callers. f must not keep
// the tree or any of its nodes after it returns.
func (t *Tree[T]) Do(f func(tree *bst.Tree[T])) {
	t.mu.Lock()
	defer t.mu.Unlock()
	f(t.tree)
}
