package bst

import "github.com/goose-lang/primitive"

// Tree is an unbalanced binary search tree with no duplicate elements. The
// zero value is an empty tree ready to use. A Tree is not safe for concurrent
// use; see package synctree for a locked wrapper.
//
// Every operation walks the tree with a loop, so skewed trees cost O(n) time
// but never deep recursion.
type Tree[T Ordered[T]] struct {
	root *Node[T]
}

func New[T Ordered[T]]() *Tree[T] {
	return &Tree[T]{}
}

// Root returns nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Add inserts value as a new leaf and returns it. If an equal element is
// already present the tree is left unchanged and ErrDuplicateKey is returned.
func (t *Tree[T]) Add(value T) (T, error) {
	if t.root == nil {
		t.root = newNode(value)
		return value, nil
	}
	var cur = t.root
	for {
		if value.Less(cur.element) {
			if cur.left == nil {
				cur.setLeft(newNode(value))
				return value, nil
			}
			cur = cur.left
		} else if greater(value, cur.element) {
			if cur.right == nil {
				cur.setRight(newNode(value))
				return value, nil
			}
			cur = cur.right
		} else {
			var zero T
			return zero, withKey(ErrDuplicateKey, value)
		}
	}
}

// SearchNode returns the node holding an element equal to key.
func (t *Tree[T]) SearchNode(key T) (*Node[T], error) {
	n := t.root.SearchNode(key)
	if n == nil {
		return nil, withKey(ErrNotFound, key)
	}
	return n, nil
}

// Search returns the stored element equal to key, including whatever payload
// it carries.
func (t *Tree[T]) Search(key T) (T, error) {
	n, err := t.SearchNode(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.element, nil
}

func (t *Tree[T]) Contains(key T) bool {
	return t.root.SearchNode(key) != nil
}

func (t *Tree[T]) Min() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return t.root.Min().element, nil
}

func (t *Tree[T]) Max() (T, error) {
	if t.root == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return t.root.Max().element, nil
}

// Remove deletes the element equal to key and returns it. If there is none,
// the tree is unchanged and ErrNotFound is returned.
func (t *Tree[T]) Remove(key T) (T, error) {
	n, err := t.SearchNode(key)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.RemoveNode(n), nil
}

// RemoveNode deletes n, which must belong to t, and returns the element it
// held when called.
//
// A full node stays in place: it takes over the element of its in-order
// predecessor, and the predecessor's node is unlinked instead. Node handles
// to the predecessor are therefore invalidated, while n keeps its position
// with a new element.
func (t *Tree[T]) RemoveNode(n *Node[T]) T {
	primitive.Assert(n != nil)
	primitive.Assert(t.owns(n))
	removed := n.element
	switch {
	case n.IsFull():
		pred := n.left.Max()
		// the max of a subtree has no right child, so this removal is a
		// leaf or semi-leaf case and does not come back here
		primitive.Assert(pred.right == nil)
		n.element = pred.element
		t.RemoveNode(pred)
	case n.IsLeaf():
		t.replace(n, nil)
		n.detach()
	default:
		t.replace(n, n.onlyChild())
		n.detach()
	}
	return removed
}

// replace puts c into the slot n occupies, under n's parent or as the root.
// n's own links are left for the caller to clear.
func (t *Tree[T]) replace(n *Node[T], c *Node[T]) {
	p := n.parent
	switch {
	case p == nil:
		t.root = c
		if c != nil {
			c.parent = nil
		}
	case p.left == n:
		p.setLeft(c)
	default:
		p.setRight(c)
	}
}

// owns reports whether n's chain of parents ends at t's root.
func (t *Tree[T]) owns(n *Node[T]) bool {
	var cur = n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur == t.root
}
