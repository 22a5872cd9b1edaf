package bst

import (
	"fmt"

	"github.com/goose-lang/std"
)

// Height of the subtree rooted at n: a single node has height 0 and a nil
// node -1.
func (n *Node[T]) Height() int {
	if n == nil {
		return -1
	}
	type level struct {
		n     *Node[T]
		depth int
	}
	var height = 0
	q := newQueue[level]()
	q.push(level{n: n})
	for {
		l, ok := q.pop()
		if !ok {
			break
		}
		height = max(height, l.depth)
		if l.n.left != nil {
			q.push(level{n: l.n.left, depth: l.depth + 1})
		}
		if l.n.right != nil {
			q.push(level{n: l.n.right, depth: l.depth + 1})
		}
	}
	return height
}

// Size counts the nodes in the subtree rooted at n, including n.
func (n *Node[T]) Size() uint64 {
	var size = uint64(0)
	n.walk(func(*Node[T]) bool {
		size = std.SumAssumeNoOverflow(size, 1)
		return true
	})
	return size
}

// walk visits the subtree rooted at n in pre-order until f returns false.
func (n *Node[T]) walk(f func(*Node[T]) bool) {
	if n == nil {
		return
	}
	var pending stack[*Node[T]]
	pending.push(n)
	for {
		cur, ok := pending.pop()
		if !ok {
			return
		}
		if !f(cur) {
			return
		}
		if cur.right != nil {
			pending.push(cur.right)
		}
		if cur.left != nil {
			pending.push(cur.left)
		}
	}
}

// Height of the tree; -1 when empty.
func (t *Tree[T]) Height() int {
	return t.root.Height()
}

func (t *Tree[T]) Size() uint64 {
	return t.root.Size()
}

func (t *Tree[T]) Stats() string {
	return fmt.Sprintf("size = %d; height = %d", t.Size(), t.Height())
}

// ValidateStructure checks that parent and child links agree everywhere in
// the subtree rooted at n, and that n itself is a child of its parent.
func (n *Node[T]) ValidateStructure() bool {
	if n == nil {
		return true
	}
	var ok = true
	seen := make(map[*Node[T]]struct{})
	n.walk(func(cur *Node[T]) bool {
		if _, dup := seen[cur]; dup {
			// reached twice: a shared child or a cycle
			ok = false
			return false
		}
		seen[cur] = struct{}{}
		if cur.left != nil && cur.left == cur.right {
			ok = false
		} else if cur.left != nil && cur.left.parent != cur {
			ok = false
		} else if cur.right != nil && cur.right.parent != cur {
			ok = false
		} else if p := cur.parent; p != nil && p.left != cur && p.right != cur {
			ok = false
		}
		return ok
	})
	return ok
}

// ValidateOrdering checks that every element in a left subtree is less than
// its ancestor and every element in a right subtree greater.
func (n *Node[T]) ValidateOrdering() bool {
	if n == nil {
		return true
	}
	_, ok := n.bounds()
	return ok
}

type bounds[T any] struct {
	min T
	max T
}

// frame is a node on a post-order work stack; it is expanded once its
// children have been pushed above it.
type frame[T Ordered[T]] struct {
	n        *Node[T]
	expanded bool
}

func expand[T Ordered[T]](work *stack[frame[T]], n *Node[T]) {
	work.push(frame[T]{n: n, expanded: true})
	if n.right != nil {
		work.push(frame[T]{n: n.right})
	}
	if n.left != nil {
		work.push(frame[T]{n: n.left})
	}
}

// bounds computes the least and greatest element of the subtree rooted at n
// bottom-up, stopping at the first subtree that is out of order. A node
// reached twice also fails, so a cyclic graph cannot keep it looping.
func (n *Node[T]) bounds() (bounds[T], bool) {
	var work stack[frame[T]]
	// completed subtrees; a node's left result sits below its right result
	var done stack[bounds[T]]
	seen := make(map[*Node[T]]struct{})
	work.push(frame[T]{n: n})
	for {
		f, ok := work.pop()
		if !ok {
			break
		}
		cur := f.n
		if !f.expanded {
			if _, dup := seen[cur]; dup {
				return bounds[T]{}, false
			}
			seen[cur] = struct{}{}
			expand(&work, cur)
			continue
		}
		b := bounds[T]{min: cur.element, max: cur.element}
		if cur.right != nil {
			r, _ := done.pop()
			if !cur.element.Less(r.min) {
				return bounds[T]{}, false
			}
			b.max = r.max
		}
		if cur.left != nil {
			l, _ := done.pop()
			if !l.max.Less(cur.element) {
				return bounds[T]{}, false
			}
			b.min = l.min
		}
		done.push(b)
	}
	b, _ := done.pop()
	return b, true
}

// heights returns the height of every node in the subtree rooted at n,
// computed in a single post-order pass. n must head a well-linked subtree.
func (n *Node[T]) heights() map[*Node[T]]int {
	hs := make(map[*Node[T]]int)
	if n == nil {
		return hs
	}
	var work stack[frame[T]]
	work.push(frame[T]{n: n})
	for {
		f, ok := work.pop()
		if !ok {
			return hs
		}
		if !f.expanded {
			expand(&work, f.n)
			continue
		}
		h := 0
		if f.n.left != nil {
			h = max(h, hs[f.n.left]+1)
		}
		if f.n.right != nil {
			h = max(h, hs[f.n.right]+1)
		}
		hs[f.n] = h
	}
}

// ValidateStructure additionally requires the root to have no parent.
func (t *Tree[T]) ValidateStructure() bool {
	if t.root == nil {
		return true
	}
	return t.root.parent == nil && t.root.ValidateStructure()
}

func (t *Tree[T]) ValidateOrdering() bool {
	return t.root.ValidateOrdering()
}

// Validate reports whether t is a proper binary search tree: links are
// consistent and elements are in order.
func (t *Tree[T]) Validate() bool {
	return t.ValidateStructure() && t.ValidateOrdering()
}
