package bst

import (
	"fmt"
	"strconv"
	"strings"
)

// InOrder returns the elements of the subtree rooted at n in ascending order.
func (n *Node[T]) InOrder() []T {
	var elements []T
	var pending stack[*Node[T]]
	var cur = n
	for {
		for cur != nil {
			pending.push(cur)
			cur = cur.left
		}
		next, ok := pending.pop()
		if !ok {
			break
		}
		elements = append(elements, next.element)
		cur = next.right
	}
	return elements
}

func (t *Tree[T]) InOrder() []T {
	return t.root.InOrder()
}

// String renders the subtree in order as " a, b, c,".
func (n *Node[T]) String() string {
	var b strings.Builder
	for _, e := range n.InOrder() {
		fmt.Fprintf(&b, " %v,", e)
	}
	return b.String()
}

func (t *Tree[T]) String() string {
	return t.root.String()
}

// Structure renders one line per node in pre-order:
//
//	B (hgt=1)[left: A; right: C] -- parent: *
//
// with * standing for an absent link. A tree failing Validate gets an error
// line first.
func (t *Tree[T]) Structure() string {
	var b strings.Builder
	linked := t.ValidateStructure()
	if !linked || !t.ValidateOrdering() {
		b.WriteString("ERROR: not a proper binary search tree\n")
	}
	var heights map[*Node[T]]int
	if linked {
		heights = t.root.heights()
	}
	seen := make(map[*Node[T]]struct{})
	t.root.walk(func(n *Node[T]) bool {
		if _, ok := seen[n]; ok {
			// only possible in a broken tree; stop before looping forever
			return false
		}
		seen[n] = struct{}{}
		// heights are only meaningful once the links are known to form a tree
		height := "?"
		if linked {
			height = strconv.Itoa(heights[n])
		}
		fmt.Fprintf(&b, "%v (hgt=%s)[left: %s; right: %s] -- parent: %s\n",
			n.element, height, label(n.left), label(n.right), label(n.parent))
		return true
	})
	return b.String()
}

func label[T Ordered[T]](n *Node[T]) string {
	if n == nil {
		return "*"
	}
	return fmt.Sprint(n.element)
}
