package bst

// Node is one element of a Tree together with its links. A node owns its
// children; parent is only a back-reference for walking upwards.
//
// Nodes are created by Tree.Add and handed out by the search methods. Their
// links can only be changed by the tree, so a node reached from a valid tree
// always satisfies the structural invariant.
type Node[T Ordered[T]] struct {
	element T
	left    *Node[T]
	right   *Node[T]
	parent  *Node[T]
}

func newNode[T Ordered[T]](element T) *Node[T] {
	return &Node[T]{element: element}
}

func (n *Node[T]) Element() T {
	return n.element
}

func (n *Node[T]) Left() *Node[T] {
	return n.left
}

func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Parent returns nil for the root, and for a node that has been removed.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Replace overwrites the stored element with v, which must be equal to it;
// only payload can change through a node handle. It reports whether the
// element was replaced.
func (n *Node[T]) Replace(v T) bool {
	if !v.Equals(n.element) {
		return false
	}
	n.element = v
	return true
}

func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// IsSemiLeaf reports whether n has exactly one child.
func (n *Node[T]) IsSemiLeaf() bool {
	return (n.left == nil) != (n.right == nil)
}

// IsFull reports whether n has two children.
func (n *Node[T]) IsFull() bool {
	return n.left != nil && n.right != nil
}

// IsInternal reports whether n has at least one child.
func (n *Node[T]) IsInternal() bool {
	return !n.IsLeaf()
}

// onlyChild returns the child of a semi-leaf, or nil for a leaf.
func (n *Node[T]) onlyChild() *Node[T] {
	if n.left != nil {
		return n.left
	}
	return n.right
}

// setLeft links c as the left child of n, pointing c back at n.
func (n *Node[T]) setLeft(c *Node[T]) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

func (n *Node[T]) setRight(c *Node[T]) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

// detach clears every outgoing link of a node that has left its tree.
func (n *Node[T]) detach() {
	n.parent = nil
	n.left = nil
	n.right = nil
}

// SearchNode returns the node in the subtree rooted at n whose element equals
// key, or nil. n may be nil.
func (n *Node[T]) SearchNode(key T) *Node[T] {
	var cur = n
	for cur != nil {
		if key.Less(cur.element) {
			cur = cur.left
		} else if greater(key, cur.element) {
			cur = cur.right
		} else {
			return cur
		}
	}
	return nil
}

// Max returns the node holding the greatest element in the subtree rooted at
// n, or nil if n is nil. It never has a right child.
func (n *Node[T]) Max() *Node[T] {
	if n == nil {
		return nil
	}
	var cur = n
	for cur.right != nil {
		cur = cur.right
	}
	return cur
}

// Min returns the node holding the least element in the subtree rooted at n,
// or nil if n is nil.
func (n *Node[T]) Min() *Node[T] {
	if n == nil {
		return nil
	}
	var cur = n
	for cur.left != nil {
		cur = cur.left
	}
	return cur
}
