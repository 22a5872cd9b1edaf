// Package bst implements an unbalanced binary search tree over elements that
// supply their own ordering.
//
// Nodes keep a parent back-reference next to their two children. Removal
// handles leaves, nodes with one child and nodes with two children. In the
// last case the in-order predecessor's element is copied up and its node is
// unlinked. The link consistency and ordering invariants can be checked at any
// time with Tree.Validate.
package bst
