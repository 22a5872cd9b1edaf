package bst_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bst_code/bst"
)

type letter = bst.Key[string]

func letters(t *testing.T, keys ...string) *bst.Tree[letter] {
	tree := bst.New[letter]()
	for _, k := range keys {
		_, err := tree.Add(bst.NewKey(k))
		require.NoError(t, err, "adding %s", k)
	}
	return tree
}

func inOrder(tree *bst.Tree[letter]) []string {
	var keys []string
	for _, k := range tree.InOrder() {
		keys = append(keys, k.V)
	}
	return keys
}

func TestEmptyTree(t *testing.T) {
	assert := assert.New(t)
	tree := bst.New[letter]()

	assert.True(tree.Empty())
	assert.Equal(-1, tree.Height())
	assert.Equal(uint64(0), tree.Size())
	assert.True(tree.Validate())
	assert.Empty(tree.InOrder())
	assert.Equal("", tree.String())

	_, err := tree.Search(bst.NewKey("A"))
	assert.True(merry.Is(err, bst.ErrNotFound))
	_, err = tree.Remove(bst.NewKey("A"))
	assert.True(merry.Is(err, bst.ErrNotFound))
	_, err = tree.Max()
	assert.True(merry.Is(err, bst.ErrEmptyTree))
}

func TestAddSearch(t *testing.T) {
	assert := assert.New(t)
	tree := letters(t, "M", "F", "T", "B", "H", "P", "Z")

	assert.Equal([]string{"B", "F", "H", "M", "P", "T", "Z"}, inOrder(tree))
	assert.Equal(" B, F, H, M, P, T, Z,", tree.String())
	assert.Equal(uint64(7), tree.Size())
	assert.Equal(2, tree.Height())
	assert.True(tree.Validate())

	n, err := tree.SearchNode(bst.NewKey("P"))
	require.NoError(t, err)
	assert.Equal("P", n.Element().V)
	assert.Equal("T", n.Parent().Element().V)
	assert.Same(tree.Root().Right().Left(), n)

	_, err = tree.Search(bst.NewKey("Q"))
	assert.True(merry.Is(err, bst.ErrNotFound))
	assert.Equal("Q", bst.ErrKey(err).(letter).V)

	assert.True(tree.Contains(bst.NewKey("Z")))
	assert.False(tree.Contains(bst.NewKey("A")))

	minimum, _ := tree.Min()
	maximum, _ := tree.Max()
	assert.Equal("B", minimum.V)
	assert.Equal("Z", maximum.V)
}

func TestRemoveLeaf(t *testing.T) {
	assert := assert.New(t)
	tree := letters(t, "B", "A", "C")
	a := tree.Root().Left()
	require.True(t, a.IsLeaf())

	removed, err := tree.Remove(bst.NewKey("A"))
	require.NoError(t, err)
	assert.Equal("A", removed.V)
	assert.Nil(a.Parent(), "removed node keeps no links")

	root := tree.Root()
	assert.Equal("B", root.Element().V)
	assert.Nil(root.Left())
	assert.Equal("C", root.Right().Element().V)
	assert.True(tree.Validate())
}

func TestRemoveFullRoot(t *testing.T) {
	assert := assert.New(t)
	tree := letters(t, "B", "A", "C")
	root := tree.Root()

	removed, err := tree.Remove(bst.NewKey("B"))
	require.NoError(t, err)
	assert.Equal("B", removed.V, "returns the element asked for, not the one copied up")

	// the root node stays and takes over its predecessor's element
	assert.Same(root, tree.Root())
	assert.Equal("A", root.Element().V)
	assert.Nil(root.Left())
	assert.Equal("C", root.Right().Element().V)
	assert.True(tree.Validate())
}

func TestRemoveSemiLeaf(t *testing.T) {
	assert := assert.New(t)
	tree := letters(t, "F", "D", "L", "C", "E")

	_, err := tree.Remove(bst.NewKey("E"))
	require.NoError(t, err)
	d, _ := tree.SearchNode(bst.NewKey("D"))
	require.True(t, d.IsSemiLeaf())

	removed, err := tree.Remove(bst.NewKey("D"))
	require.NoError(t, err)
	assert.Equal("D", removed.V)

	c := tree.Root().Left()
	assert.Equal("C", c.Element().V)
	assert.Same(tree.Root(), c.Parent())
	assert.Nil(d.Parent(), "removed node keeps no links")
	assert.Nil(d.Left())
	assert.True(tree.Validate())
	assert.Equal([]string{"C", "F", "L"}, inOrder(tree))
}

func TestRemoveSemiLeafRoot(t *testing.T) {
	assert := assert.New(t)
	tree := letters(t, "B", "D", "C")

	_, err := tree.Remove(bst.NewKey("B"))
	require.NoError(t, err)
	assert.Equal("D", tree.Root().Element().V)
	assert.Nil(tree.Root().Parent())
	assert.True(tree.Validate())
}

func TestRemoveDeepPredecessor(t *testing.T) {
	assert := assert.New(t)
	// predecessor of M is K, which has a left child J to splice up
	tree := letters(t, "M", "E", "T", "B", "K", "J")

	_, err := tree.Remove(bst.NewKey("M"))
	require.NoError(t, err)
	assert.Equal("K", tree.Root().Element().V)
	j, _ := tree.SearchNode(bst.NewKey("J"))
	assert.Equal("E", j.Parent().Element().V)
	assert.Same(j, j.Parent().Right())
	assert.True(tree.Validate())
	assert.Equal([]string{"B", "E", "J", "K", "T"}, inOrder(tree))
}

func TestRemoveLastElement(t *testing.T) {
	assert := assert.New(t)
	tree := letters(t, "A")

	removed, err := tree.Remove(bst.NewKey("A"))
	require.NoError(t, err)
	assert.Equal("A", removed.V)
	assert.True(tree.Empty())
	assert.Equal(-1, tree.Height())
	assert.True(tree.Validate())
}

func TestSkewedTree(t *testing.T) {
	assert := assert.New(t)
	tree := bst.New[bst.Key[int]]()
	for i := 1; i <= 10; i++ {
		_, err := tree.Add(bst.NewKey(i))
		require.NoError(t, err)
	}
	assert.Equal(9, tree.Height())
	assert.Equal(uint64(10), tree.Size())

	for i := 1; i <= 10; i++ {
		removed, err := tree.Remove(bst.NewKey(i))
		require.NoError(t, err)
		assert.Equal(i, removed.V)
		assert.True(tree.Validate(), "after removing %d", i)
		assert.Equal(uint64(10-i), tree.Size())
	}
	assert.True(tree.Empty())
}

func TestLongSkewedTree(t *testing.T) {
	// deep enough that recursive walks would be a real cost
	const n = 10000
	tree := bst.New[bst.Key[int]]()
	for i := n; i > 0; i-- {
		tree.Add(bst.NewKey(i))
	}
	assert.Equal(t, n-1, tree.Height())
	assert.True(t, tree.Validate())
	assert.True(t, tree.Contains(bst.NewKey(1)))

	lines := strings.SplitN(tree.Structure(), "\n", 2)
	assert.Equal(t, fmt.Sprintf("%d (hgt=%d)[left: %d; right: *] -- parent: *", n, n-1, n-1), lines[0])
}

func TestAddDuplicate(t *testing.T) {
	assert := assert.New(t)
	tree := letters(t, "B", "A", "C")

	_, err := tree.Add(bst.NewKey("A"))
	assert.True(merry.Is(err, bst.ErrDuplicateKey))
	assert.Equal("A", bst.ErrKey(err).(letter).V)
	assert.Equal(uint64(3), tree.Size())
	assert.True(tree.Validate())
}

func TestRemoveAbsent(t *testing.T) {
	assert := assert.New(t)
	tree := letters(t, "B", "A", "C")
	before := tree.Structure()

	_, err := tree.Remove(bst.NewKey("D"))
	assert.True(merry.Is(err, bst.ErrNotFound))
	assert.Equal(uint64(3), tree.Size())
	assert.True(tree.Validate())
	assert.Equal(before, tree.Structure())
}

func TestRemoveNodeHandle(t *testing.T) {
	assert := assert.New(t)
	tree := letters(t, "D", "B", "F", "A", "C")

	b, err := tree.SearchNode(bst.NewKey("B"))
	require.NoError(t, err)
	assert.True(b.IsFull())
	assert.Equal("B", tree.RemoveNode(b).V)
	assert.Equal("A", b.Element().V)
	assert.True(tree.Validate())

	assert.Panics(func() {
		tree.RemoveNode(letters(t, "X").Root())
	}, "node from another tree")
}

func TestStructure(t *testing.T) {
	tree := letters(t, "B", "A", "C")
	expected := "B (hgt=1)[left: A; right: C] -- parent: *\n" +
		"A (hgt=0)[left: *; right: *] -- parent: B\n" +
		"C (hgt=0)[left: *; right: *] -- parent: B\n"
	assert.Equal(t, expected, tree.Structure())
	assert.Equal(t, "size = 3; height = 1", tree.Stats())
}
