package merkle

import (
	"fmt"
	"sort"

	"github.com/frankonly/chainkit/crypto"
)

var (
	ErrEmptyInput   = fmt.Errorf("empty input")
	ErrPrunedSearch = fmt.Errorf("search reached a pruned leaf")
)

// Value is the capability set required of tree elements: a deterministic
// content digest, a total order, and a deep copy.
type Value[T any] interface {
	Hash() crypto.Digest
	Less(T) bool
	Clone() T
}

type nodeKind int

const (
	leafNode nodeKind = iota
	internalNode
	prunedLeaf
)

// node is one node of the tree. A leaf owns a value and its digest, an
// internal node owns two children and the hash of their digests, and a
// pruned leaf keeps only the digest of its discarded value.
type node[T Value[T]] struct {
	kind   nodeKind
	digest crypto.Digest
	left   *node[T]
	right  *node[T]
	value  T
}

// Tree is a merkle binary tree over the digests of a sorted sequence of
// values. Leaves hold the values in sorted order; every internal digest
// is the hash of its children's digests concatenated left then right.
type Tree[T Value[T]] struct {
	root   *node[T]
	leaves []*node[T]
}

// Construct builds a tree over values. Values are cloned and sorted by
// their total order, one leaf per value, then adjacent nodes are paired
// bottom-up until a single root remains. A level with an odd number of
// nodes pairs its last node with itself: both children of the new
// internal node point at the same child, and its digest is the hash of
// that child's digest repeated.
func Construct[T Value[T]](values []T) (*Tree[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}

	sorted := make([]T, len(values))
	for i, value := range values {
		sorted[i] = value.Clone()
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	leaves := make([]*node[T], len(sorted))
	for i, value := range sorted {
		leaves[i] = &node[T]{kind: leafNode, digest: value.Hash(), value: value}
	}

	level := leaves
	for len(level) > 1 {
		next := make([]*node[T], 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := left
			if i+1 < len(level) {
				right = level[i+1]
			}

			next = append(next, &node[T]{
				kind:   internalNode,
				digest: crypto.HashNodes(left.digest, right.digest),
				left:   left,
				right:  right,
			})
		}
		level = next
	}

	return &Tree[T]{root: level[0], leaves: leaves}, nil
}

// Contains reports whether value is one of the tree's leaves, by binary
// search over the sorted leaf index. Retained values keep answering true
// after pruning; ErrPrunedSearch is returned only when the search lands
// on the queried value's own leaf and finds it pruned, since the
// discarded value is no longer there to compare against.
func (t *Tree[T]) Contains(value T) (bool, error) {
	target := value.Hash()

	low, high := 0, len(t.leaves)
	for low < high {
		mid := int(uint(low+high) >> 1)

		// A pruned probe cannot be ordered against the target. Its digest
		// still decides equality, so walk right to the nearest retained
		// leaf, ruling the pruned run in or out by digest on the way.
		probe := mid
		for probe < high && t.leaves[probe].kind == prunedLeaf {
			if t.leaves[probe].digest.Equal(target) {
				return false, fmt.Errorf("%w: position %d", ErrPrunedSearch, probe)
			}
			probe++
		}
		if probe == high {
			high = mid
			continue
		}

		leaf := t.leaves[probe]
		switch {
		case leaf.value.Less(value):
			low = probe + 1
		case value.Less(leaf.value):
			high = mid
		default:
			return true, nil
		}
	}

	return false, nil
}

// Prune irreversibly discards the value of every leaf not present in
// retain, keeping its digest. Digests and tree shape never change, so
// ValidatePruned keeps reporting Valid. Repeated pruning with the same
// or a smaller retain set causes no further change.
func (t *Tree[T]) Prune(retain []T) {
	var discarded T
	for _, leaf := range t.leaves {
		if leaf.kind != leafNode {
			continue
		}

		retained := false
		for _, value := range retain {
			if !leaf.value.Less(value) && !value.Less(leaf.value) {
				retained = true
				break
			}
		}

		if !retained {
			leaf.kind = prunedLeaf
			leaf.value = discarded
		}
	}
}

// Root returns the root digest.
func (t *Tree[T]) Root() crypto.Digest {
	return t.root.digest
}

// Size returns the number of leaves.
func (t *Tree[T]) Size() int {
	return len(t.leaves)
}
