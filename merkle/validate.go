package merkle

import "github.com/frankonly/chainkit/crypto"

// Verdict is the outcome of validating a tree. An invalid verdict is a
// legitimate result of the call, not a failure of the call itself.
type Verdict int

const (
	// Valid means every stored digest matches its recomputation and the
	// tree shape is sound.
	Valid Verdict = iota
	// InvalidHash means a stored digest differs from the digest
	// recomputed from the node's value or children.
	InvalidHash
	// InvalidTree means the tree shape is malformed, or validation
	// reached a pruned leaf it was not told to trust.
	InvalidTree
)

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case InvalidHash:
		return "invalid hash"
	case InvalidTree:
		return "invalid tree"
	default:
		return "unknown"
	}
}

// Validate recomputes every node's digest bottom-up, from its value for
// leaves and from its children for internal nodes, and compares against
// the stored digest. A tree with pruned leaves never validates since
// their values are gone; use ValidatePruned for those.
func (t *Tree[T]) Validate() Verdict {
	return t.root.validate(false)
}

// ValidatePruned walks like Validate but trusts the stored digest of a
// pruned leaf as-is; only internal recomputation and shape are checked.
func (t *Tree[T]) ValidatePruned() Verdict {
	return t.root.validate(true)
}

func (n *node[T]) validate(trustPruned bool) Verdict {
	if n == nil {
		return InvalidTree
	}

	switch n.kind {
	case leafNode:
		if n.left != nil || n.right != nil {
			return InvalidTree
		}
		if !n.value.Hash().Equal(n.digest) {
			return InvalidHash
		}
		return Valid

	case prunedLeaf:
		if n.left != nil || n.right != nil {
			return InvalidTree
		}
		if !trustPruned {
			return InvalidTree
		}
		return Valid

	case internalNode:
		if n.left == nil || n.right == nil {
			return InvalidTree
		}
		if verdict := n.left.validate(trustPruned); verdict != Valid {
			return verdict
		}
		// a self-paired node aliases both children to one child
		if n.right != n.left {
			if verdict := n.right.validate(trustPruned); verdict != Valid {
				return verdict
			}
		}
		if !crypto.HashNodes(n.left.digest, n.right.digest).Equal(n.digest) {
			return InvalidHash
		}
		return Valid

	default:
		return InvalidTree
	}
}
