package chain

import "github.com/frankonly/chainkit/crypto"

// Status is the outcome kind of a chain validation.
type Status int

const (
	// Valid means every block digest recomputes and every link points at
	// its actual predecessor.
	Valid Status = iota
	// InvalidHash means a block's stored digest differs from the digest
	// recomputed over its index, payload and previous digest.
	InvalidHash
	// InvalidLink means a block's previous-digest reference does not
	// match the actual previous block, or its index is out of sequence.
	InvalidLink
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case InvalidHash:
		return "invalid hash"
	case InvalidLink:
		return "invalid link"
	default:
		return "unknown"
	}
}

// Report is the outcome of validating a chain: a status and, when the
// chain is invalid, the index of the first offending block.
type Report struct {
	Status Status
	Index  uint64
}

// Chain is an append-only sequence of hash-linked blocks. Only the tail
// may be extended; no block is ever removed or reordered.
type Chain[T crypto.Hashable] struct {
	blocks []*Block[T]
}

// New returns an empty chain.
func New[T crypto.Hashable]() *Chain[T] {
	return &Chain[T]{}
}

// Len returns the number of blocks.
func (c *Chain[T]) Len() int {
	return len(c.blocks)
}

// Head returns the last block, or nil for an empty chain.
func (c *Chain[T]) Head() *Block[T] {
	if len(c.blocks) == 0 {
		return nil
	}

	return c.blocks[len(c.blocks)-1]
}

// Block returns the block at the given index, or nil when out of range.
func (c *Chain[T]) Block(index uint64) *Block[T] {
	if index >= uint64(len(c.blocks)) {
		return nil
	}

	return c.blocks[index]
}

// Append extends the chain with a block holding payload. The new block
// wraps the previous block's digest in a hash pointer, or references the
// genesis sentinel when the chain is empty, and its own digest covers
// index, payload and that reference.
func (c *Chain[T]) Append(payload T) *Block[T] {
	index := uint64(len(c.blocks))

	previous := GenesisDigest()
	var pointer *crypto.HashPointer[crypto.Digest]
	if index > 0 {
		previous = c.blocks[index-1].digest
		pointer = crypto.NewHashPointer(previous)
	}

	block := &Block[T]{
		index:    index,
		payload:  payload,
		previous: pointer,
		digest:   DigestOf(index, payload.Hash(), previous),
	}
	c.blocks = append(c.blocks, block)

	return block
}

// ValidateChain walks the chain in order, recomputing each block digest
// and checking every previous-digest reference against the actual
// predecessor. The first mismatch of either kind determines the reported
// status and position.
func (c *Chain[T]) ValidateChain() Report {
	for i, block := range c.blocks {
		position := uint64(i)
		if block.index != position {
			return Report{Status: InvalidLink, Index: position}
		}

		previous := GenesisDigest()
		if position == 0 {
			if block.previous != nil {
				return Report{Status: InvalidLink, Index: position}
			}
		} else {
			if block.previous == nil || !block.previous.Get().Equal(c.blocks[i-1].digest) {
				return Report{Status: InvalidLink, Index: position}
			}
			previous = block.previous.Get()
		}

		if !DigestOf(position, block.payload.Hash(), previous).Equal(block.digest) {
			return Report{Status: InvalidHash, Index: position}
		}
	}

	return Report{Status: Valid}
}
