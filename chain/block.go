package chain

import (
	"encoding/binary"

	"github.com/frankonly/chainkit/crypto"
)

// GenesisPlaceholder seeds the previous-digest field of a chain's first
// block, which has no predecessor to point at.
const GenesisPlaceholder = "genesis placeholder"

// GenesisDigest returns the fixed sentinel digest referenced in place of
// a previous block by the genesis block.
func GenesisDigest() crypto.Digest {
	return crypto.Hash([]byte(GenesisPlaceholder))
}

// DigestOf computes a block digest from its parts: the big-endian index,
// the payload digest and the previous block digest, concatenated and
// hashed.
func DigestOf(index uint64, payload crypto.Digest, previous crypto.Digest) crypto.Digest {
	buf := make([]byte, 8, 8+len(payload)+len(previous))
	binary.BigEndian.PutUint64(buf, index)
	buf = append(buf, payload...)
	buf = append(buf, previous...)

	return crypto.Hash(buf)
}

// Block is one link of a chain: a payload, its position, the digest of
// the whole block, and a hash pointer to the previous block's digest.
// The genesis block carries no pointer and references GenesisDigest.
type Block[T crypto.Hashable] struct {
	index    uint64
	payload  T
	previous *crypto.HashPointer[crypto.Digest]
	digest   crypto.Digest
}

// Index returns the block's position in the chain.
func (b *Block[T]) Index() uint64 {
	return b.index
}

// Payload returns the block's payload for reading.
func (b *Block[T]) Payload() T {
	return b.payload
}

// Digest returns the block digest.
func (b *Block[T]) Digest() crypto.Digest {
	return b.digest
}

// PreviousDigest returns the digest of the previous block, or the
// genesis sentinel for the first block.
func (b *Block[T]) PreviousDigest() crypto.Digest {
	if b.previous == nil {
		return GenesisDigest()
	}

	return b.previous.Get()
}
