package crypto

// HashPointer pairs an exclusively owned value with the digest computed at
// wrap time. The pointee is reachable read-only through Get, so the
// snapshot keeps matching the value for the pointer's lifetime.
type HashPointer[T Hashable] struct {
	value  T
	digest Digest
}

// NewHashPointer takes ownership of value and snapshots its digest
func NewHashPointer[T Hashable](value T) *HashPointer[T] {
	return &HashPointer[T]{value: value, digest: value.Hash()}
}

// Digest returns the snapshot taken at construction
func (p *HashPointer[T]) Digest() Digest {
	return p.digest
}

// Get returns the pointee for reading
func (p *HashPointer[T]) Get() T {
	return p.value
}

// Verify recomputes the pointee's hash and compares it to the snapshot
func (p *HashPointer[T]) Verify() bool {
	return p.value.Hash().Equal(p.digest)
}
