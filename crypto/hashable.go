package crypto

// Hashable is a value that can deterministically produce a fixed-length
// digest of its logical content. Equal logical values must yield equal
// digests in any process run; the rest of the system depends on this.
type Hashable interface {
	Hash() Digest
}

// Text is a hashable string, hashed by its byte representation.
type Text string

// Hash hashes the text bytes by SHA256
func (t Text) Hash() Digest {
	return Hash([]byte(t))
}

// Less orders texts lexicographically
func (t Text) Less(other Text) bool {
	return t < other
}

// Clone returns a copy of the text
func (t Text) Clone() Text {
	return t
}
