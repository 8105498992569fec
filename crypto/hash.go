package crypto

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// DigestSize is the length in bytes of a Digest.
const DigestSize = sha256.Size

// Digest is the fixed-length content hash of a value.
type Digest []byte

// Hash hashes bytes by SHA256
func Hash(value []byte) Digest {
	hash := sha256.Sum256(value)
	return hash[:]
}

// HashNodes hashes two digests into one
func HashNodes(left Digest, right Digest) Digest {
	buf := make([]byte, 0, len(left)+len(right))
	buf = append(buf, left...)
	buf = append(buf, right...)

	return Hash(buf)
}

// Equal reports whether two digests have the same content
func (d Digest) Equal(other Digest) bool {
	return bytes.Equal(d, other)
}

// String returns the hex encoding of the digest
func (d Digest) String() string {
	return hex.EncodeToString(d)
}

// Hash makes a digest itself hashable, so digests can be chained
func (d Digest) Hash() Digest {
	return Hash(d)
}

// Less orders digests by their byte content
func (d Digest) Less(other Digest) bool {
	return bytes.Compare(d, other) < 0
}

// Clone returns a copy of the digest
func (d Digest) Clone() Digest {
	return append(Digest{}, d...)
}

// DigestFromHex decodes a hex string into a digest
func DigestFromHex(s string) (Digest, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}

	return Digest(raw), nil
}
