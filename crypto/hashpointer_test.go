package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPointer(t *testing.T) {
	r := require.New(t)

	pointer := NewHashPointer(Text("riley"))
	r.Equal(Text("riley"), pointer.Get())
	r.True(pointer.Digest().Equal(Text("riley").Hash()))
	r.True(pointer.Verify())
}

func TestHashPointerDigestSnapshot(t *testing.T) {
	r := require.New(t)

	pointer := NewHashPointer(Text("snapshot"))
	first := pointer.Digest()
	second := pointer.Digest()
	r.True(first.Equal(second))
}

func TestHashPointerChainsDigests(t *testing.T) {
	r := require.New(t)

	inner := Hash([]byte("payload"))
	pointer := NewHashPointer(inner)
	r.True(pointer.Get().Equal(inner))
	r.True(pointer.Digest().Equal(Hash(inner)))
	r.True(pointer.Verify())
}

func TestHashPointerVerifyDetectsTamper(t *testing.T) {
	r := require.New(t)

	// Digest is a byte slice, so an aliased copy can reach the pointee's
	// internal state. Verify catches the alteration.
	inner := Hash([]byte("payload"))
	pointer := NewHashPointer(inner)

	inner[0] ^= 0xff
	r.False(pointer.Verify())

	inner[0] ^= 0xff
	r.True(pointer.Verify())
}
