package storage

import "fmt"

var (
	ErrOutOfRange    = fmt.Errorf("out of range")
	ErrNotFound      = fmt.Errorf("not found")
	ErrEmpty         = fmt.Errorf("empty")
	ErrInvalidRecord = fmt.Errorf("invalid record")
	ErrCorrupted     = fmt.Errorf("corrupted chain")
)

// KvStore is the key-value backend the chain store persists into.
type KvStore interface {
	Get(key []byte) ([]byte, error)
	Put(key, value []byte) error
	Delete(key []byte) error
	Close() error
}
