package storage

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/frankonly/chainkit/chain"
	"github.com/frankonly/chainkit/crypto"
)

// BlockRecord is the persisted digest view of one block: the block
// digest, the previous digest it references, and the payload digest.
// Payloads themselves are not stored; the record is enough to recompute
// and re-check the whole hash chain.
type BlockRecord struct {
	Index    uint64
	Digest   crypto.Digest
	Previous crypto.Digest
	Payload  crypto.Digest
}

// ChainStore persists an append-only digest chain behind a KvStore.
// Block records live under big-endian index keys; a size key tracks the
// chain length.
type ChainStore struct {
	db   KvStore
	next uint64
	head crypto.Digest
}

// OpenChainStore loads the chain persisted in db, replaying every stored
// record and re-checking digests and links before accepting it.
func OpenChainStore(db KvStore) (*ChainStore, error) {
	store := &ChainStore{db: db, head: chain.GenesisDigest()}

	res, err := db.Get(sizeKey())
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}

		res = make([]byte, 8)
		if err := db.Put(sizeKey(), res); err != nil {
			return nil, err
		}
	}

	store.next = binary.BigEndian.Uint64(res)
	if store.next == 0 {
		return store, nil
	}

	report, err := store.Verify()
	if err != nil {
		return nil, err
	}
	if report.Status != chain.Valid {
		return nil, fmt.Errorf("%w: %s at block %d", ErrCorrupted, report.Status, report.Index)
	}

	record, err := store.Get(store.next - 1)
	if err != nil {
		return nil, err
	}
	store.head = record.Digest

	return store, nil
}

// Append extends the stored chain with a block for payload, computing
// the new block digest over the current head.
func (s *ChainStore) Append(payload crypto.Hashable) (BlockRecord, error) {
	record := BlockRecord{
		Index:    s.next,
		Previous: s.head,
		Payload:  payload.Hash(),
	}
	record.Digest = chain.DigestOf(record.Index, record.Payload, record.Previous)

	if err := s.db.Put(blockKey(record.Index), encodeRecord(record)); err != nil {
		return BlockRecord{}, err
	}
	if err := s.db.Put(sizeKey(), sizeValue(s.next+1)); err != nil {
		return BlockRecord{}, err
	}

	s.next++
	s.head = record.Digest

	return record, nil
}

// Get returns the record of the block at index.
func (s *ChainStore) Get(index uint64) (BlockRecord, error) {
	if index >= s.next {
		return BlockRecord{}, fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}

	value, err := s.db.Get(blockKey(index))
	if err != nil {
		return BlockRecord{}, err
	}

	return decodeRecord(index, value)
}

// Head returns the digest of the last block.
func (s *ChainStore) Head() (crypto.Digest, error) {
	if s.next == 0 {
		return nil, ErrEmpty
	}

	return s.head, nil
}

// Len returns the number of stored blocks.
func (s *ChainStore) Len() uint64 {
	return s.next
}

// Verify replays the stored chain in order, recomputing every block
// digest and checking every link, and reports the first mismatch.
func (s *ChainStore) Verify() (chain.Report, error) {
	previous := chain.GenesisDigest()
	for i := uint64(0); i < s.next; i++ {
		record, err := s.Get(i)
		if err != nil {
			return chain.Report{}, err
		}

		if !record.Previous.Equal(previous) {
			return chain.Report{Status: chain.InvalidLink, Index: i}, nil
		}
		if !chain.DigestOf(i, record.Payload, record.Previous).Equal(record.Digest) {
			return chain.Report{Status: chain.InvalidHash, Index: i}, nil
		}

		previous = record.Digest
	}

	return chain.Report{Status: chain.Valid}, nil
}

// Close closes the underlying KvStore.
func (s *ChainStore) Close() error {
	return s.db.Close()
}

func encodeRecord(record BlockRecord) []byte {
	value := make([]byte, 0, 3*crypto.DigestSize)
	value = append(value, record.Digest...)
	value = append(value, record.Previous...)
	value = append(value, record.Payload...)

	return value
}

func decodeRecord(index uint64, value []byte) (BlockRecord, error) {
	if len(value) != 3*crypto.DigestSize {
		return BlockRecord{}, fmt.Errorf("%w: block %d holds %d bytes", ErrInvalidRecord, index, len(value))
	}

	return BlockRecord{
		Index:    index,
		Digest:   crypto.Digest(value[:crypto.DigestSize]),
		Previous: crypto.Digest(value[crypto.DigestSize : 2*crypto.DigestSize]),
		Payload:  crypto.Digest(value[2*crypto.DigestSize:]),
	}, nil
}
