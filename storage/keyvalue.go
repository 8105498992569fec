package storage

import "encoding/binary"

const (
	sizeConstantKey = "s"
	blockPrefix     = "b"
)

func blockKey(index uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, index)

	return append([]byte(blockPrefix), key...)
}

func sizeKey() []byte {
	return []byte(sizeConstantKey)
}

func sizeValue(size uint64) []byte {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, size)

	return value
}
