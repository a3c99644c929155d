// Package skein implements Skein-512-256 as used by the CryptoNight finalizer.
//
// Only plain hashing is supported: no key, personalization or tree mode.
package skein

import "encoding/binary"

const (
	// Size of a Skein-512-256 checksum in bytes.
	Size = 32

	// BlockSize of Skein-512 in bytes.
	BlockSize = 64
)

// UBI block types
const (
	typeConfig  uint64 = 4
	typeMessage uint64 = 48
	typeOutput  uint64 = 63
)

const (
	firstBlock uint64 = 1 << 62
	finalBlock uint64 = 1 << 63
)

// schemaID is "SHA3" followed by version 1
const schemaID uint64 = 0x133414853

// iv256 is the chaining value after the Skein-512-256 configuration block
var iv256 = [8]uint64{
	0xCCD044A12FDB3E13, 0xE83590301A79A9EB, 0x55AEA0614F816E6F, 0x2A2767A4AE9B94DB,
	0xEC06025E74DD7683, 0xE7A436CDC4746251, 0xC36FBAF9393AD185, 0x3EEDBA1833EDFC13,
}

// ubi computes h = Threefish(h, tweak, block) ^ block
func ubi(h *[8]uint64, block *[BlockSize]byte, position uint64, flags uint64) {
	var m, c [8]uint64
	for i := range m {
		m[i] = binary.LittleEndian.Uint64(block[i*8:])
	}
	c = m
	encrypt512(&c, h, &[2]uint64{position, flags})
	for i := range h {
		h[i] = c[i] ^ m[i]
	}
}

// configChain derives the chaining value for an output of size bytes.
func configChain(size int) (h [8]uint64) {
	var cfg [BlockSize]byte
	binary.LittleEndian.PutUint64(cfg[0:], schemaID)
	binary.LittleEndian.PutUint64(cfg[8:], uint64(size)*8)
	ubi(&h, &cfg, 32, typeConfig<<56|firstBlock|finalBlock)
	return h
}

// Sum256 returns the Skein-512-256 checksum of msg.
func Sum256(msg []byte) (out [Size]byte) {
	h := iv256
	var block [BlockSize]byte

	flags := typeMessage<<56 | firstBlock
	var position uint64
	for len(msg) > BlockSize {
		copy(block[:], msg[:BlockSize])
		position += BlockSize
		ubi(&h, &block, position, flags)
		flags &^= firstBlock
		msg = msg[BlockSize:]
	}

	// last block, possibly empty, zero padded
	block = [BlockSize]byte{}
	copy(block[:], msg)
	position += uint64(len(msg))
	ubi(&h, &block, position, flags|finalBlock)

	// output stage, counter 0
	block = [BlockSize]byte{}
	ubi(&h, &block, 8, typeOutput<<56|firstBlock|finalBlock)

	for i := range Size / 8 {
		binary.LittleEndian.PutUint64(out[i*8:], h[i])
	}
	return out
}
