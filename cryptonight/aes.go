package cryptonight

import (
	"math/bits"

	"git.gammaspectra.live/P2Pool/cryptonight/cryptonight/internal/sbox"
)

// aesRounds 10 rounds, instead of 14 as in standard AES-256
const aesRounds = 10

// roundKeys holds the expanded key as 128-bit little-endian pairs, as loaded into XMM registers
type roundKeys [aesRounds][2]uint64

// Powers of x mod poly in GF(2). Ten rounds need only the first four.
var powx = [4]byte{0x01, 0x02, 0x04, 0x08}

// Apply the S-box to each byte in w.
func subw(w uint32) uint32 {
	return uint32(sbox.Forward[w>>24])<<24 |
		uint32(sbox.Forward[w>>16&0xff])<<16 |
		uint32(sbox.Forward[w>>8&0xff])<<8 |
		uint32(sbox.Forward[w&0xff])
}

// Rotate
func rotw(w uint32) uint32 { return w<<8 | w>>24 }

// expandKey runs the AES-256 schedule over the 32-byte key, keeping the first ten round keys.
func expandKey(keys *roundKeys, key []uint64) {
	var w [aesRounds * 4]uint32
	for i := range 4 {
		w[2*i] = bits.ReverseBytes32(uint32(key[i]))
		w[2*i+1] = bits.ReverseBytes32(uint32(key[i] >> 32))
	}

	for i := 8; i < len(w); i++ {
		t := w[i-1]
		if i%8 == 0 {
			t = subw(rotw(t)) ^ (uint32(powx[i/8-1]) << 24)
		} else if i%8 == 4 {
			t = subw(t)
		}
		w[i] = w[i-8] ^ t
	}

	for r := range keys {
		keys[r][0] = uint64(bits.ReverseBytes32(w[4*r])) | uint64(bits.ReverseBytes32(w[4*r+1]))<<32
		keys[r][1] = uint64(bits.ReverseBytes32(w[4*r+2])) | uint64(bits.ReverseBytes32(w[4*r+3]))<<32
	}
}

// encryption lookup tables, each entry is a MixColumns column for one S-box output
var te0, te1, te2, te3 = func() (t0, t1, t2, t3 [256]uint32) {
	for i := range 256 {
		s := uint32(sbox.Forward[i])
		s2 := sbox.Mul(s, 2)
		s3 := sbox.Mul(s, 3)
		w := s2<<24 | s<<16 | s<<8 | s3

		t0[i] = bits.ReverseBytes32(w)
		w = w<<24 | w>>8
		t1[i] = bits.ReverseBytes32(w)
		w = w<<24 | w>>8
		t2[i] = bits.ReverseBytes32(w)
		w = w<<24 | w>>8
		t3[i] = bits.ReverseBytes32(w)
	}
	return
}()

// aesencSoft is one AESENC round: ShiftRows, SubBytes, MixColumns, then AddRoundKey.
// dst and src may alias.
func aesencSoft(dst, src, key *[2]uint64) {
	s0, s1 := uint32(src[0]), uint32(src[0]>>32)
	s2, s3 := uint32(src[1]), uint32(src[1]>>32)

	r0 := te0[uint8(s0)] ^ te1[uint8(s1>>8)] ^ te2[uint8(s2>>16)] ^ te3[uint8(s3>>24)]
	r1 := te0[uint8(s1)] ^ te1[uint8(s2>>8)] ^ te2[uint8(s3>>16)] ^ te3[uint8(s0>>24)]
	r2 := te0[uint8(s2)] ^ te1[uint8(s3>>8)] ^ te2[uint8(s0>>16)] ^ te3[uint8(s1>>24)]
	r3 := te0[uint8(s3)] ^ te1[uint8(s0>>8)] ^ te2[uint8(s1>>16)] ^ te3[uint8(s2>>24)]

	dst[0] = (uint64(r0) | uint64(r1)<<32) ^ key[0]
	dst[1] = (uint64(r2) | uint64(r3)<<32) ^ key[1]
}

// aesRoundsSoft encrypts the eight 16-byte blocks with all ten round keys.
func aesRoundsSoft(blocks *[16]uint64, keys *roundKeys) {
	for i := 0; i < len(blocks); i += 2 {
		b := (*[2]uint64)(blocks[i : i+2])
		for r := range keys {
			aesencSoft(b, b, &keys[r])
		}
	}
}

func aesRoundsFor(blocks *[16]uint64, keys *roundKeys, soft bool) {
	if soft {
		aesRoundsSoft(blocks, keys)
		return
	}
	aesRoundsHW(blocks, keys)
}

func aesencFor(dst, src, key *[2]uint64, soft bool) {
	if soft {
		aesencSoft(dst, src, key)
		return
	}
	aesencHW(dst, src, key)
}
