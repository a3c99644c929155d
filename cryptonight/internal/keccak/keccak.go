// Package keccak implements the Keccak-f[1600] permutation and the original
// Keccak sponge that keeps the whole 1600-bit state as output.
package keccak

import (
	"encoding/binary"
	"math/bits"
)

const (
	// Rounds of Keccak-f[1600]
	Rounds = 24

	// Rate of the sponge in bytes, (1600 - 2*256) / 8
	Rate = 136

	// StateSize in bytes
	StateSize = 200
)

var roundConstants = [Rounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

// rho rotation offsets, in pi lane order
var rotations = [24]int{1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14, 27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44}

// pi lane order starting from lane 1
var lanes = [24]int{10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4, 15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1}

// F1600 applies the Keccak-f[1600] permutation to a.
func F1600(a *[25]uint64) {
	var bc [5]uint64

	for round := range Rounds {
		// theta
		for i := range 5 {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := range 5 {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}

		// rho and pi
		t := a[1]
		for i, j := range lanes {
			bc[0] = a[j]
			a[j] = bits.RotateLeft64(t, rotations[i])
			t = bc[0]
		}

		// chi
		for j := 0; j < 25; j += 5 {
			bc[0], bc[1], bc[2], bc[3], bc[4] = a[j], a[j+1], a[j+2], a[j+3], a[j+4]
			for i := range 5 {
				a[j+i] ^= (^bc[(i+1)%5]) & bc[(i+2)%5]
			}
		}

		// iota
		a[0] ^= roundConstants[round]
	}
}

func xorIn(a *[25]uint64, data []byte) {
	n := len(data) / 8
	for i := range n {
		a[i] ^= binary.LittleEndian.Uint64(data[i*8:])
	}
	// trailing bytes go into the next lane, little endian
	for i := n * 8; i < len(data); i++ {
		a[i/8] ^= uint64(data[i]) << (8 * (i % 8))
	}
}

// Sum1600 absorbs data with the original Keccak padding (0x01 .. 0x80) and
// writes the full permuted state to a. Any previous content of a is discarded.
func Sum1600(a *[25]uint64, data []byte) {
	*a = [25]uint64{}

	for len(data) >= Rate {
		xorIn(a, data[:Rate])
		F1600(a)
		data = data[Rate:]
	}

	xorIn(a, data)
	a[len(data)/8] ^= 0x01 << (8 * (len(data) % 8))
	a[(Rate-1)/8] ^= 0x80 << (8 * ((Rate - 1) % 8))
	F1600(a)
}

// Bytes serializes the state in little endian lane order.
func Bytes(a *[25]uint64) (out [StateSize]byte) {
	for i, v := range a {
		binary.LittleEndian.PutUint64(out[i*8:], v)
	}
	return out
}
