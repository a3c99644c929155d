// Package sbox generates the Rijndael S-box shared by AES and Groestl.
package sbox

import "math/bits"

// https://csrc.nist.gov/publications/fips/fips197/fips-197.pdf

// Poly is the irreducible polynomial x⁸ + x⁴ + x³ + x + 1.
// Addition of binary polynomials corresponds to xor, and reducing mod Poly
// corresponds to xor with Poly every time a 0x100 bit appears.
const Poly = 1<<8 | 1<<4 | 1<<3 | 1<<1 | 1<<0

// Mul multiplies b and c as GF(2) polynomials modulo Poly.
func Mul(b, c uint32) uint32 {
	i := b
	j := c
	s := uint32(0)
	for k := uint32(1); k < 0x100 && j != 0; k <<= 1 {
		// Invariant: k == 1<<n, i == b * xⁿ

		if j&k != 0 {
			s ^= i
			j ^= k
		}

		i <<= 1
		if i&0x100 != 0 {
			i ^= Poly
		}
	}
	return s
}

// Forward is the FIPS-197 Figure 7 substitution table.
var Forward = func() (sbox [256]byte) {
	var p, q uint8 = 1, 1
	for {
		// multiply p by 3
		if p&0x80 != 0 {
			p ^= (p << 1) ^ 0x1b
		} else {
			p ^= p << 1
		}

		// divide q by 3 (equals multiplication by 0xf6)
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		// affine transformation
		xformed := q ^ bits.RotateLeft8(q, 1) ^ bits.RotateLeft8(q, 2) ^ bits.RotateLeft8(q, 3) ^ bits.RotateLeft8(q, 4)
		sbox[p] = xformed ^ 0x63

		if p == 1 {
			break
		}
	}

	// 0 has no inverse
	sbox[0] = 0x63
	return sbox
}()
