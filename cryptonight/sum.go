package cryptonight

import (
	"math/bits"

	"git.gammaspectra.live/P2Pool/cryptonight/types"
)

// sumSingle computes one CryptoNight hash of input into out.
//
// Keccak-1600 absorbs the input into a 200-byte state. Its first 32 bytes key ten AES rounds
// that repeatedly encrypt bytes 64..191 of the state to fill the scratchpad (explode).
// The memory-hard loop then alternates one AES round and a 64x64 multiply-add over
// pseudorandom 16-byte scratchpad cells. Finally the scratchpad is folded back into the
// state under a key from state bytes 32..63 (implode), the state is permuted again and
// hashed with one of four finalizers picked by its low two bits.
func sumSingle(ctx *Context, p *params, soft bool, input []byte, out *types.Hash) {
	sp := ctx.region(p, 1, 0)
	l := &ctx.lanes[0]

	l.absorb(input)
	for i := 0; i < len(sp); i += 16 {
		l.fill(sp[i:i+16], soft)
	}

	a, b := l.registers()
	var c, d [2]uint64
	mask := p.mask

	for range p.iterations {
		idx := (a[0] & mask) >> 3
		checkAddress(idx, len(sp))
		cell := (*[2]uint64)(sp[idx : idx+2])
		aesencFor(&c, cell, &a, soft)

		cell[0] = b[0] ^ c[0]
		cell[1] = b[1] ^ c[1]

		idx = (c[0] & mask) >> 3
		checkAddress(idx, len(sp))
		cell = (*[2]uint64)(sp[idx : idx+2])
		d = *cell

		// byteMul
		hi, lo := bits.Mul64(c[0], d[0])

		// byteAdd
		a[0] += hi
		a[1] += lo

		*cell = a

		a[0] ^= d[0]
		a[1] ^= d[1]

		b = c
	}

	l.beginImplode()
	for i := 0; i < len(sp); i += 16 {
		l.implode(sp[i:i+16], soft)
	}
	l.finish(out)
}
