package cryptonight

import (
	"math/bits"

	"git.gammaspectra.live/P2Pool/cryptonight/types"
)

// sumDouble computes two independent hashes with their phases interleaved, so the
// latency of one lane's memory accesses overlaps the other's arithmetic.
// Each lane uses its own half of the scratchpad; results match two sumSingle calls.
func sumDouble(ctx *Context, p *params, soft bool, input0, input1 []byte, out0, out1 *types.Hash) {
	sp0 := ctx.region(p, 2, 0)
	sp1 := ctx.region(p, 2, 1)
	l0, l1 := &ctx.lanes[0], &ctx.lanes[1]

	l0.absorb(input0)
	l1.absorb(input1)
	for i := 0; i < len(sp0); i += 16 {
		l0.fill(sp0[i:i+16], soft)
		l1.fill(sp1[i:i+16], soft)
	}

	a0, b0 := l0.registers()
	a1, b1 := l1.registers()
	var c0, c1 [2]uint64
	mask := p.mask

	for range p.iterations {
		idx0 := (a0[0] & mask) >> 3
		idx1 := (a1[0] & mask) >> 3
		checkAddress(idx0, len(sp0))
		checkAddress(idx1, len(sp1))
		cell0 := (*[2]uint64)(sp0[idx0 : idx0+2])
		cell1 := (*[2]uint64)(sp1[idx1 : idx1+2])

		aesencFor(&c0, cell0, &a0, soft)
		aesencFor(&c1, cell1, &a1, soft)

		cell0[0], cell0[1] = b0[0]^c0[0], b0[1]^c0[1]
		cell1[0], cell1[1] = b1[0]^c1[0], b1[1]^c1[1]

		idx0 = (c0[0] & mask) >> 3
		idx1 = (c1[0] & mask) >> 3
		checkAddress(idx0, len(sp0))
		checkAddress(idx1, len(sp1))
		cell0 = (*[2]uint64)(sp0[idx0 : idx0+2])
		cell1 = (*[2]uint64)(sp1[idx1 : idx1+2])
		d0, d1 := *cell0, *cell1

		hi0, lo0 := bits.Mul64(c0[0], d0[0])
		hi1, lo1 := bits.Mul64(c1[0], d1[0])

		a0[0] += hi0
		a0[1] += lo0
		a1[0] += hi1
		a1[1] += lo1

		*cell0 = a0
		*cell1 = a1

		a0[0] ^= d0[0]
		a0[1] ^= d0[1]
		a1[0] ^= d1[0]
		a1[1] ^= d1[1]

		b0, b1 = c0, c1
	}

	l0.beginImplode()
	l1.beginImplode()
	for i := 0; i < len(sp0); i += 16 {
		l0.implode(sp0[i:i+16], soft)
		l1.implode(sp1[i:i+16], soft)
	}
	l0.finish(out0)
	l1.finish(out1)
}
