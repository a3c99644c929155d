package skein

import "math/bits"

// c240 is the Threefish key schedule parity constant
const c240 = 0x1bd11bdaa9fc1a22

const threefishRounds = 72

// rotations for Threefish-512, indexed by round mod 8 then pair
var rotations = [8][4]int{
	{46, 36, 19, 37},
	{33, 27, 14, 42},
	{17, 49, 36, 39},
	{44, 9, 54, 56},
	{39, 30, 34, 24},
	{13, 50, 10, 17},
	{25, 29, 39, 43},
	{8, 35, 56, 22},
}

// encrypt512 runs Threefish-512 over block in place with the given key and tweak.
func encrypt512(block *[8]uint64, key *[8]uint64, tweak *[2]uint64) {
	var k [9]uint64
	copy(k[:8], key[:])
	k[8] = c240
	for _, v := range key {
		k[8] ^= v
	}
	t := [3]uint64{tweak[0], tweak[1], tweak[0] ^ tweak[1]}

	v := *block

	injectKey := func(s int) {
		for i := range 8 {
			v[i] += k[(s+i)%9]
		}
		v[5] += t[s%3]
		v[6] += t[(s+1)%3]
		v[7] += uint64(s)
	}

	for d := range threefishRounds {
		if d%4 == 0 {
			injectKey(d / 4)
		}

		r := &rotations[d%8]
		for j := range 4 {
			v[2*j] += v[2*j+1]
			v[2*j+1] = bits.RotateLeft64(v[2*j+1], r[j]) ^ v[2*j]
		}

		// word permutation π = 2 1 4 7 6 5 0 3
		v = [8]uint64{v[2], v[1], v[4], v[7], v[6], v[5], v[0], v[3]}
	}
	injectKey(threefishRounds / 4)

	*block = v
}
