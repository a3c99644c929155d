// Package jh implements JH-256, one of the CryptoNight finalizers.
//
// The state is kept as 256 4-bit elements, in the grouped form of the
// reference description. Only the finalization of a single 200-byte buffer
// goes through it per hash, so table-free code is preferred over speed.
package jh

import "encoding/binary"

const (
	// Size of a JH-256 checksum in bytes.
	Size = 32

	// BlockSize of JH in bytes.
	BlockSize = 64

	rounds = 42
)

var sboxes = [2][16]byte{
	{9, 0, 4, 11, 13, 12, 3, 15, 1, 10, 2, 6, 7, 5, 8, 14},
	{3, 12, 6, 13, 5, 7, 1, 9, 15, 2, 0, 4, 11, 10, 14, 8},
}

// first round constant, the fractional part of √2 as 64 nibbles
var roundConstantZero = func() (rc [64]byte) {
	const hexDigits = "6a09e667f3bcc908b2fb1366ea957d3e3adec17512775099da2f590b0667322a"
	for i := range rc {
		c := hexDigits[i]
		if c >= 'a' {
			rc[i] = c - 'a' + 10
		} else {
			rc[i] = c - '0'
		}
	}
	return rc
}()

// roundConstants are derived by iterating the 6-dimensional round with zero constants
var roundConstants = func() (rcs [rounds][64]byte) {
	rc := roundConstantZero
	for r := range rounds {
		rcs[r] = rc

		var tem [64]byte
		for i := range tem {
			tem[i] = sboxes[0][rc[i]]
		}
		permuteLayer(tem[:], rc[:])
	}
	return rcs
}()

// linear transformation over GF(2^4) with x⁴ + x + 1: b ^= 2a, a ^= 2b
func linear(a, b *byte) {
	*b ^= ((*a << 1) ^ (*a >> 3) ^ ((*a >> 2) & 2)) & 0xf
	*a ^= ((*b << 1) ^ (*b >> 3) ^ ((*b >> 2) & 2)) & 0xf
}

// permuteLayer applies the MDS layer to tem then the P_d permutation into dst.
func permuteLayer(tem, dst []byte) {
	n := len(tem)
	for i := 0; i < n; i += 2 {
		linear(&tem[i], &tem[i+1])
	}

	// π_d
	for i := 0; i < n; i += 4 {
		tem[i+2], tem[i+3] = tem[i+3], tem[i+2]
	}

	// P'_d
	half := n / 2
	for i := range half {
		dst[i] = tem[i*2]
		dst[i+half] = tem[i*2+1]
	}

	// φ_d
	for i := half; i < n; i += 2 {
		dst[i], dst[i+1] = dst[i+1], dst[i]
	}
}

// State is a running JH-256 computation.
type State struct {
	h          [128]byte
	buffer     [BlockSize]byte
	buffered   int
	databitlen uint64
}

// New256 returns a State ready to hash.
func New256() *State {
	s := new(State)
	s.Reset()
	return s
}

func (s *State) Reset() {
	s.h = [128]byte{}
	binary.BigEndian.PutUint16(s.h[:], Size*8)
	s.buffer = [BlockSize]byte{}
	s.buffered = 0
	s.databitlen = 0
	s.f8()
}

func (s *State) Size() int { return Size }

func (s *State) BlockSize() int { return BlockSize }

func (s *State) Write(p []byte) (n int, err error) {
	n = len(p)
	s.databitlen += uint64(n) * 8

	if s.buffered > 0 {
		nn := copy(s.buffer[s.buffered:], p)
		s.buffered += nn
		p = p[nn:]
		if s.buffered == BlockSize {
			s.f8()
			s.buffered = 0
		}
	}
	for len(p) >= BlockSize {
		copy(s.buffer[:], p[:BlockSize])
		s.f8()
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		s.buffered = copy(s.buffer[:], p)
	}
	return n, nil
}

// Sum appends the checksum to b without altering the running state.
func (s *State) Sum(b []byte) []byte {
	s0 := *s
	sum := s0.checkSum()
	return append(b, sum[:]...)
}

func (s *State) checkSum() (out [Size]byte) {
	if s.buffered == 0 {
		// one block: 0x80, zeroes, length
		s.buffer = [BlockSize]byte{0x80}
		binary.BigEndian.PutUint64(s.buffer[BlockSize-8:], s.databitlen)
		s.f8()
	} else {
		// close the partial block, then a block holding the length
		clear(s.buffer[s.buffered:])
		s.buffer[s.buffered] = 0x80
		s.f8()

		s.buffer = [BlockSize]byte{}
		binary.BigEndian.PutUint64(s.buffer[BlockSize-8:], s.databitlen)
		s.f8()
	}

	copy(out[:], s.h[128-Size:])
	return out
}

// Sum256 returns the JH-256 checksum of data.
func Sum256(data []byte) [Size]byte {
	var s State
	s.Reset()
	_, _ = s.Write(data)
	return s.checkSum()
}

// f8 is the compression function: H = E8(H ^ M||0) ^ 0||M
func (s *State) f8() {
	for i := range BlockSize {
		s.h[i] ^= s.buffer[i]
	}
	s.e8()
	for i := range BlockSize {
		s.h[i+BlockSize] ^= s.buffer[i]
	}
}

func bit(b []byte, i int) byte {
	return (b[i>>3] >> (7 - (i & 7))) & 1
}

// e8 groups H into 4-bit elements, runs the rounds, then degroups.
func (s *State) e8() {
	var a, tem [256]byte

	for i := range 256 {
		tem[i] = bit(s.h[:], i)<<3 | bit(s.h[:], i+256)<<2 | bit(s.h[:], i+512)<<1 | bit(s.h[:], i+768)
	}
	for i := range 128 {
		a[i*2] = tem[i]
		a[i*2+1] = tem[i+128]
	}

	for r := range rounds {
		rc := &roundConstants[r]
		for i := range 256 {
			sel := (rc[i>>2] >> (3 - (i & 3))) & 1
			tem[i] = sboxes[sel][a[i]]
		}
		permuteLayer(tem[:], a[:])
	}

	for i := range 128 {
		tem[i] = a[i*2]
		tem[i+128] = a[i*2+1]
	}
	s.h = [128]byte{}
	for i := range 256 {
		shift := 7 - (i & 7)
		s.h[i>>3] |= ((tem[i] >> 3) & 1) << shift
		s.h[(i+256)>>3] |= ((tem[i] >> 2) & 1) << shift
		s.h[(i+512)>>3] |= ((tem[i] >> 1) & 1) << shift
		s.h[(i+768)>>3] |= (tem[i] & 1) << shift
	}
}
