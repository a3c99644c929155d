// Package groestl implements the Grøstl-256 hash used as a CryptoNight finalizer.
package groestl

import (
	"encoding/binary"

	"git.gammaspectra.live/P2Pool/cryptonight/cryptonight/internal/sbox"
)

const (
	// Size of a Grøstl-256 checksum in bytes.
	Size = 32

	// BlockSize of Grøstl-256 in bytes.
	BlockSize = 64

	columns = 8
	rounds  = 10
)

// Digest keeps the chaining state between blocks.
type Digest struct {
	chaining [columns]uint64
	blocks   uint64
	buf      [BlockSize]byte
	nbuf     int
}

// New256 returns a Digest ready to hash.
func New256() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

func (d *Digest) Reset() {
	d.chaining = [columns]uint64{}
	d.chaining[columns-1] = Size * 8
	d.blocks = 0
	d.nbuf = 0
}

func (d *Digest) Size() int { return Size }

func (d *Digest) BlockSize() int { return BlockSize }

func (d *Digest) Write(p []byte) (n int, err error) {
	n = len(p)
	if d.nbuf > 0 {
		nn := copy(d.buf[d.nbuf:], p)
		d.nbuf += nn
		p = p[nn:]
		if d.nbuf == BlockSize {
			d.transform(d.buf[:])
			d.nbuf = 0
		}
	}
	for len(p) >= BlockSize {
		d.transform(p[:BlockSize])
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		d.nbuf = copy(d.buf[:], p)
	}
	return n, nil
}

// Sum appends the checksum to b without altering the running state.
func (d *Digest) Sum(b []byte) []byte {
	d0 := *d
	sum := d0.checkSum()
	return append(b, sum[:]...)
}

func (d *Digest) checkSum() (out [Size]byte) {
	var tmp [BlockSize]byte
	tmp[0] = 0x80

	// pad with 0x80 and zeroes up to the 8-byte block counter
	if d.nbuf > BlockSize-8 {
		_, _ = d.Write(tmp[:BlockSize-d.nbuf])
		_, _ = d.Write(tmp[8:BlockSize])
	} else {
		_, _ = d.Write(tmp[:BlockSize-d.nbuf-8])
	}

	binary.BigEndian.PutUint64(tmp[:], d.blocks+1)
	_, _ = d.Write(tmp[:8])

	if d.nbuf != 0 {
		panic("groestl: padding failed")
	}

	// output transformation
	h := d.chaining
	permute(&h, false)
	for i := range columns {
		d.chaining[i] ^= h[i]
	}

	for i := range columns / 2 {
		binary.BigEndian.PutUint64(out[i*8:], d.chaining[i+columns/2])
	}
	return out
}

// Sum256 returns the Grøstl-256 checksum of data.
func Sum256(data []byte) [Size]byte {
	var d Digest
	d.Reset()
	_, _ = d.Write(data)
	return d.checkSum()
}

// transform compresses one block: h' = P(h ^ m) ^ Q(m) ^ h
func (d *Digest) transform(block []byte) {
	var m, hxm [columns]uint64
	for i := range columns {
		m[i] = binary.BigEndian.Uint64(block[i*8:])
		hxm[i] = d.chaining[i] ^ m[i]
	}

	permute(&hxm, false)
	permute(&m, true)

	for i := range columns {
		d.chaining[i] ^= hxm[i] ^ m[i]
	}
	d.blocks++
}

var (
	shiftP = [8]int{0, 1, 2, 3, 4, 5, 6, 7}
	shiftQ = [8]int{1, 3, 5, 7, 0, 2, 4, 6}
)

// permute runs the P (q == false) or Q (q == true) permutation. Each column
// is stored big endian, row 0 in the most significant byte.
func permute(x *[columns]uint64, q bool) {
	shift := &shiftP
	if q {
		shift = &shiftQ
	}

	for r := range rounds {
		// AddRoundConstant
		for i := range columns {
			if q {
				x[i] ^= ^uint64(0) ^ uint64((i<<4)^r)
			} else {
				x[i] ^= uint64((i<<4)^r) << 56
			}
		}

		// SubBytes
		for i := range columns {
			var col [8]byte
			binary.BigEndian.PutUint64(col[:], x[i])
			for j := range col {
				col[j] = sbox.Forward[col[j]]
			}
			x[i] = binary.BigEndian.Uint64(col[:])
		}

		// ShiftBytes
		old := *x
		for i := range columns {
			var col uint64
			for j := range 8 {
				col = col<<8 | uint64(pickRow(old[(i+shift[j])%columns], j))
			}
			x[i] = col
		}

		// MixBytes
		for i := range columns {
			x[i] = mixColumn(x[i])
		}
	}
}

func mul2(b uint8) uint8 { return (b << 1) ^ (0x1b * ((b >> 7) & 1)) }

// mixColumn multiplies a column by circ(02, 02, 03, 04, 05, 03, 05, 07)
func mixColumn(col uint64) uint64 {
	var in, out [8]uint8
	binary.BigEndian.PutUint64(in[:], col)

	for j := range 8 {
		a0 := in[j]
		a1 := in[(j+1)%8]
		a2 := in[(j+2)%8]
		a3 := in[(j+3)%8]
		a4 := in[(j+4)%8]
		a5 := in[(j+5)%8]
		a6 := in[(j+6)%8]
		a7 := in[(j+7)%8]

		x2 := mul2(a0) ^ mul2(a1)
		x3 := mul2(a2) ^ a2 ^ mul2(a5) ^ a5
		x4 := mul2(mul2(a3))
		x5 := mul2(mul2(a4)) ^ a4 ^ mul2(mul2(a6)) ^ a6
		x7 := mul2(mul2(a7)) ^ mul2(a7) ^ a7

		out[j] = x2 ^ x3 ^ x4 ^ x5 ^ x7
	}
	return binary.BigEndian.Uint64(out[:])
}

func pickRow(col uint64, i int) byte {
	return byte(col >> (8 * (7 - i)))
}
