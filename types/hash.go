package types

import (
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"

	fasthex "github.com/tmthrgd/go-hex"
)

// HashSize of a CryptoNight digest
const HashSize = 32

var (
	ErrHashSize = errors.New("types: hash must be 32 bytes")
	ErrHashType = errors.New("types: unsupported hash source type")
)

// Hash is a 32-byte CryptoNight output. As a PoW value it is read as a 256-bit little-endian integer.
//
//nolint:recvcheck
type Hash [HashSize]byte

var ZeroHash Hash

func MustHashFromString(s string) Hash {
	h, err := HashFromString(s)
	if err != nil {
		panic(err)
	}
	return h
}

// HashFromString decodes 64 hex characters.
func HashFromString(s string) (h Hash, err error) {
	if len(s) != HashSize*2 {
		return h, fmt.Errorf("%w: got %d hex characters", ErrHashSize, len(s))
	}
	if _, err = fasthex.Decode(h[:], []byte(s)); err != nil {
		return ZeroHash, err
	}
	return h, nil
}

// Compare orders hashes as 256-bit little-endian integers, the way PoW values compare
func (h Hash) Compare(other Hash) int {
	a, b := h.words(), other.words()
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// words splits the hash into 64-bit limbs, least significant first
func (h Hash) words() (w [HashSize / 8]uint64) {
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(h[i*8:])
	}
	return w
}

func (h Hash) Slice() []byte {
	return h[:]
}

func (h Hash) String() string {
	return fasthex.EncodeToString(h[:])
}

// Uint64 of the lowest limb
func (h Hash) Uint64() uint64 {
	return binary.LittleEndian.Uint64(h[:])
}

func (h Hash) MarshalJSON() ([]byte, error) {
	var buf [HashSize*2 + 2]byte
	buf[0] = '"'
	buf[HashSize*2+1] = '"'
	fasthex.Encode(buf[1:], h[:])
	return buf[:], nil
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" || string(b) == `""` {
		return nil
	}
	if len(b) != HashSize*2+2 || b[0] != '"' || b[len(b)-1] != '"' {
		return ErrHashSize
	}
	_, err := fasthex.Decode(h[:], b[1:len(b)-1])
	return err
}

func (h *Hash) Scan(src any) error {
	switch buf := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(buf) == 0 {
			return nil
		}
		if len(buf) != HashSize {
			return ErrHashSize
		}
		copy(h[:], buf)
		return nil
	default:
		return ErrHashType
	}
}

func (h *Hash) Value() (driver.Value, error) {
	if *h == ZeroHash {
		return nil, nil //nolint:nilnil
	}
	return h[:], nil
}

// Bytes is arbitrary binary data, hex encoded in JSON
//
//nolint:recvcheck
type Bytes []byte

func (b Bytes) MarshalJSON() ([]byte, error) {
	buf := make([]byte, len(b)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:], b)
	return buf, nil
}

func (b Bytes) String() string {
	return fasthex.EncodeToString(b)
}

func (b *Bytes) UnmarshalJSON(buf []byte) error {
	if len(buf) < 2 || (len(buf)%2) != 0 || buf[0] != '"' || buf[len(buf)-1] != '"' {
		return errors.New("types: invalid hex bytes")
	}

	*b = make(Bytes, (len(buf)-2)/2)
	_, err := fasthex.Decode(*b, buf[1:len(buf)-1])
	return err
}
