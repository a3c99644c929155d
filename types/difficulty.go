package types

import (
	"errors"
	"math/big"
	"math/bits"
	"strconv"
	"strings"

	fasthex "github.com/tmthrgd/go-hex"
	"lukechampine.com/uint128"
)

// Difficulty is an unsigned 128-bit PoW difficulty.
type Difficulty uint128.Uint128

var (
	ZeroDifficulty = Difficulty(uint128.Zero)
	MaxDifficulty  = Difficulty(uint128.Max)
)

func NewDifficulty(lo, hi uint64) Difficulty {
	return Difficulty{Lo: lo, Hi: hi}
}

func DifficultyFrom64(v uint64) Difficulty {
	return NewDifficulty(v, 0)
}

// DifficultyFromString parses 32 big-endian hex characters, as produced by String.
func DifficultyFromString(s string) (Difficulty, error) {
	if len(s) != 32 {
		return ZeroDifficulty, errors.New("types: difficulty must be 32 hex characters")
	}
	var buf [16]byte
	if _, err := fasthex.Decode(buf[:], []byte(s)); err != nil {
		return ZeroDifficulty, err
	}
	var d Difficulty
	for i := range 8 {
		d.Hi = d.Hi<<8 | uint64(buf[i])
		d.Lo = d.Lo<<8 | uint64(buf[8+i])
	}
	return d, nil
}

// ParseDifficulty accepts a decimal number or a 0x prefixed hex number.
func ParseDifficulty(s string) (Difficulty, error) {
	s = strings.TrimSpace(s)
	base := 10
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		s, base = rest, 16
	}
	if s == "" {
		return ZeroDifficulty, errors.New("types: empty difficulty")
	}
	if base == 10 && len(s) <= 19 {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return ZeroDifficulty, err
		}
		return DifficultyFrom64(v), nil
	}
	n, ok := new(big.Int).SetString(s, base)
	if !ok || n.Sign() < 0 || n.BitLen() > 128 {
		return ZeroDifficulty, errors.New("types: invalid difficulty " + strconv.Quote(s))
	}
	return difficultyFromBig(n), nil
}

func difficultyFromBig(n *big.Int) Difficulty {
	lo := new(big.Int).And(n, new(big.Int).SetUint64(^uint64(0)))
	return NewDifficulty(lo.Uint64(), new(big.Int).Rsh(n, 64).Uint64())
}

func (d Difficulty) Big() *big.Int {
	return uint128.Uint128(d).Big()
}

func (d Difficulty) IsZero() bool {
	return d.Lo == 0 && d.Hi == 0
}

func (d Difficulty) Equals(other Difficulty) bool {
	return d == other
}

func (d Difficulty) Cmp(other Difficulty) int {
	return uint128.Uint128(d).Cmp(uint128.Uint128(other))
}

func (d Difficulty) Div(other Difficulty) Difficulty {
	return Difficulty(uint128.Uint128(d).Div(uint128.Uint128(other)))
}

// String is the 32 character big-endian hex form
func (d Difficulty) String() string {
	var buf [16]byte
	for i := range 8 {
		buf[7-i] = byte(d.Hi >> (8 * i))
		buf[15-i] = byte(d.Lo >> (8 * i))
	}
	return fasthex.EncodeToString(buf[:])
}

// StringNumeric is the decimal form
func (d Difficulty) StringNumeric() string {
	return uint128.Uint128(d).String()
}

func (d Difficulty) MarshalJSON() ([]byte, error) {
	if d.Hi == 0 {
		return strconv.AppendUint(nil, d.Lo, 10), nil
	}
	return []byte(`"` + d.StringNumeric() + `"`), nil
}

// UnmarshalJSON accepts a JSON number, a decimal string or a "0x" hex string.
func (d *Difficulty) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	v, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// CheckPoW reports whether pow, read as a little-endian 256-bit integer, times d stays below 2^256.
// A zero difficulty never passes.
func (d Difficulty) CheckPoW(pow Hash) bool {
	if d.IsZero() {
		return false
	}
	h := pow.words()

	var product [6]uint64
	for off, m := range [2]uint64{d.Lo, d.Hi} {
		if m == 0 {
			continue
		}
		var carry uint64
		for i, w := range h {
			hi, lo := bits.Mul64(w, m)
			var c uint64
			lo, c = bits.Add64(lo, product[i+off], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			product[i+off] = lo
			carry = hi
		}
		product[len(h)+off] += carry
	}
	return product[4] == 0 && product[5] == 0
}

var powLimit = new(big.Int).Lsh(big.NewInt(1), 256)

// CheckPoWBig is CheckPoW computed with math/big
func (d Difficulty) CheckPoWBig(pow Hash) bool {
	if d.IsZero() {
		return false
	}
	n := hashToBig(pow)
	n.Mul(n, d.Big())
	return n.Cmp(powLimit) < 0
}

var powMax = new(big.Int).Sub(powLimit, big.NewInt(1))

// DifficultyFromPoW is the highest difficulty pow satisfies, saturating at MaxDifficulty.
func DifficultyFromPoW(pow Hash) Difficulty {
	n := hashToBig(pow)
	if n.Sign() == 0 {
		return MaxDifficulty
	}
	q := new(big.Int).Quo(powMax, n)
	if q.BitLen() > 128 {
		return MaxDifficulty
	}
	return difficultyFromBig(q)
}

func hashToBig(h Hash) *big.Int {
	var be [HashSize]byte
	for i := range h {
		be[HashSize-1-i] = h[i]
	}
	return new(big.Int).SetBytes(be[:])
}
