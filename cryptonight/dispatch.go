package cryptonight

import (
	"fmt"

	"git.gammaspectra.live/P2Pool/cryptonight/types"
)

// Func hashes Ways inputs into out using ctx.
type Func func(ctx *Context, inputs [][]byte, out []types.Hash)

// Entry is one immutable row of the dispatch table.
type Entry struct {
	profile Profile
	cipher  Cipher
	kind    Kind
}

func (e Entry) Profile() Profile { return e.profile }
func (e Entry) Cipher() Cipher   { return e.cipher }
func (e Entry) Kind() Kind       { return e.kind }

// Index is the position of the entry in the full table, lite*4 + software*2 + double.
func (e Entry) Index() int {
	return int(e.profile)*4 + int(e.cipher)*2 + int(e.kind)
}

// Ways is the number of inputs hashed per call
func (e Entry) Ways() int { return e.kind.Ratio() }

// Available reports whether the entry can run on this CPU.
func (e Entry) Available() bool {
	return e.cipher == CipherSoftware || hardwareAES
}

func (e Entry) String() string {
	return fmt.Sprintf("%s/%s/%s", e.profile, e.cipher, e.kind)
}

// NewContext allocates a context sized for this entry.
func (e Entry) NewContext() (*Context, error) {
	return NewContext(e.profile, e.kind.Ratio())
}

// Func returns the entry as a plain callable.
func (e Entry) Func() Func {
	return e.Hash
}

// Hash runs the pipeline. len(inputs) must equal Ways and out must hold as many hashes.
func (e Entry) Hash(ctx *Context, inputs [][]byte, out []types.Hash) {
	if len(inputs) != e.Ways() || len(out) < e.Ways() {
		panic(fmt.Sprintf("cryptonight: %s takes %d inputs, got %d inputs and %d outputs", e, e.Ways(), len(inputs), len(out)))
	}
	if e.kind == KindDouble {
		out[0], out[1] = e.SumDouble(ctx, inputs[0], inputs[1])
		return
	}
	out[0] = e.Sum(ctx, inputs[0])
}

// Sum hashes a single input. It panics on a double entry.
func (e Entry) Sum(ctx *Context, input []byte) (sum types.Hash) {
	if e.kind != KindSingle {
		panic(fmt.Sprintf("cryptonight: Sum called on %s", e))
	}
	e.mustBeAvailable()
	sumSingle(ctx, &profiles[e.profile], e.cipher == CipherSoftware, input, &sum)
	return sum
}

// SumDouble hashes two inputs together. It panics on a single entry.
func (e Entry) SumDouble(ctx *Context, input0, input1 []byte) (sum0, sum1 types.Hash) {
	if e.kind != KindDouble {
		panic(fmt.Sprintf("cryptonight: SumDouble called on %s", e))
	}
	e.mustBeAvailable()
	sumDouble(ctx, &profiles[e.profile], e.cipher == CipherSoftware, input0, input1, &sum0, &sum1)
	return sum0, sum1
}

func (e Entry) mustBeAvailable() {
	if !e.Available() {
		panic(ErrHardwareUnavailable)
	}
}

var table = func() (entries []Entry) {
	for _, profile := range [...]Profile{ProfileStandard, ProfileLite} {
		if !profile.available() {
			continue
		}
		for _, cipher := range [...]Cipher{CipherHardware, CipherSoftware} {
			for _, kind := range [...]Kind{KindSingle, KindDouble} {
				entries = append(entries, Entry{profile: profile, cipher: cipher, kind: kind})
			}
		}
	}
	return entries
}()

// Table returns every compiled-in entry ordered by Index, including those unavailable on this CPU.
func Table() []Entry {
	return append([]Entry(nil), table...)
}

// HardwareAES reports whether the CPU supports AES-NI.
func HardwareAES() bool {
	return hardwareAES
}

// PreferredCipher is hardware when available, software otherwise.
func PreferredCipher() Cipher {
	if hardwareAES {
		return CipherHardware
	}
	return CipherSoftware
}

// Select returns the entry for the combination. It never falls back to another cipher.
func Select(profile Profile, cipher Cipher, kind Kind) (Entry, error) {
	if !profile.valid() || !cipher.valid() || !kind.valid() {
		return Entry{}, fmt.Errorf("%w: %s/%s/%s", ErrInvalidVariant, profile, cipher, kind)
	}
	if !profile.available() {
		return Entry{}, fmt.Errorf("%w: %s", ErrProfileUnavailable, profile)
	}
	for _, e := range table {
		if e.profile == profile && e.cipher == cipher && e.kind == kind {
			if !e.Available() {
				return Entry{}, fmt.Errorf("%w: %s", ErrHardwareUnavailable, e)
			}
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s/%s/%s", ErrInvalidVariant, profile, cipher, kind)
}
