package cryptonight

import (
	"fmt"
	"unsafe"

	"git.gammaspectra.live/P2Pool/cryptonight/cryptonight/internal/keccak"
	"git.gammaspectra.live/P2Pool/cryptonight/types"
	"git.gammaspectra.live/P2Pool/cryptonight/utils"
)

// scratchpadAlign every scratchpad address is 16-byte aligned
const scratchpadAlign = 16

// lane per-hash state carried across the pipeline phases
type lane struct {
	state  [keccak.StateSize / 8]uint64
	blocks [16]uint64 // running 128-byte chunk, bytes 64..191 of state
	keys   roundKeys
}

// Context owns the scratchpad and working state for up to two concurrent hashes.
// It is reused between calls and must not be shared between goroutines.
type Context struct {
	profile Profile
	ratio   int

	memory     []byte
	scratchpad []uint64
	release    func([]byte) error

	lanes [2]lane
}

// NewContext allocates a scratchpad of ratio times the profile memory size.
// Ratio 2 is required by the double pipeline.
func NewContext(profile Profile, ratio int) (*Context, error) {
	if !profile.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidVariant, profile)
	}
	if !profile.available() {
		return nil, fmt.Errorf("%w: %s", ErrProfileUnavailable, profile)
	}
	if ratio != 1 && ratio != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRatio, ratio)
	}

	size := profile.MemorySize() * ratio
	mem, release, err := allocate(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrAllocation, size, err)
	}
	if uintptr(unsafe.Pointer(unsafe.SliceData(mem)))%scratchpadAlign != 0 {
		_ = release(mem)
		return nil, fmt.Errorf("%w: misaligned scratchpad", ErrAllocation)
	}

	utils.Debugf("CryptoNight", "allocated %s scratchpad, %d bytes x%d", profile, profile.MemorySize(), ratio)

	return &Context{
		profile: profile,
		ratio:   ratio,
		memory:  mem,
		// #nosec G103 -- aligned above, length is a multiple of 8
		scratchpad: unsafe.Slice((*uint64)(unsafe.Pointer(unsafe.SliceData(mem))), size/8),
		release:    release,
	}, nil
}

func (ctx *Context) Profile() Profile { return ctx.profile }

func (ctx *Context) Ratio() int { return ctx.ratio }

// Size of the scratchpad in bytes, zero once closed
func (ctx *Context) Size() int { return len(ctx.memory) }

// Close releases the scratchpad. Closing twice returns ErrContextClosed.
func (ctx *Context) Close() error {
	if ctx.memory == nil {
		return ErrContextClosed
	}
	mem := ctx.memory
	ctx.memory, ctx.scratchpad = nil, nil
	ctx.lanes = [2]lane{}
	if err := ctx.release(mem); err != nil {
		return fmt.Errorf("cryptonight: release scratchpad: %w", err)
	}
	return nil
}

// region returns the scratchpad words for lane i of a pipeline using p.
// It panics when the context cannot hold ways hashes of that profile.
func (ctx *Context) region(p *params, ways, i int) []uint64 {
	words := p.memory / 8
	if ctx.scratchpad == nil {
		panic("cryptonight: use of closed context")
	}
	if len(ctx.scratchpad) < ways*words {
		panic(fmt.Sprintf("cryptonight: context scratchpad of %d bytes too small for %d x %d bytes", len(ctx.memory), ways, p.memory))
	}
	return ctx.scratchpad[i*words : (i+1)*words : (i+1)*words]
}

// absorb hashes input with Keccak-1600 and prepares the explode phase.
func (l *lane) absorb(input []byte) {
	keccak.Sum1600(&l.state, input)
	expandKey(&l.keys, l.state[:4])
	l.blocks = [16]uint64(l.state[8:24])
}

// fill encrypts the running blocks and stores them into chunk.
func (l *lane) fill(chunk []uint64, soft bool) {
	aesRoundsFor(&l.blocks, &l.keys, soft)
	copy(chunk, l.blocks[:])
}

// registers returns the initial a and b mixing registers.
func (l *lane) registers() (a, b [2]uint64) {
	a = [2]uint64{l.state[0] ^ l.state[4], l.state[1] ^ l.state[5]}
	b = [2]uint64{l.state[2] ^ l.state[6], l.state[3] ^ l.state[7]}
	return a, b
}

// beginImplode reloads the running blocks and keys from state words 4..7.
func (l *lane) beginImplode() {
	expandKey(&l.keys, l.state[4:8])
	l.blocks = [16]uint64(l.state[8:24])
}

// implode folds one scratchpad chunk into the running blocks.
func (l *lane) implode(chunk []uint64, soft bool) {
	for j := range l.blocks {
		l.blocks[j] ^= chunk[j]
	}
	aesRoundsFor(&l.blocks, &l.keys, soft)
}

// finish writes the blocks back, permutes and runs the selected final hash.
func (l *lane) finish(out *types.Hash) {
	copy(l.state[8:24], l.blocks[:])
	keccak.F1600(&l.state)
	finalHash(&l.state, out)
}
