package cryptonight

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContext(t *testing.T) {
	for _, profile := range []Profile{ProfileStandard, ProfileLite} {
		if !profile.available() {
			continue
		}
		for _, ratio := range []int{1, 2} {
			ctx, err := NewContext(profile, ratio)
			require.NoError(t, err)

			assert.Equal(t, profile, ctx.Profile())
			assert.Equal(t, ratio, ctx.Ratio())
			assert.Equal(t, profile.MemorySize()*ratio, ctx.Size())
			assert.Len(t, ctx.scratchpad, ctx.Size()/8)
			assert.Zero(t, uintptr(unsafe.Pointer(unsafe.SliceData(ctx.scratchpad)))%scratchpadAlign)

			require.NoError(t, ctx.Close())
			assert.Zero(t, ctx.Size())
		}
	}
}

func TestNewContext_Errors(t *testing.T) {
	for _, ratio := range []int{-1, 0, 3, 4} {
		_, err := NewContext(ProfileStandard, ratio)
		require.ErrorIs(t, err, ErrInvalidRatio, "ratio %d", ratio)
	}

	_, err := NewContext(Profile(7), 1)
	require.ErrorIs(t, err, ErrInvalidVariant)
}

func TestContext_CloseTwice(t *testing.T) {
	ctx, err := NewContext(ProfileStandard, 1)
	require.NoError(t, err)
	require.NoError(t, ctx.Close())
	require.ErrorIs(t, ctx.Close(), ErrContextClosed)
}

func TestContext_Region(t *testing.T) {
	ctx, err := NewContext(ProfileStandard, 2)
	require.NoError(t, err)
	defer ctx.Close()

	p := &profiles[ProfileStandard]
	lane0 := ctx.region(p, 2, 0)
	lane1 := ctx.region(p, 2, 1)
	require.Len(t, lane0, p.memory/8)
	require.Len(t, lane1, p.memory/8)

	// halves are disjoint and adjacent
	assert.Equal(t, unsafe.Pointer(unsafe.SliceData(ctx.scratchpad)), unsafe.Pointer(unsafe.SliceData(lane0)))
	assert.Equal(t, unsafe.Add(unsafe.Pointer(unsafe.SliceData(lane0)), p.memory), unsafe.Pointer(unsafe.SliceData(lane1)))
	assert.Equal(t, cap(lane0), len(lane0))

	if ProfileLite.available() {
		// a standard context can host lite lanes
		assert.NotPanics(t, func() { ctx.region(&profiles[ProfileLite], 2, 1) })
	}
	assert.Panics(t, func() { ctx.region(p, 3, 0) })
}

func TestProfile_AddressMask(t *testing.T) {
	for _, profile := range []Profile{ProfileStandard, ProfileLite} {
		p := profiles[profile]
		assert.Equal(t, uint64(p.memory-16), p.mask, profile.String())
		assert.Zero(t, p.mask&0xF, profile.String())

		words := p.memory / 8
		for _, a := range []uint64{0, 1, 15, 16, 0xFFFFFFFFFFFFFFFF, 0x123456789abcdef0, uint64(p.memory), uint64(p.memory) - 1} {
			idx := (a & p.mask) >> 3
			assert.Zero(t, idx%2, "address %#x", a)
			assert.LessOrEqual(t, idx+2, uint64(words), "address %#x", a)
		}
	}
}

func TestProfile_Parameters(t *testing.T) {
	assert.Equal(t, 0x80000, ProfileStandard.Iterations())
	assert.Equal(t, 2*1024*1024, ProfileStandard.MemorySize())
	assert.Equal(t, uint64(0x1FFFF0), ProfileStandard.AddressMask())

	assert.Equal(t, 0x40000, ProfileLite.Iterations())
	assert.Equal(t, 1024*1024, ProfileLite.MemorySize())
	assert.Equal(t, uint64(0xFFFF0), ProfileLite.AddressMask())
}

func TestHardwareHash(t *testing.T) {
	const input, want = "This is a test", "a084f01d1437a09c6985401b60d43554ae105802c5f5d8a9b3253649c0be6605"

	sum, err := SoftwareHash([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, want, sum.String())

	sum, err = HardwareHash([]byte(input))
	if !HardwareAES() {
		require.ErrorIs(t, err, ErrHardwareUnavailable)
		return
	}
	require.NoError(t, err)
	assert.Equal(t, want, sum.String())
}
