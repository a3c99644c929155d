package pow

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.gammaspectra.live/P2Pool/cryptonight/cryptonight"
	"git.gammaspectra.live/P2Pool/cryptonight/types"
)

var testHash = types.MustHashFromString("a084f01d1437a09c6985401b60d43554ae105802c5f5d8a9b3253649c0be6605")

func testEntry(t testing.TB, kind cryptonight.Kind) cryptonight.Entry {
	entry, err := cryptonight.Select(cryptonight.ProfileLite, cryptonight.PreferredCipher(), kind)
	if errors.Is(err, cryptonight.ErrProfileUnavailable) {
		entry, err = cryptonight.Select(cryptonight.ProfileStandard, cryptonight.PreferredCipher(), kind)
	}
	require.NoError(t, err)
	return entry
}

func TestVerifier(t *testing.T) {
	entry, err := cryptonight.Select(cryptonight.ProfileStandard, cryptonight.PreferredCipher(), cryptonight.KindSingle)
	require.NoError(t, err)

	v, err := NewVerifier(entry, 16)
	require.NoError(t, err)
	defer v.Close()

	input := []byte("This is a test")
	difficulty := types.DifficultyFromPoW(testHash)

	sum, ok, err := v.Verify(input, difficulty)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, testHash, sum)

	// second lookup is served from cache
	sum, ok, err = v.Verify(input, types.NewDifficulty(difficulty.Lo+1, difficulty.Hi))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, testHash, sum)

	hits, misses := v.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)

	_, ok, err = v.Verify(input, types.ZeroDifficulty)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifier_Errors(t *testing.T) {
	_, err := NewVerifier(testEntry(t, cryptonight.KindDouble), 0)
	require.ErrorIs(t, err, cryptonight.ErrInvalidVariant)

	v, err := NewVerifier(testEntry(t, cryptonight.KindSingle), 0)
	require.NoError(t, err)
	require.NoError(t, v.Close())
	require.ErrorIs(t, v.Close(), ErrVerifierClosed)

	_, err = v.Hash([]byte("late"))
	require.ErrorIs(t, err, ErrVerifierClosed)
}

func TestVerifier_NoCache(t *testing.T) {
	v, err := NewVerifier(testEntry(t, cryptonight.KindSingle), 0)
	require.NoError(t, err)
	defer v.Close()

	a, err := v.Hash([]byte("uncached"))
	require.NoError(t, err)
	b, err := v.Hash([]byte("uncached"))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	hits, misses := v.Stats()
	assert.Zero(t, hits)
	assert.Equal(t, uint64(2), misses)
}

func TestHashBatch(t *testing.T) {
	inputs := make([][]byte, 5)
	for i := range inputs {
		inputs[i] = fmt.Appendf(nil, "batch input %d", i)
	}

	single := testEntry(t, cryptonight.KindSingle)
	expected := make([]types.Hash, len(inputs))
	ctx, err := single.NewContext()
	require.NoError(t, err)
	for i, input := range inputs {
		expected[i] = single.Sum(ctx, input)
	}
	require.NoError(t, ctx.Close())

	for _, kind := range []cryptonight.Kind{cryptonight.KindSingle, cryptonight.KindDouble} {
		for _, routines := range []int{1, 3} {
			entry := testEntry(t, kind)
			t.Run(fmt.Sprintf("%s/%d", entry, routines), func(t *testing.T) {
				out, err := HashBatch(context.Background(), entry, inputs, routines)
				require.NoError(t, err)
				assert.Equal(t, expected, out)
			})
		}
	}
}

func TestHashBatch_Empty(t *testing.T) {
	out, err := HashBatch(context.Background(), testEntry(t, cryptonight.KindDouble), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestHashBatch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := HashBatch(ctx, testEntry(t, cryptonight.KindSingle), [][]byte{{1}, {2}}, 2)
	require.ErrorIs(t, err, context.Canceled)
}
