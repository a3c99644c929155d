package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.gammaspectra.live/P2Pool/cryptonight/cryptonight"
	"git.gammaspectra.live/P2Pool/cryptonight/types"
	"git.gammaspectra.live/P2Pool/cryptonight/utils"
)

const (
	testInput    = "This is a test"
	testInputHex = "5468697320697320612074657374"
	testHash     = "a084f01d1437a09c6985401b60d43554ae105802c5f5d8a9b3253649c0be6605"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"hash", "bench", "variants", "verify"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("log-file"))
}

func TestHashCommand(t *testing.T) {
	out, err := run(t, "hash", "--cipher", "software", testInput)
	require.NoError(t, err)
	assert.Equal(t, testHash+"  "+testInput+"\n", out)

	out, err = run(t, "hash", "--cipher", "software", "--hex", "--json", testInputHex)
	require.NoError(t, err)

	var result hashResult
	require.NoError(t, utils.UnmarshalJSON([]byte(out), &result))
	assert.Equal(t, testHash, result.Hash.String())
	assert.Equal(t, testInput, string(result.Input))
}

func TestHashCommand_Double(t *testing.T) {
	out, err := run(t, "hash", "--profile", "lite", "--cipher", "software", "a", "b", "a")
	if err != nil {
		require.ErrorIs(t, err, cryptonight.ErrProfileUnavailable)
		t.Skip(err)
	}
	single := strings.Split(strings.TrimSpace(out), "\n")

	out, err = run(t, "hash", "--profile", "lite", "--cipher", "software", "--double", "--threads", "2", "a", "b", "a")
	require.NoError(t, err)
	double := strings.Split(strings.TrimSpace(out), "\n")

	require.Len(t, single, 3)
	assert.Equal(t, single, double)
	assert.Equal(t, single[0], single[2])
}

func TestHashCommand_Errors(t *testing.T) {
	_, err := run(t, "hash")
	require.Error(t, err)

	_, err = run(t, "hash", "--hex", "zz")
	require.Error(t, err)

	_, err = run(t, "hash", "--profile", "heavy", "x")
	require.ErrorIs(t, err, cryptonight.ErrInvalidVariant)
}

func TestEnvironmentFlags(t *testing.T) {
	t.Setenv("CNHASH_PROFILE", "bogus")
	_, err := run(t, "hash", "x")
	require.ErrorIs(t, err, cryptonight.ErrInvalidVariant)

	// command line wins over the environment
	t.Setenv("CNHASH_CIPHER", "software")
	out, err := run(t, "hash", "--profile", "standard", testInput)
	require.NoError(t, err)
	assert.Contains(t, out, testHash)

	t.Setenv("CNHASH_THREADS", "many")
	_, err = run(t, "hash", "--profile", "standard", testInput)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CNHASH_THREADS")
}

func TestVariantsCommand(t *testing.T) {
	out, err := run(t, "variants", "--json")
	require.NoError(t, err)

	var infos []variantInfo
	require.NoError(t, utils.UnmarshalJSON([]byte(out), &infos))
	require.Len(t, infos, len(cryptonight.Table()))
	for i, info := range infos {
		assert.Equal(t, i, info.Index)
		if info.Cipher == "software" {
			assert.True(t, info.Available, info.Name)
		}
	}
	assert.Equal(t, "standard/hardware/single", infos[0].Name)
	assert.Equal(t, 2*1024*1024, infos[0].Memory)

	out, err = run(t, "variants")
	require.NoError(t, err)
	assert.Contains(t, out, "standard/software/double")
}

func TestVerifyCommand(t *testing.T) {
	out, err := run(t, "verify", "--cipher", "software", "--difficulty", "1", testInputHex)
	require.NoError(t, err)
	assert.Contains(t, out, "hash "+testHash)
	assert.Contains(t, out, "valid true")

	expected := types.DifficultyFromPoW(types.MustHashFromString(testHash))
	assert.Contains(t, out, "pow difficulty "+expected.StringNumeric())

	out, err = run(t, "verify", "--cipher", "software", "--json", "-D", "0xffffffffffffffffffffffffffffffff", testInputHex)
	require.ErrorIs(t, err, errInsufficientDifficulty)

	var result verifyResult
	require.NoError(t, utils.UnmarshalJSON([]byte(out), &result))
	assert.False(t, result.Valid)
	assert.Equal(t, types.MaxDifficulty, result.Difficulty)
	assert.Equal(t, expected, result.PoWDifficulty)

	_, err = run(t, "verify", testInputHex)
	require.Error(t, err)
}

func TestBench(t *testing.T) {
	entry, err := cryptonight.Select(cryptonight.ProfileLite, cryptonight.CipherSoftware, cryptonight.KindDouble)
	if err != nil {
		entry, err = cryptonight.Select(cryptonight.ProfileStandard, cryptonight.CipherSoftware, cryptonight.KindDouble)
	}
	require.NoError(t, err)

	result, err := runBench(t.Context(), entry, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, entry.String(), result.Variant)
	assert.Equal(t, 3, result.Hashes)
	assert.Equal(t, 2, result.Threads)
	assert.Positive(t, result.HashRate)

	inputs, err := benchInputs(2)
	require.NoError(t, err)
	assert.Len(t, inputs[0], blobSize)
	assert.NotEqual(t, inputs[0], inputs[1])
	assert.Equal(t, inputs[0][:nonceOffset], inputs[1][:nonceOffset])
}
