package cryptonight

import "git.gammaspectra.live/P2Pool/cryptonight/types"

// HardwareHash computes a standard CryptoNight hash with AES-NI on a fresh context.
// Callers hashing repeatedly should keep a Context and use Select instead.
func HardwareHash(input []byte) (types.Hash, error) {
	return oneShot(CipherHardware, input)
}

// SoftwareHash computes a standard CryptoNight hash with table AES on a fresh context.
func SoftwareHash(input []byte) (types.Hash, error) {
	return oneShot(CipherSoftware, input)
}

func oneShot(cipher Cipher, input []byte) (sum types.Hash, err error) {
	entry, err := Select(ProfileStandard, cipher, KindSingle)
	if err != nil {
		return sum, err
	}
	ctx, err := entry.NewContext()
	if err != nil {
		return sum, err
	}
	defer func() {
		if closeErr := ctx.Close(); err == nil {
			err = closeErr
		}
	}()
	return entry.Sum(ctx, input), nil
}
