package cryptonight

import (
	"github.com/dchest/blake256"

	"git.gammaspectra.live/P2Pool/cryptonight/cryptonight/internal/groestl"
	"git.gammaspectra.live/P2Pool/cryptonight/cryptonight/internal/jh"
	"git.gammaspectra.live/P2Pool/cryptonight/cryptonight/internal/keccak"
	"git.gammaspectra.live/P2Pool/cryptonight/cryptonight/internal/skein"
	"git.gammaspectra.live/P2Pool/cryptonight/types"
)

// finalHash selects BLAKE-256, Groestl-256, JH-256 or Skein-512-256 by the low two bits of the state
// and hashes the full 200-byte state into out.
func finalHash(state *[keccak.StateSize / 8]uint64, out *types.Hash) {
	buf := keccak.Bytes(state)
	switch state[0] & 0x03 {
	case 0:
		digest := blake256.New()
		_, _ = digest.Write(buf[:])
		digest.Sum(out[:0])
	case 1:
		*out = groestl.Sum256(buf[:])
	case 2:
		*out = jh.Sum256(buf[:])
	case 3:
		*out = skein.Sum256(buf[:])
	}
}
