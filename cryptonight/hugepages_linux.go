package cryptonight

import (
	"golang.org/x/sys/unix"

	"git.gammaspectra.live/P2Pool/cryptonight/utils"
)

// adviseHugePages asks for transparent huge pages. Failure only costs TLB misses.
func adviseHugePages(mem []byte) {
	if err := unix.Madvise(mem, unix.MADV_HUGEPAGE); err != nil {
		utils.Noticef("CryptoNight", "huge pages unavailable for %d byte scratchpad: %s", len(mem), err)
	}
}
