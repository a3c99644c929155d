//go:build cryptonight_debug

package cryptonight

import "fmt"

const boundsChecked = true

// checkAddress panics when a masked address leaves the lane scratchpad or is not 16-byte aligned.
func checkAddress(idx uint64, words int) {
	if idx%2 != 0 || idx+2 > uint64(words) {
		panic(fmt.Sprintf("cryptonight: scratchpad address %#x outside %d words", idx*8, words))
	}
}
