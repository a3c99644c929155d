//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package cryptonight

import "unsafe"

// allocate falls back to the Go heap, over-allocating to reach the required alignment.
func allocate(size int) ([]byte, func([]byte) error, error) {
	buf := make([]byte, size+scratchpadAlign)
	var offset int
	// #nosec G103 -- address only
	if rem := int(uintptr(unsafe.Pointer(unsafe.SliceData(buf))) % scratchpadAlign); rem != 0 {
		offset = scratchpadAlign - rem
	}
	return buf[offset : offset+size : offset+size], func([]byte) error { return nil }, nil
}
