//go:build !amd64 || purego

package cryptonight

const hardwareAES = false

// hardware entries report unavailable here, so these are never reached through the dispatch table

func aesRoundsHW(*[16]uint64, *roundKeys) {
	panic(ErrHardwareUnavailable)
}

func aesencHW(*[2]uint64, *[2]uint64, *[2]uint64) {
	panic(ErrHardwareUnavailable)
}
