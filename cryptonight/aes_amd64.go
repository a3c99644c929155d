//go:build amd64 && !purego

package cryptonight

import "golang.org/x/sys/cpu"

var hardwareAES = cpu.X86.HasAES && cpu.X86.HasSSE2

//go:noescape
func aesRoundsHW(blocks *[16]uint64, keys *roundKeys)

//go:noescape
func aesencHW(dst, src, key *[2]uint64)
