//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package cryptonight

func adviseHugePages([]byte) {}
