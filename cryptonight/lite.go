//go:build !cryptonight_nolite

package cryptonight

const liteEnabled = true
