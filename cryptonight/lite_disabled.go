//go:build cryptonight_nolite

package cryptonight

// CryptoNight-Lite is compiled out, the dispatch table holds only the standard entries
const liteEnabled = false
