package cryptonight

import (
	"fmt"
	"strings"
)

// Profile fixes memory size, iteration count and address mask together.
type Profile uint8

const (
	// ProfileStandard is the original CryptoNight: 2 MiB, 2^19 iterations.
	ProfileStandard Profile = iota
	// ProfileLite is CryptoNight-Lite: 1 MiB, 2^18 iterations.
	ProfileLite

	profileCount
)

// Cipher selects how AES rounds are computed.
type Cipher uint8

const (
	// CipherHardware uses AES-NI instructions.
	CipherHardware Cipher = iota
	// CipherSoftware uses table-based AES rounds.
	CipherSoftware

	cipherCount
)

// Kind selects the single or two-way interleaved pipeline.
type Kind uint8

const (
	KindSingle Kind = iota
	KindDouble

	kindCount
)

type params struct {
	iterations int
	memory     int
	mask       uint64
}

var profiles = [profileCount]params{
	ProfileStandard: {
		iterations: 0x80000,
		memory:     2 * 1024 * 1024,
		mask:       0x1FFFF0,
	},
	ProfileLite: {
		iterations: 0x40000,
		memory:     1024 * 1024,
		mask:       0xFFFF0,
	},
}

func (p Profile) valid() bool { return p < profileCount }

// available reports whether the profile is compiled in
func (p Profile) available() bool {
	return p == ProfileStandard || (p == ProfileLite && liteEnabled)
}

// Iterations of the memory-hard loop
func (p Profile) Iterations() int { return profiles[p].iterations }

// MemorySize of the scratchpad for one hash, in bytes
func (p Profile) MemorySize() int { return profiles[p].memory }

// AddressMask keeps scratchpad addresses 16-byte aligned and in bounds
func (p Profile) AddressMask() uint64 { return profiles[p].mask }

func (p Profile) String() string {
	switch p {
	case ProfileStandard:
		return "standard"
	case ProfileLite:
		return "lite"
	default:
		return fmt.Sprintf("profile(%d)", uint8(p))
	}
}

func (c Cipher) valid() bool { return c < cipherCount }

func (c Cipher) String() string {
	switch c {
	case CipherHardware:
		return "hardware"
	case CipherSoftware:
		return "software"
	default:
		return fmt.Sprintf("cipher(%d)", uint8(c))
	}
}

func (k Kind) valid() bool { return k < kindCount }

// Ratio is the number of hashes computed per call, and the scratchpad multiplier
func (k Kind) Ratio() int {
	if k == KindDouble {
		return 2
	}
	return 1
}

func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindDouble:
		return "double"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseProfile accepts the profile names used in configuration and on the command line.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "cn", "cryptonight", "cn/0":
		return ProfileStandard, nil
	case "lite", "cn-lite", "cryptonight-lite", "cn-lite/0", "aeon":
		return ProfileLite, nil
	}
	return 0, fmt.Errorf("%w: unknown profile %q", ErrInvalidVariant, s)
}

// ParseCipher accepts hardware / software cipher names. "auto" resolves to PreferredCipher.
func ParseCipher(s string) (Cipher, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hardware", "hw", "aes", "aesni", "aes-ni":
		return CipherHardware, nil
	case "software", "sw", "soft", "softaes":
		return CipherSoftware, nil
	case "auto", "":
		return PreferredCipher(), nil
	}
	return 0, fmt.Errorf("%w: unknown cipher %q", ErrInvalidVariant, s)
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "1":
		return KindSingle, nil
	case "double", "2":
		return KindDouble, nil
	}
	return 0, fmt.Errorf("%w: unknown pipeline kind %q", ErrInvalidVariant, s)
}
