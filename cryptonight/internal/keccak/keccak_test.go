package keccak

import (
	"bytes"
	"fmt"
	"testing"

	"golang.org/x/crypto/sha3" //nolint:depguard
)

func TestSum1600_Keccak256Prefix(t *testing.T) {
	// Keccak-256 output is the first 32 bytes of the same sponge state
	for _, n := range []int{0, 1, 7, 8, 31, 76, 135, 136, 137, 200, 271, 272, 1000} {
		t.Run(fmt.Sprintf("%d", n), func(t *testing.T) {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte(i*7 + 3)
			}

			var state [25]uint64
			Sum1600(&state, data)
			buf := Bytes(&state)

			hasher := sha3.NewLegacyKeccak256()
			_, _ = hasher.Write(data)
			expected := hasher.Sum(nil)

			if !bytes.Equal(buf[:32], expected) {
				t.Errorf("Sum1600(...)[:32] = %x, want %x", buf[:32], expected)
			}
		})
	}
}

func TestSum1600_ResetsState(t *testing.T) {
	var a, b [25]uint64
	for i := range a {
		a[i] = ^uint64(i)
	}
	Sum1600(&a, []byte("This is a test"))
	Sum1600(&b, []byte("This is a test"))
	if a != b {
		t.Fatal("Sum1600 depends on previous state content")
	}
}

func TestF1600_Zero(t *testing.T) {
	// Keccak team reference: first lane of Keccak-f[1600] applied to the zero state
	var state [25]uint64
	F1600(&state)
	if state[0] != 0xF1258F7940E1DDE7 {
		t.Errorf("F1600(0)[0] = %#016x, want 0xf1258f7940e1dde7", state[0])
	}
}

func BenchmarkF1600(b *testing.B) {
	var state [25]uint64
	for b.Loop() {
		F1600(&state)
	}
}
