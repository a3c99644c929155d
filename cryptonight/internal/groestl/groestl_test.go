package groestl

import (
	"encoding/hex"
	"testing"
)

func TestSum256(t *testing.T) {
	sum := Sum256(nil)
	if hex.EncodeToString(sum[:]) != "1a52d11d550039be16107f9c58db9ebcc417f16f736adb2502567119f0083467" {
		t.Errorf("Sum256(\"\") = %x", sum)
	}
}

func TestDigest_Streaming(t *testing.T) {
	data := make([]byte, 200)
	for i := range data {
		data[i] = byte(i)
	}
	expected := Sum256(data)

	for _, split := range []int{1, 55, 56, 64, 65, 128, 199} {
		d := New256()
		_, _ = d.Write(data[:split])
		_, _ = d.Write(data[split:])
		if got := d.Sum(nil); string(got) != string(expected[:]) {
			t.Errorf("split %d: Sum() = %x, want %x", split, got, expected)
		}
	}
}
