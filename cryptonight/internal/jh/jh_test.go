package jh

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestSum256(t *testing.T) {
	sum := Sum256(nil)
	if hex.EncodeToString(sum[:]) != "46e64619c18bb0a92a5e87185a47eef83ca747b8fcc8e1412921357e326df434" {
		t.Errorf("Sum256(\"\") = %x", sum)
	}
}

func TestRoundConstants(t *testing.T) {
	if roundConstants[0] != roundConstantZero {
		t.Fatal("first round constant must be the √2 seed")
	}
	for r := 1; r < rounds; r++ {
		if roundConstants[r] == roundConstants[r-1] {
			t.Fatalf("round constant %d repeats", r)
		}
		for _, v := range roundConstants[r] {
			if v > 0xf {
				t.Fatalf("round constant %d holds a non-nibble %#x", r, v)
			}
		}
	}
}

func TestState_Streaming(t *testing.T) {
	data := make([]byte, 200)
	for i := range data {
		data[i] = byte(255 - i)
	}
	expected := Sum256(data)

	for _, split := range []int{1, 63, 64, 65, 128, 199} {
		s := New256()
		_, _ = s.Write(data[:split])
		_, _ = s.Write(data[split:])
		if got := s.Sum(nil); !bytes.Equal(got, expected[:]) {
			t.Errorf("split %d: Sum() = %x, want %x", split, got, expected)
		}
	}
}
