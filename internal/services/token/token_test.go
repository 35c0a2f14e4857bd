package token

import (
	"encoding/hex"
	"testing"
)

func TestGenerate(t *testing.T) {
	tok, err := Generate()
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(tok) != tokenLength*2 {
		t.Fatalf("expected %d hex characters, got %d", tokenLength*2, len(tok))
	}
	if _, err := hex.DecodeString(tok); err != nil {
		t.Fatalf("expected hex-encoded token, got %q", tok)
	}
}

func TestGenerateIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := Generate()
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}
		if seen[tok] {
			t.Fatalf("duplicate token generated: %q", tok)
		}
		seen[tok] = true
	}
}
