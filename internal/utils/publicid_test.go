package utils

import (
	"strings"
	"testing"
)

func TestGeneratePublicID(t *testing.T) {
	t.Run("fixed length and allowed alphabet", func(t *testing.T) {
		id, err := GeneratePublicID()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(id) != publicIdLength {
			t.Fatalf("expected length %d, got %d (%q)", publicIdLength, len(id), id)
		}
		for _, c := range id {
			if !strings.ContainsRune(publicIdAlphabet, c) {
				t.Fatalf("unexpected character %q in public id %q", c, id)
			}
		}
	})

	t.Run("ids are distinct across many draws", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 1000; i++ {
			id, err := GeneratePublicID()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if seen[id] {
				t.Fatalf("duplicate public id %q after %d draws", id, i)
			}
			seen[id] = true
		}
	})
}
