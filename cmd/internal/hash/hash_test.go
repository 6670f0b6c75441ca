package hash

import (
	"github.com/google/uuid"
	"testing"
)

func TestSha256Hash(t *testing.T) {
	input := "your string here"
	expected := "ebea8483c5b21ae61081786be10f9704ce8975e1e5b505c03f6ab8514ecc5c0c"
	result := Sha256Hash(input)
	if result != expected {
		t.Errorf("expected %s, got %s", expected, result)
	}
}

func TestStableGuidIsRepeatable(t *testing.T) {
	first := StableGuid("fabric:/app/svc|data-loss")
	second := StableGuid("fabric:/app/svc|data-loss")

	if first != second {
		t.Fatalf("expected %s, got %s", first, second)
	}

	if first == uuid.Nil {
		t.Fatalf("expected a non nil guid")
	}
}

func TestStableGuidDiffers(t *testing.T) {
	if StableGuid("a") == StableGuid("b") {
		t.Fatalf("different inputs should produce different guids")
	}
}

func TestStableGuidVersion(t *testing.T) {
	id := StableGuid("partition")

	if id.Version() != 8 {
		t.Errorf("expected version 8, got %d", id.Version())
	}

	if id.Variant() != uuid.RFC4122 {
		t.Errorf("expected the RFC 4122 variant, got %s", id.Variant())
	}

	parsed, err := uuid.Parse(id.String())
	if err != nil || parsed != id {
		t.Errorf("guid did not round trip through its string form")
	}
}
