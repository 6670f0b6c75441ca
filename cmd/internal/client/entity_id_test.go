package client

import (
	"testing"
)

func TestEntityId(t *testing.T) {
	cases := map[string]string{
		"fabric:/app":            "app",
		"fabric:/app/svc":        "app~svc",
		"fabric:/app/nested/svc": "app~nested~svc",
		"app~svc":                "app~svc",
		" fabric:/app/svc/ ":     "app~svc",
	}

	for input, expected := range cases {
		if actual := EntityId(input); actual != expected {
			t.Errorf("EntityId(%q) should have been %q, was %q", input, expected, actual)
		}
	}
}

func TestEntityName(t *testing.T) {
	if EntityName("app~svc") != "fabric:/app/svc" {
		t.Fatalf("EntityName should have been fabric:/app/svc")
	}

	if EntityName("fabric:/app") != "fabric:/app" {
		t.Fatalf("EntityName should not change a name")
	}
}
