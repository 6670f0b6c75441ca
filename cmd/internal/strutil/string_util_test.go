package strutil

import "testing"

func TestEnsureSuffix(t *testing.T) {
	if EnsureSuffix("test!", "!") != "test!" {
		t.Fatalf("result should have been test!")
	}

	if EnsureSuffix("test", "!") != "test!" {
		t.Fatalf("result should have been test!")
	}

	if EnsureSuffix("test", "blah") != "testblah" {
		t.Fatalf("result should have been testblah")
	}

	if EnsureSuffix("test! ", "!") != "test! !" {
		t.Fatalf("result should have been test! !")
	}

	if EnsureSuffix(" ", "!") != " !" {
		t.Fatalf("result should have been !")
	}
}

func TestJSONExtension(t *testing.T) {
	if JSONExtension("nodes") != "nodes.json" {
		t.Fatalf("result should have been nodes.json")
	}

	if JSONExtension("nodes.json") != "nodes.json" {
		t.Fatalf("result should have been nodes.json")
	}

	if JSONExtension("nodes.JSON") != "nodes.json" {
		t.Fatalf("result should have been nodes.json")
	}
}
