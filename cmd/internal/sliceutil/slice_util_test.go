package sliceutil

import (
	"testing"
)

func TestNilIfEmpty(t *testing.T) {
	if NilIfEmpty([]string{}) != nil {
		t.Fatalf("An empty slice should have returned nil")
	}

	if len(NilIfEmpty([]string{"a"})) != 1 {
		t.Fatalf("A populated slice should have been returned")
	}
}

func TestSortByKey(t *testing.T) {
	type named struct {
		name  string
		order int
	}

	input := []named{{"fabric:/b", 0}, {"fabric:/a", 1}, {"fabric:/b", 2}}
	sorted := SortByKey(input, func(item named) string {
		return item.name
	})

	if sorted[0].name != "fabric:/a" || sorted[1].order != 0 || sorted[2].order != 2 {
		t.Fatalf("Items should have been sorted by name with a stable order, was %v", sorted)
	}

	if input[0].name != "fabric:/b" {
		t.Fatalf("The input should not have been modified")
	}
}
