package writers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFileWriter(t *testing.T) {
	dir := t.TempDir()
	writer := NewFileWriter(dir)

	dest, err := writer.Write(map[string]string{"nodes.json": "[]", "chaos": "{}"})

	if err != nil {
		t.Fatalf("Should not have returned an error: %v", err)
	}

	if dest != dir+string(os.PathSeparator) {
		t.Fatalf("The destination should have been %s, was %s", dir, dest)
	}

	contents, err := os.ReadFile(filepath.Join(dir, "nodes.json"))
	if err != nil || string(contents) != "[]" {
		t.Fatalf("nodes.json should have contained []")
	}

	if _, err := os.Stat(filepath.Join(dir, "chaos.json")); err != nil {
		t.Fatalf("chaos.json should have been written")
	}
}

func TestConsoleWriterSortsDocuments(t *testing.T) {
	out := bytes.Buffer{}
	writer := ConsoleWriter{Out: &out}

	if _, err := writer.Write(map[string]string{"b.json": "2", "a.json": "1"}); err != nil {
		t.Fatalf("Should not have returned an error")
	}

	if out.String() != "a.json\n1\nb.json\n2\n" {
		t.Fatalf("Unexpected console output %q", out.String())
	}
}

func TestWritersImplementWriter(t *testing.T) {
	var _ Writer = ConsoleWriter{}
	var _ Writer = FileWriter{}
}
