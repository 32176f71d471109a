package upload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/krau/tgxfer/core/transfer"
)

func TestOpenSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	file, info, err := openSource(path)
	if err != nil {
		t.Fatalf("openSource(%q) error = %v", path, err)
	}
	file.Close()
	if info.Size() != 5 || info.Name() != "a.txt" {
		t.Errorf("info = %s %d", info.Name(), info.Size())
	}

	tests := []struct {
		name     string
		path     string
		notFound bool
	}{
		{"missing", filepath.Join(dir, "missing.txt"), true},
		{"directory", dir, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := openSource(tt.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(err, transfer.ErrFileNotFound); got != tt.notFound {
				t.Errorf("errors.Is(%v, ErrFileNotFound) = %v, want %v", err, got, tt.notFound)
			}
		})
	}
}
