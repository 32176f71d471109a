package database_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/krau/tgxfer/database"
)

func TestSessionDialect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "session.db")
	d, err := database.SessionDialect(path)
	if err != nil {
		t.Fatalf("SessionDialect() error = %v", err)
	}
	if d == nil || d.Name() != "sqlite" {
		t.Errorf("dialect = %v, want sqlite", d)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("session directory not created: %v", err)
	}
}
