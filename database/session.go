package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/gorm"
)

// SessionDialect creates the parent directory of path and returns the
// dialector of the sqlite file backing the Telegram session.
func SessionDialect(path string) (gorm.Dialector, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return GetDialect(path), nil
}
