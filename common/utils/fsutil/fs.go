package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/xid"
	"golang.org/x/text/unicode/norm"
)

func FileExists(fp string) bool {
	_, err := os.Stat(fp)
	return err == nil
}

// NormalizePathname composes name to NFC, replaces characters that are not
// allowed in file names and strips trailing dots and whitespace.
func NormalizePathname(name string) string {
	name = strings.TrimRightFunc(norm.NFC.String(name), func(r rune) bool {
		return r == '.' || unicode.IsSpace(r)
	})
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return '_'
		}
		switch r {
		case '/', '\\', '?', '%', '*', ':', '|', '"', '<', '>':
			return '_'
		}
		return r
	}, name)
}

// UserDir returns the per-user directory under base. A zero userID means no
// isolation and yields base itself.
func UserDir(base string, userID int64) string {
	if userID == 0 {
		return base
	}
	return filepath.Join(base, strconv.FormatInt(userID, 10))
}

// EnsureUserDir creates the per-user directory under base. If that fails it
// falls back to base and reports the creation error alongside.
func EnsureUserDir(base string, userID int64) (string, error) {
	dir := UserDir(base, userID)
	err := os.MkdirAll(dir, os.ModePerm)
	if err == nil {
		return dir, nil
	}
	if dir == base {
		return "", err
	}
	if baseErr := os.MkdirAll(base, os.ModePerm); baseErr != nil {
		return "", errors.Join(err, baseErr)
	}
	return base, fmt.Errorf("failed to create user dir, using %s: %w", base, err)
}

// WithRandomSuffix turns "name.ext" into "name_<xid>.ext".
func WithRandomSuffix(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s_%s%s", base, xid.New().String(), ext)
}

type File struct {
	*os.File
}

func (f *File) Remove() error {
	return os.Remove(f.Name())
}

// CloseAndRemove closes f and removes it even when closing fails.
func (f *File) CloseAndRemove() error {
	return errors.Join(f.Close(), f.Remove())
}

// CreateExclusive creates fp for writing and fails if it already exists.
func CreateExclusive(fp string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(fp), os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(fp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}
	return &File{File: file}, nil
}
