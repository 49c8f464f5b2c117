// Package images copies picked plant photos into app-local storage.
package images

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/asteroid-belt/zelenko/internal/clock"
)

// DirName is the image directory inside the base directory.
const DirName = "plant-images"

const defaultExt = "jpg"

// ErrOutsideStore is returned when asked to remove a file the store does not own.
var ErrOutsideStore = errors.New("image is not in the image directory")

// Store persists plant images under one directory.
type Store struct {
	dir   string
	clock clock.Clock
}

// NewStore creates a store rooted at <baseDir>/plant-images.
func NewStore(baseDir string, clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.System{}
	}
	return &Store{dir: filepath.Join(baseDir, DirName), clock: clk}
}

// Dir returns the image directory.
func (s *Store) Dir() string {
	return s.dir
}

// Persist copies src into the image directory and returns the absolute
// path of the copy.
func (s *Store) Persist(src string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return "", fmt.Errorf("stat image: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("open image: %s is a directory", src)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create image directory: %w", err)
	}

	dst := filepath.Join(s.dir, s.fileName(src))
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("copy image: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close image: %w", err)
	}

	abs, err := filepath.Abs(dst)
	if err != nil {
		return dst, nil
	}
	return abs, nil
}

// Remove deletes ref when it lives inside the image directory.
// Missing files are not an error.
func (s *Store) Remove(ref string) error {
	if ref == "" {
		return nil
	}
	if !s.Owns(ref) {
		return ErrOutsideStore
	}
	if err := os.Remove(ref); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

// Owns reports whether ref points directly inside the image directory.
func (s *Store) Owns(ref string) bool {
	dir, err := filepath.Abs(s.dir)
	if err != nil {
		return false
	}
	path, err := filepath.Abs(ref)
	if err != nil {
		return false
	}
	return filepath.Dir(path) == dir
}

func (s *Store) fileName(src string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("plant-%d-%s.%s", s.clock.Now().UnixMilli(), id, Ext(src))
}

// Ext returns the lowercased extension of a path or URI, ignoring any
// query or fragment suffix. Paths without one get "jpg".
func Ext(src string) string {
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	base := src
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 || dot == len(base)-1 {
		return defaultExt
	}
	ext := strings.ToLower(base[dot+1:])
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultExt
		}
	}
	return ext
}

// Exists reports whether the image at ref can still be read.
func Exists(ref string) bool {
	if ref == "" {
		return false
	}
	info, err := os.Stat(ref)
	return err == nil && !info.IsDir()
}
