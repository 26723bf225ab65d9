// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

var (
	ErrInvalidName = errors.New("invalid asset name")
	ErrPathEscape  = errors.New("asset path escapes asset directory")
	ErrNotFound    = errors.New("asset not found")
)

// Resolver confines user-supplied asset names to a single directory
type Resolver struct {
	root string
}

func New(root string) *Resolver {
	return &Resolver{root: root}
}

// Root returns the configured asset directory as given
func (r *Resolver) Root() string {
	return r.root
}

// Resolve returns the symlink-free absolute path of name inside the asset
// directory. The target must exist and be a regular file.
func (r *Resolver) Resolve(name string) (string, error) {
	if name == "" || strings.ContainsRune(name, 0) {
		return "", ErrInvalidName
	}
	// An absolute name names a file elsewhere, not one under the root
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", ErrPathEscape
	}

	root, err := filepath.Abs(r.root)
	if err != nil {
		return "", fmt.Errorf("resolve asset root: %w", err)
	}

	// Join cleans "..", so this rejects lexical escapes before touching the filesystem
	joined := filepath.Join(root, name)
	if !within(root, joined) {
		return "", ErrPathEscape
	}

	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", fmt.Errorf("resolve asset root: %w", err)
	}

	realPath, err := filepath.EvalSymlinks(joined)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("resolve asset: %w", err)
	}

	// Symlinks inside the directory may still point elsewhere
	if !within(realRoot, realPath) {
		return "", ErrPathEscape
	}

	info, err := os.Stat(realPath)
	if err != nil {
		return "", fmt.Errorf("stat asset: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", ErrNotFound
	}

	return realPath, nil
}

// Open resolves name and opens it for reading. Callers must not read
// anything about the asset before Open succeeds.
func (r *Resolver) Open(name string) (*os.File, fs.FileInfo, error) {
	path, err := r.Resolve(name)
	if err != nil {
		return nil, nil, err
	}

	realRoot, err := filepath.EvalSymlinks(r.root)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve asset root: %w", err)
	}
	rel, err := filepath.Rel(realRoot, path)
	if err != nil {
		return nil, nil, fmt.Errorf("relativize asset: %w", err)
	}

	// os.Root refuses to follow links out of the directory if the tree
	// changed since Resolve
	root, err := os.OpenRoot(realRoot)
	if err != nil {
		return nil, nil, fmt.Errorf("open asset root: %w", err)
	}
	defer root.Close()

	f, err := root.Open(rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("open asset: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("stat asset: %w", err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, ErrNotFound
	}

	return f, info, nil
}

// List returns the names of the regular files in the asset directory,
// sorted by name. Dotfiles are skipped.
func (r *Resolver) List() ([]string, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("read asset directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// within reports whether path lies strictly below root, comparing whole
// path components so "/flags-evil" is not inside "/flags"
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
