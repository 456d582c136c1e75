// Package storage stores uploaded files under prefix directories and hands
// back opaque references like "resumes/3f2a....pdf". The core never looks
// inside a reference; it only persists and serves it back.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	PrefixResumes      = "resumes"
	PrefixCompanyLogos = "company_logos"
)

type FileStore struct {
	root string
}

func New(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &FileStore{root: root}, nil
}

// Save writes the stream under prefix/<uuid><ext> and returns the reference.
// The original filename only contributes its extension.
func (fs *FileStore) Save(prefix, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(fs.root, prefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s dir: %w", prefix, err)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.NewString() + ext
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return prefix + "/" + name, nil
}

// Open resolves a reference produced by Save.
func (fs *FileStore) Open(ref string) (io.ReadCloser, error) {
	clean := filepath.Clean(ref)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("invalid file reference %q", ref)
	}
	return os.Open(filepath.Join(fs.root, clean))
}

func (fs *FileStore) Remove(ref string) error {
	clean := filepath.Clean(ref)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return fmt.Errorf("invalid file reference %q", ref)
	}
	return os.Remove(filepath.Join(fs.root, clean))
}
