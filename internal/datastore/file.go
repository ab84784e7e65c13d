package datastore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/roach88/catalogue/internal/catalogue"
)

// File is the catalogue data file on disk. It assumes a single writer.
type File struct {
	Path string
}

// NewFile returns a File for path. The file is not touched until used.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Read returns the full text of the data file.
func (f *File) Read() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("read datastore: %w", err)
	}
	return string(data), nil
}

// Records decodes every entry in the ITEMS list.
func (f *File) Records() ([]catalogue.Record, error) {
	text, err := f.Read()
	if err != nil {
		return nil, err
	}
	return Decode(f.Path, text)
}

// AppendRecord serializes rec and splices it into the data file.
//
// It returns false without writing when the file already holds rec.SKU, and
// ErrFormat when the closing marker is missing. The new text replaces the
// old through a temp file and rename, so readers never see a partial append.
func (f *File) AppendRecord(ctx context.Context, rec catalogue.Record) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	text, err := f.Read()
	if err != nil {
		return false, err
	}
	if Contains(text, rec.SKU) {
		return false, nil
	}
	updated, err := Append(text, Serialize(rec))
	if err != nil {
		return false, fmt.Errorf("append %s: %w", rec.SKU, err)
	}
	if err := f.Replace(updated); err != nil {
		return false, err
	}
	return true, nil
}

// Create writes text as a new data file. It refuses to overwrite.
func (f *File) Create(text string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return fmt.Errorf("create datastore dir: %w", err)
	}
	out, err := os.OpenFile(f.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("create datastore: %w", err)
	}
	if _, err := out.WriteString(text); err != nil {
		out.Close()
		return fmt.Errorf("write datastore: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close datastore: %w", err)
	}
	return nil
}

// Replace atomically swaps the data file contents for text through a temp
// file and rename.
func (f *File) Replace(text string) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(f.Path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), ".catalogue-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp datastore: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp datastore: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp datastore: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp datastore: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp datastore: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, f.Path); err != nil {
		return fmt.Errorf("rename datastore: %w", err)
	}
	return nil
}
