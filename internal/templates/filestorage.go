package templates

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// recordExt is the file extension of a template record.
const recordExt = ".json"

// Backend persists template records. FileStorage is the production
// implementation; tests substitute failing backends.
type Backend interface {
	// Exists reports whether the backing location exists. It fails if the
	// location exists but cannot serve as a template directory.
	Exists() (bool, error)
	// Create makes the backing location.
	Create() error
	// Discard removes the backing location and everything in it.
	Discard() error
	// Load returns every stored template ordered by name.
	Load() ([]Template, error)
	// Write stores t, replacing any previous record with the same name.
	Write(t Template) error
	// Remove deletes the record for name. Removing a missing record is not
	// an error.
	Remove(name string) error
}

// FileStorage keeps one JSON record per template in a directory.
// Each template is stored at <dir>/<name>.json.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a FileStorage rooted at dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// Dir returns the storage directory path.
func (fs *FileStorage) Dir() string {
	return fs.dir
}

// Path returns the record path for a template name.
func (fs *FileStorage) Path(name string) string {
	return filepath.Join(fs.dir, name+recordExt)
}

// Exists reports whether the storage directory exists.
// A non-directory at the same path is a StorageError.
func (fs *FileStorage) Exists() (bool, error) {
	info, err := os.Stat(fs.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, &StorageError{Op: "stat", Path: fs.dir, Err: err}
	}
	if !info.IsDir() {
		return false, &StorageError{Op: "open", Path: fs.dir, Err: errors.New("not a directory")}
	}
	return true, nil
}

// Create makes the storage directory and any missing parents.
func (fs *FileStorage) Create() error {
	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		return &StorageError{Op: "create", Path: fs.dir, Err: err}
	}
	return nil
}

// Discard removes the storage directory and its contents.
func (fs *FileStorage) Discard() error {
	if err := os.RemoveAll(fs.dir); err != nil {
		return &StorageError{Op: "discard", Path: fs.dir, Err: err}
	}
	return nil
}

// Load reads every record in the directory. Subdirectories, hidden files
// (including leftover temp files) and files without the record extension
// are ignored. A record with an invalid name or malformed content fails the
// whole load.
func (fs *FileStorage) Load() ([]Template, error) {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, &StorageError{Op: "read", Path: fs.dir, Err: err}
	}

	var loaded []Template
	for _, entry := range entries {
		fileName := entry.Name()
		if entry.IsDir() || strings.HasPrefix(fileName, ".") || !strings.HasSuffix(fileName, recordExt) {
			continue
		}

		name := strings.TrimSuffix(fileName, recordExt)
		path := filepath.Join(fs.dir, fileName)
		if !ValidName(name) {
			return nil, &StorageError{Op: "load", Path: path, Err: &InvalidNameError{Name: name}}
		}

		tmpl, err := fs.read(name, path)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, tmpl)
	}

	sort.Slice(loaded, func(i, j int) bool { return loaded[i].Name < loaded[j].Name })
	return loaded, nil
}

// read loads a single record file.
func (fs *FileStorage) read(name, path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, &StorageError{Op: "read", Path: path, Err: err}
	}
	tmpl, err := decodeRecord(name, data)
	if err != nil {
		return Template{}, &StorageError{Op: "parse", Path: path, Err: err}
	}
	return tmpl, nil
}

// Write stores a template record using write-to-temp-then-rename, so a
// failed write never leaves a truncated record behind.
func (fs *FileStorage) Write(t Template) error {
	path := fs.Path(t.Name)

	data, err := encodeRecord(t)
	if err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	if err := atomicWrite(path, data); err != nil {
		return &StorageError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Remove deletes the record file for name. A record that is already gone
// counts as removed.
func (fs *FileStorage) Remove(name string) error {
	path := fs.Path(name)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &StorageError{Op: "remove", Path: path, Err: err}
	}
	return nil
}

// atomicWrite writes data to path using write-to-temp-then-rename.
// The temp file is created in the same directory as path.
func atomicWrite(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".tmp-*"+recordExt)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
