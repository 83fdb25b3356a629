// Package static gives handlers explicit, error-returning access to the
// front end assets directory.
package static

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"
	"unicode/utf8"
)

const IndexFile = "index.html"

// returned for missing files, directories and any path that leaves the root
var ErrNotFound = errors.New("static asset not found")

// ErrInvalidEncoding is returned when index.html is not UTF-8 text.
var ErrInvalidEncoding = errors.New("index page is not valid UTF-8")

// Store resolves request paths against a single root directory.
// It holds no file contents, every read goes to disk.
type Store struct {
	dir string
}

// Asset is an opened regular file. Callers must Close it.
type Asset struct {
	Name    string
	ModTime time.Time
	Size    int64

	file *os.File
}

// a missing dir is accepted, requests fail until it appears.
// a path that exists but is not a directory is rejected.
func New(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("static root %s: %w", dir, err)
	}

	if err == nil && !info.IsDir() {
		return nil, fmt.Errorf("static root %s is not a directory", dir)
	}

	return &Store{dir: dir}, nil
}

// reports whether the root currently exists
func (s *Store) Exists() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

func (s *Store) Dir() string {
	return s.dir
}

// reads index.html from disk on every call
func (s *Store) ReadIndex() ([]byte, error) {
	root, err := os.OpenRoot(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open static root: %w", err)
	}
	defer root.Close() //nolint:errcheck // read-only handle

	f, err := root.Open(IndexFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", IndexFile, err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", IndexFile, err)
	}

	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}

	return data, nil
}

// opens the asset addressed by a URL path such as "/js/app.js".
// anything that is not a regular file inside the root yields ErrNotFound.
func (s *Store) Open(urlPath string) (*Asset, error) {
	name := strings.TrimPrefix(urlPath, "/")

	// rejects "..", empty and rooted names before touching the filesystem
	if !fs.ValidPath(name) || name == "." {
		return nil, ErrNotFound
	}

	root, err := os.OpenRoot(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open static root: %w", err)
	}
	defer root.Close() //nolint:errcheck // opened files outlive the root handle

	// os.Root also refuses symlinks that resolve outside the directory
	f, err := root.Open(name)
	if err != nil {
		return nil, ErrNotFound
	}

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		f.Close() //nolint:errcheck,gosec // nothing to report
		return nil, ErrNotFound
	}

	return &Asset{
		Name:    name,
		ModTime: info.ModTime(),
		Size:    info.Size(),
		file:    f,
	}, nil
}

func (a *Asset) Read(p []byte) (int, error) {
	return a.file.Read(p)
}

func (a *Asset) Seek(offset int64, whence int) (int64, error) {
	return a.file.Seek(offset, whence)
}

func (a *Asset) Close() error {
	return a.file.Close()
}

// returns up to n leading bytes and rewinds the asset
func (a *Asset) Head(n int) ([]byte, error) {
	buf := make([]byte, n)

	read, err := io.ReadFull(a.file, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if _, err := a.file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	return buf[:read], nil
}
