// Package corpus loads the raw text documents a question is answered from.
package corpus

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrIO marks failures reading the corpus from disk. The underlying OS
	// error stays in the chain.
	ErrIO = errors.New("corpus io")
	// ErrNoDocuments is returned when a directory holds no matching files.
	ErrNoDocuments = errors.New("no documents found")
)

// DirLoader reads every matching regular file in a directory.
type DirLoader struct {
	extensions map[string]struct{}
}

// NewDirLoader creates a loader accepting files with the given extensions
// (case-insensitive, leading dot optional). No extensions accepts every file.
func NewDirLoader(extensions ...string) *DirLoader {
	ext := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		ext[e] = struct{}{}
	}
	return &DirLoader{extensions: ext}
}

// Load returns file name to contents for every accepted file in dir.
func (l *DirLoader) Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read dir %s: %w", ErrIO, dir, err)
	}
	files := make(map[string]string, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() || !l.accepts(e.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrIO, e.Name(), err)
		}
		files[e.Name()] = string(data)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoDocuments)
	}
	return files, nil
}

func (l *DirLoader) accepts(name string) bool {
	if len(l.extensions) == 0 {
		return true
	}
	_, ok := l.extensions[strings.ToLower(filepath.Ext(name))]
	return ok
}
