package detector

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"
)

// PackageJSON is the subset of package.json that detection reads
type PackageJSON struct {
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	Scripts      map[string]string `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
	DevDeps      map[string]string `json:"devDependencies"`
}

// FSReader provides project evidence over an fs.FS rooted at the project
type FSReader struct {
	fsys fs.FS

	once     sync.Once
	manifest PackageJSON
	err      error
}

// NewFSReader creates a new FSReader for the given filesystem
func NewFSReader(fsys fs.FS) *FSReader {
	return &FSReader{fsys: fsys}
}

// FileExists checks if a file or directory exists at the given path
func (r *FSReader) FileExists(path string) (bool, error) {
	_, err := fs.Stat(r.fsys, path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Has is FileExists without the error, for lookups where failure means absent
func (r *FSReader) Has(path string) bool {
	ok, _ := r.FileExists(path)
	return ok
}

// Read reads a file and returns its content as a string
func (r *FSReader) Read(path string) (string, error) {
	f, err := r.fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Manifest parses package.json once. A missing manifest is an empty one.
func (r *FSReader) Manifest() (PackageJSON, error) {
	r.once.Do(func() {
		content, err := r.Read("package.json")
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				r.err = fmt.Errorf("failed to read package.json: %w", err)
			}
			return
		}
		if err := json.Unmarshal([]byte(content), &r.manifest); err != nil {
			r.err = fmt.Errorf("failed to parse package.json: %w", err)
		}
	})
	return r.manifest, r.err
}

// Dependencies returns a copy of one manifest section
func (r *FSReader) Dependencies(section Section) (map[string]string, error) {
	pkg, err := r.Manifest()
	if err != nil {
		return nil, err
	}

	var src map[string]string
	switch section {
	case SectionProduction:
		src = pkg.Dependencies
	case SectionDevelopment:
		src = pkg.DevDeps
	default:
		return nil, fmt.Errorf("unknown dependency section %q", section)
	}

	out := make(map[string]string, len(src))
	for name, version := range src {
		out[name] = version
	}
	return out, nil
}
