// Package notes persists the note files a vinote session works on. A
// store is rooted at a single directory; notes are plain .md or .txt
// files directly inside it, addressed by file name.
package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrNoteExists   = errors.New("note already exists")
	ErrInvalidName  = errors.New("invalid note name")
)

// Store manages the notes directory.
type Store struct {
	dir string
}

// New opens a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create notes directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the notes directory path.
func (s *Store) Dir() string {
	return s.dir
}

// isNoteFile reports whether name is an acceptable note file name: a
// plain .md/.txt file with no path components.
func isNoteFile(name string) bool {
	if name == "" || name != filepath.Base(name) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".txt"
}

// List returns the note file names in the store, sorted alphabetically.
// Subdirectories and files with other extensions are ignored.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("scan notes directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isNoteFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Load reads a note's content.
func (s *Store) Load(name string) (string, error) {
	if !isNoteFile(name) {
		return "", fmt.Errorf("%w: %s", ErrInvalidName, name)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNoteNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("load note %s: %w", name, err)
	}
	return string(data), nil
}

// Save writes a note's content, creating the file if it does not exist.
func (s *Store) Save(name, content string) error {
	if !isNoteFile(name) {
		return fmt.Errorf("%w: %s", ErrInvalidName, name)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(content), 0644); err != nil {
		return fmt.Errorf("save note %s: %w", name, err)
	}
	return nil
}

// Create makes a new empty note named after the current time, e.g.
// note_20250102150405.md, and returns its name.
func (s *Store) Create() (string, error) {
	return s.createAt(time.Now())
}

func (s *Store) createAt(now time.Time) (string, error) {
	name := fmt.Sprintf("note_%s.md", now.Format("20060102150405"))
	path := filepath.Join(s.dir, name)

	// O_EXCL so two creations within the same second cannot clobber
	// each other.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return "", fmt.Errorf("%w: %s", ErrNoteExists, name)
	}
	if err != nil {
		return "", fmt.Errorf("create note %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("create note %s: %w", name, err)
	}
	return name, nil
}

// Delete removes a note.
func (s *Store) Delete(name string) error {
	if !isNoteFile(name) {
		return fmt.Errorf("%w: %s", ErrInvalidName, name)
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("delete note %s: %w", name, err)
	}
	return nil
}

// Rename gives an existing note a new name and returns the resulting
// file name. The old extension is kept when the new name does not carry
// a note extension itself. Renaming onto an existing note fails rather
// than overwriting it.
func (s *Store) Rename(oldName, newName string) (string, error) {
	if !isNoteFile(oldName) {
		return "", fmt.Errorf("%w: %s", ErrInvalidName, oldName)
	}
	newName = strings.TrimSpace(newName)
	if !isNoteFile(newName) {
		if newName == "" || newName != filepath.Base(newName) || strings.ContainsRune(newName, '.') {
			return "", fmt.Errorf("%w: %s", ErrInvalidName, newName)
		}
		newName += filepath.Ext(oldName)
	}
	if newName == oldName {
		return newName, nil
	}

	oldPath := filepath.Join(s.dir, oldName)
	newPath := filepath.Join(s.dir, newName)

	if _, err := os.Stat(oldPath); errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNoteNotFound, oldName)
	}
	if _, err := os.Stat(newPath); err == nil {
		return "", fmt.Errorf("%w: %s", ErrNoteExists, newName)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return "", fmt.Errorf("rename note %s: %w", oldName, err)
	}
	return newName, nil
}
