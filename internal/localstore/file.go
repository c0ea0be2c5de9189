package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File keeps every namespace in one JSON document on disk. Each write
// rewrites the file through a temporary sibling and a rename.
type File struct {
	mu        sync.Mutex
	path      string
	namespace string
}

type fileState struct {
	Namespaces map[string]map[string]string `json:"namespaces"`
}

// NewFile returns a File store rooted at path. The parent directory is
// created with 0700 permissions.
func NewFile(path, namespace string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("local store path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &File{path: filepath.Clean(path), namespace: namespace}, nil
}

var _ Store = (*File)(nil)

func (f *File) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, err := f.load()
	if err != nil {
		return "", err
	}
	return st.Namespaces[f.namespace][key], nil
}

func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, err := f.load()
	if err != nil {
		return err
	}
	ns := st.Namespaces[f.namespace]
	if ns == nil {
		ns = make(map[string]string)
		st.Namespaces[f.namespace] = ns
	}
	ns[key] = value
	return f.save(st)
}

func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	st, err := f.load()
	if err != nil {
		return err
	}
	ns, ok := st.Namespaces[f.namespace]
	if !ok {
		return nil
	}
	if _, ok := ns[key]; !ok {
		return nil
	}
	delete(ns, key)
	return f.save(st)
}

func (f *File) load() (*fileState, error) {
	st := &fileState{Namespaces: make(map[string]map[string]string)}

	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return nil, fmt.Errorf("open state file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := json.NewDecoder(file).Decode(st); err != nil {
		return nil, fmt.Errorf("decode state file: %w", err)
	}
	if st.Namespaces == nil {
		st.Namespaces = make(map[string]map[string]string)
	}
	return st, nil
}

func (f *File) save(st *fileState) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".state-*.json")
	if err != nil {
		return fmt.Errorf("create state file: %w", err)
	}
	tmpName := tmp.Name()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(st); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("encode state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close state file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("chmod state file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename state file: %w", err)
	}
	return nil
}
