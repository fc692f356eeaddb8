package credstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// FileStore is a Store backed by one toml file. The file is read on open and
// rewritten whole on every mutation; tokens are written with owner-only
// permissions.
type FileStore struct {
	mu     sync.Mutex
	path   string
	tokens map[string]string
}

type storeFile struct {
	Accounts map[string]string `toml:"accounts"`
}

// OpenFileStore loads the store at path, creating an empty store if the file
// does not exist yet.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, tokens: make(map[string]string)}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("credstore: load %s: %w", path, err)
	}
	var raw storeFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("credstore: parse %s: %w", path, err)
	}
	for id, token := range raw.Accounts {
		s.tokens[id] = token
	}
	return s, nil
}

func (s *FileStore) Get(accountID string) (string, error) {
	key, err := normalizeID(accountID)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[key]
	if !ok {
		return "", ErrNotFound
	}
	return token, nil
}

func (s *FileStore) Put(accountID, token string) error {
	key, err := normalizeID(accountID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[key] = token
	return s.flushLocked()
}

func (s *FileStore) Delete(accountID string) error {
	key, err := normalizeID(accountID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tokens[key]; !ok {
		return ErrNotFound
	}
	delete(s.tokens, key)
	return s.flushLocked()
}

func (s *FileStore) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.tokens))
	for id := range s.tokens {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (s *FileStore) flushLocked() error {
	data, err := toml.Marshal(storeFile{Accounts: s.tokens})
	if err != nil {
		return fmt.Errorf("credstore: encode: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("credstore: mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("credstore: write %s: %w", s.path, err)
	}
	return nil
}
