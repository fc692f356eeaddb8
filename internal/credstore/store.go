// Package credstore persists opaque session tokens keyed by account id.
//
// Tokens are never inspected here; rotation and invalidation policy belongs
// to the caller.
package credstore

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var (
	ErrNotFound  = errors.New("credstore: account not found")
	ErrInvalidID = errors.New("credstore: invalid account id")
)

// Store is the credential boundary used by session flows. Get is called once
// at session start; Put at explicit rotation points.
type Store interface {
	Get(accountID string) (string, error)
	Put(accountID, token string) error
	Delete(accountID string) error
	List() ([]string, error)
}

// MemStore is an in-memory Store, safe for concurrent use.
type MemStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{tokens: make(map[string]string)}
}

func (s *MemStore) Get(accountID string) (string, error) {
	key, err := normalizeID(accountID)
	if err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[key]
	if !ok {
		return "", ErrNotFound
	}
	return token, nil
}

func (s *MemStore) Put(accountID, token string) error {
	key, err := normalizeID(accountID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[key] = token
	return nil
}

func (s *MemStore) Delete(accountID string) error {
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
	return nil
}

func (s *MemStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.tokens))
	for id := range s.tokens {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func normalizeID(accountID string) (string, error) {
	key := strings.TrimSpace(accountID)
	if key == "" {
		return "", ErrInvalidID
	}
	return key, nil
}
