// Package highlights stores the manual highlights teachers layer over annotated samples.
package highlights

import (
	"context"
	"strings"
	"sync"

	"github.com/jonathan/writing-highlighter/internal/types"
)

// Store saves and loads highlight records keyed by writing sample ID.
// Get returns an empty slice, not an error, for an unknown ID.
type Store interface {
	Get(ctx context.Context, writingID string) ([]types.Highlight, error)
	Put(ctx context.Context, writingID string, highlights []types.Highlight) error
}

// MemoryStore is an in-process Store
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]types.Highlight
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]types.Highlight)}
}

func (s *MemoryStore) Get(_ context.Context, writingID string) ([]types.Highlight, error) {
	if err := checkID(writingID); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.data[writingID]
	out := make([]types.Highlight, len(stored))
	copy(out, stored)
	return out, nil
}

// Put replaces every highlight for writingID.
func (s *MemoryStore) Put(_ context.Context, writingID string, highlights []types.Highlight) error {
	if err := checkID(writingID); err != nil {
		return err
	}
	cp := make([]types.Highlight, len(highlights))
	copy(cp, highlights)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[writingID] = cp
	return nil
}

func checkID(writingID string) error {
	if strings.TrimSpace(writingID) == "" {
		return &StoreError{Message: "writing id is empty"}
	}
	return nil
}
