// Package memory provides in-memory store implementations, used by the
// one-shot CLI path and throughout the tests.
package memory

import (
	"context"
	"sync"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/ports/driven"
)

// Ensure RequestStore implements the interface.
var _ driven.RequestStore = (*RequestStore)(nil)

// RequestStore is an in-memory implementation of driven.RequestStore.
// The mutex provides the per-record atomicity the transition contract
// requires.
type RequestStore struct {
	mu       sync.RWMutex
	requests map[string]domain.Request
}

// NewRequestStore creates a new in-memory request store.
func NewRequestStore() *RequestStore {
	return &RequestStore{
		requests: make(map[string]domain.Request),
	}
}

// Save stores a new request.
func (s *RequestStore) Save(_ context.Context, req *domain.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.requests[req.RequestID]; ok {
		return domain.ErrAlreadyExists
	}
	s.requests[req.RequestID] = *req
	return nil
}

// Get retrieves a request by ID.
func (s *RequestStore) Get(_ context.Context, requestID string) (*domain.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.requests[requestID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &req, nil
}

// List returns all requests.
func (s *RequestStore) List(_ context.Context) ([]domain.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Request, 0, len(s.requests))
	for id := range s.requests {
		out = append(out, s.requests[id])
	}
	return out, nil
}

// ListByState returns requests currently in the given state.
func (s *RequestStore) ListByState(_ context.Context, state domain.RequestState) ([]domain.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Request
	for id := range s.requests {
		if s.requests[id].State == state {
			out = append(out, s.requests[id])
		}
	}
	return out, nil
}

// Transition replaces the record iff its current state equals from.
func (s *RequestStore) Transition(_ context.Context, req *domain.Request, from domain.RequestState) (*domain.Request, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.requests[req.RequestID]
	if !ok {
		return nil, false, domain.ErrNotFound
	}
	if current.State != from {
		observed := current
		return &observed, false, nil
	}
	s.requests[req.RequestID] = *req
	stored := *req
	return &stored, true, nil
}
