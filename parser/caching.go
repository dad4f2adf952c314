package parser

import (
	"context"
	"sync"

	money "go-money-parser"
)

// cachingService decorates a parser.Service with a memo of previous outcomes.
// Parsing is deterministic, so entries never go stale and are kept for the
// lifetime of the service. The cachingService is concurrency safe.
type cachingService struct {
	// next the service being decorated with a memo
	next Service

	// memo maps inputs to their previous outcome
	memo map[string]outcome

	// lock synchronizes access to memo to make it concurrency safe
	lock sync.RWMutex
}

// outcome a completed parse, success or failure
type outcome struct {
	money money.Money
	err   error
}

// NewCachingService returns a new memoizing Service
func NewCachingService(s Service) Service {
	return &cachingService{
		next: s,
		memo: map[string]outcome{},
		lock: sync.RWMutex{},
	}
}

// Parse parses an input and memoizes the result
func (s *cachingService) Parse(ctx context.Context, input string) (money.Money, error) {
	s.lock.RLock()
	out, ok := s.memo[input]
	s.lock.RUnlock()

	if !ok {
		// Note there is a race condition here in that concurrent requests for an
		// input that isn't yet memoized will each run the parse. This is harmless:
		// the parse is deterministic, so every racer stores the same outcome.
		m, err := s.next.Parse(ctx, input)
		out = outcome{money: m, err: err}
		s.lock.Lock()
		s.memo[input] = out
		s.lock.Unlock()
	}

	return out.money, out.err
}
