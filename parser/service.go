package parser

import (
	"context"

	money "go-money-parser"
)

// Service interface for parsing textual monetary values
type Service interface {
	Parse(ctx context.Context, input string) (money.Money, error)
}

// service the plain parsing service
type service struct{}

// NewService constructs a valid Service
func NewService() Service {
	return &service{}
}

// Parse parses "<amount> <currency>" into a Money.
// The parse is pure so the context is never consulted.
func (s *service) Parse(_ context.Context, input string) (money.Money, error) {
	return money.Parse(input)
}
