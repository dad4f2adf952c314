package parser

import (
	"context"
	"time"

	"github.com/go-kit/log"

	money "go-money-parser"
)

// loggingService decorates a parser.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Parse(ctx context.Context, input string) (m money.Money, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "parse",
			"input", input,
			"amount", m.Amount,
			"currency", m.Currency,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Parse(ctx, input)
}
