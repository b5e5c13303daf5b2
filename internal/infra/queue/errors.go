package queue

import "hotel-platform/internal/pkg/errs"

var (
	ErrPublisherClosed = errs.New("publisher closed")
	ErrConsumerRunning = errs.New("consumer already running")
	ErrNoBrokers       = errs.New("no queue brokers configured")
)
