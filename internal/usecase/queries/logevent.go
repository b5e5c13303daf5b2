package queries

import (
	"context"
	"strings"

	"hotel-platform/internal/domain/logevent"
	"hotel-platform/internal/pkg/errs"
)

//go:generate mockgen -source=logevent.go -destination=../../../tests/mock/queries/logevent.go -package=queriesmock

const (
	DefaultLogLimit = 100
	MaxLogLimit     = 1000
)

var ErrInvalidLogFilter = errs.Mark(errs.New("invalid log filter"), errs.ErrValidation)

type LogQueries interface {
	List(ctx context.Context, filter LogFilter) (*LogPage, error)
}

// LogReadStore returns events newest first. Count ignores filter.Limit.
type LogReadStore interface {
	List(ctx context.Context, filter LogFilter) ([]*LogView, error)
	Count(ctx context.Context, filter LogFilter) (int, error)
}

type logQueriesImpl struct {
	readStore LogReadStore
}

func NewLogQueries(readStore LogReadStore) LogQueries {
	return &logQueriesImpl{readStore: readStore}
}

func (q *logQueriesImpl) List(ctx context.Context, filter LogFilter) (*LogPage, error) {
	if filter.Limit == 0 {
		filter.Limit = DefaultLogLimit
	}
	if filter.Limit < 1 || filter.Limit > MaxLogLimit {
		return nil, ErrInvalidLogFilter
	}
	if filter.Level != nil && !logevent.Level(*filter.Level).Valid() {
		return nil, ErrInvalidLogFilter
	}
	if filter.ServiceName != nil {
		name := strings.TrimSpace(*filter.ServiceName)
		if name == "" {
			filter.ServiceName = nil
		} else {
			filter.ServiceName = &name
		}
	}

	logs, err := q.readStore.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if logs == nil {
		logs = []*LogView{}
	}

	total, err := q.readStore.Count(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &LogPage{Logs: logs, Total: total}, nil
}
