package logstore

import (
	"context"
	"fmt"
	"strings"

	"hotel-platform/internal/domain/logevent"
	"hotel-platform/internal/infra"
	"hotel-platform/internal/infra/db"
	"hotel-platform/internal/usecase/queries"
)

const insertLogSQL = `
INSERT INTO logs (id, level, message, service_name, timestamp)
VALUES ($1, $2, $3, $4, $5)`

type PostgresStore struct {
	db db.DBTX
}

func NewPostgresStore(db db.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, event *logevent.Event) error {
	_, err := s.db.Exec(ctx, insertLogSQL,
		event.ID, int16(event.Level), event.Message, event.ServiceName, event.Timestamp)
	if err != nil {
		return infra.WrapRepoErr("failed to insert log event", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, filter queries.LogFilter) ([]*queries.LogView, error) {
	query, args := buildListQuery(filter)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list log events", err)
	}
	defer rows.Close()

	views := make([]*queries.LogView, 0)
	for rows.Next() {
		var (
			v     queries.LogView
			level int16
		)
		if err := rows.Scan(&v.ID, &level, &v.Message, &v.ServiceName, &v.Timestamp); err != nil {
			return nil, infra.WrapRepoErr("failed to scan log event", err)
		}
		v.Level = int(level)
		v.Timestamp = v.Timestamp.UTC()
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate log events", err)
	}
	return views, nil
}

func (s *PostgresStore) Count(ctx context.Context, filter queries.LogFilter) (int, error) {
	query, args := buildCountQuery(filter)

	var total int64
	if err := s.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to count log events", err)
	}
	return int(total), nil
}

// buildWhere renders the optional level and service filters with positional
// placeholders starting at $1.
func buildWhere(filter queries.LogFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Level != nil {
		args = append(args, int16(*filter.Level))
		conds = append(conds, fmt.Sprintf("level = $%d", len(args)))
	}
	if filter.ServiceName != nil {
		args = append(args, *filter.ServiceName)
		conds = append(conds, fmt.Sprintf("service_name = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func buildListQuery(filter queries.LogFilter) (string, []any) {
	where, args := buildWhere(filter)

	var b strings.Builder
	b.WriteString("SELECT id, level, message, service_name, timestamp FROM logs")
	b.WriteString(where)
	args = append(args, filter.Limit)
	fmt.Fprintf(&b, " ORDER BY timestamp DESC, id LIMIT $%d", len(args))
	return b.String(), args
}

func buildCountQuery(filter queries.LogFilter) (string, []any) {
	where, args := buildWhere(filter)
	return "SELECT count(*) FROM logs" + where, args
}
