package repo

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/pkordes/travel-tracker/internal/domain"
	"github.com/pkordes/travel-tracker/internal/store"
)

// ChatLogRepo defines the persistence operations for saved assistant exchanges.
type ChatLogRepo interface {
	// Create inserts a question/answer pair and returns its generated id.
	Create(ctx context.Context, query, response string) (int64, error)

	// List returns all saved pairs in store order.
	List(ctx context.Context) ([]domain.ChatLog, error)

	// Delete removes a pair by id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
}

// sqlChatLogRepo is the database/sql implementation of ChatLogRepo.
type sqlChatLogRepo struct {
	db  store.Querier
	sql sq.StatementBuilderType
}

// NewChatLogRepo constructs a ChatLogRepo backed by the provided connection.
func NewChatLogRepo(db store.Querier, b sq.StatementBuilderType) ChatLogRepo {
	return &sqlChatLogRepo{db: db, sql: b}
}

func (r *sqlChatLogRepo) Create(ctx context.Context, query, response string) (int64, error) {
	q, args, err := r.sql.Insert("chat_logs").
		Columns("query_name", "query_response").
		Values(query, response).
		Suffix("RETURNING log_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("repo.ChatLogRepo.Create: build: %w", err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("repo.ChatLogRepo.Create: %w", err)
	}
	return id, nil
}

func (r *sqlChatLogRepo) List(ctx context.Context) ([]domain.ChatLog, error) {
	q, args, err := r.sql.Select("log_id", "query_name", "query_response").
		From("chat_logs").
		OrderBy("log_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("repo.ChatLogRepo.List: build: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("repo.ChatLogRepo.List: %w", err)
	}
	defer rows.Close()

	logs := []domain.ChatLog{}
	for rows.Next() {
		var (
			l           domain.ChatLog
			query, resp sql.NullString
		)
		if err := rows.Scan(&l.ID, &query, &resp); err != nil {
			return nil, fmt.Errorf("repo.ChatLogRepo.List: scan: %w", err)
		}
		l.Query, l.Response = query.String, resp.String
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ChatLogRepo.List: rows: %w", err)
	}
	return logs, nil
}

func (r *sqlChatLogRepo) Delete(ctx context.Context, id int64) error {
	q, args, err := r.sql.Delete("chat_logs").Where(sq.Eq{"log_id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("repo.ChatLogRepo.Delete: build: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("repo.ChatLogRepo.Delete: %w", err)
	}
	return nil
}
