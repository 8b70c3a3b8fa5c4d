package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eventpulse/stats/internal/model"
)

// UserActionStore keeps the durable "best observed action" per
// (user, event) in Postgres.
type UserActionStore struct {
	db *pgxpool.Pool
}

func NewUserActionStore(ctx context.Context, dsn string) (*UserActionStore, error) {
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return &UserActionStore{db: db}, nil
}

// Get returns the stored action for (user, event), or nil when none exists.
func (s *UserActionStore) Get(ctx context.Context, userID, eventID int64) (*model.UserAction, error) {
	var a model.UserAction
	err := s.db.QueryRow(ctx, `
		SELECT user_id, event_id, action_type, occurred_at
		FROM user_actions
		WHERE user_id = $1 AND event_id = $2
	`, userID, eventID).Scan(&a.UserID, &a.EventID, &a.ActionType, &a.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Save inserts or replaces the row for (user, event). The caller decides
// whether the replacement is allowed; rows are never deleted.
func (s *UserActionStore) Save(ctx context.Context, a model.UserAction) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO user_actions (user_id, event_id, action_type, occurred_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, event_id)
		DO UPDATE SET action_type = EXCLUDED.action_type, occurred_at = EXCLUDED.occurred_at
	`, a.UserID, a.EventID, a.ActionType, a.Timestamp)
	return err
}

// RecentByUser returns the user's most recent interactions, newest first.
func (s *UserActionStore) RecentByUser(ctx context.Context, userID int64, limit int) ([]model.UserAction, error) {
	rows, err := s.db.Query(ctx, `
		SELECT user_id, event_id, action_type, occurred_at
		FROM user_actions
		WHERE user_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActions(rows)
}

// EventIDsByUser returns every event the user has ever interacted with.
func (s *UserActionStore) EventIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := s.db.Query(ctx, `
		SELECT event_id FROM user_actions WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ByEventIDs returns all interaction rows for the given events.
func (s *UserActionStore) ByEventIDs(ctx context.Context, eventIDs []int64) ([]model.UserAction, error) {
	rows, err := s.db.Query(ctx, `
		SELECT user_id, event_id, action_type, occurred_at
		FROM user_actions
		WHERE event_id = ANY($1)
	`, eventIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanActions(rows)
}

func (s *UserActionStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *UserActionStore) Close() {
	s.db.Close()
}

func scanActions(rows pgx.Rows) ([]model.UserAction, error) {
	var actions []model.UserAction
	for rows.Next() {
		var a model.UserAction
		if err := rows.Scan(&a.UserID, &a.EventID, &a.ActionType, &a.Timestamp); err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}
