package storage

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/google/uuid"

	"github.com/eventpulse/stats/internal/config"
	"github.com/eventpulse/stats/internal/model"
)

// SimilarityStore is the append-only similarity history in ClickHouse.
// Every update is a new row; a heavily-updated pair accumulates many rows
// and readers see the full history.
type SimilarityStore struct {
	conn driver.Conn
}

func NewSimilarityStore(ctx context.Context, cfg config.ClickHouseConfig) (*SimilarityStore, error) {
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{cfg.Addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
	})
	if err != nil {
		return nil, err
	}

	// Test connection
	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return &SimilarityStore{conn: conn}, nil
}

// Insert appends one similarity row.
func (s *SimilarityStore) Insert(ctx context.Context, sim model.EventSimilarity) error {
	return s.conn.Exec(ctx, `
		INSERT INTO event_similarity (id, event_a, event_b, score, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, uuid.New(), sim.EventA, sim.EventB, sim.Score, sim.Timestamp)
}

// ByEvent returns every row where the event appears on either side of the
// pair.
func (s *SimilarityStore) ByEvent(ctx context.Context, eventID int64) ([]model.EventSimilarity, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT event_a, event_b, score, updated_at
		FROM event_similarity
		WHERE event_a = ? OR event_b = ?
	`, eventID, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sims []model.EventSimilarity
	for rows.Next() {
		var sim model.EventSimilarity
		if err := rows.Scan(&sim.EventA, &sim.EventB, &sim.Score, &sim.Timestamp); err != nil {
			return nil, err
		}
		sims = append(sims, sim)
	}
	return sims, rows.Err()
}

func (s *SimilarityStore) Ping(ctx context.Context) error {
	return s.conn.Ping(ctx)
}

func (s *SimilarityStore) Close() error {
	return s.conn.Close()
}
