package analyzer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/eventpulse/stats/internal/model"
)

// SimilarityAppender persists similarity updates.
type SimilarityAppender interface {
	Insert(ctx context.Context, sim model.EventSimilarity) error
}

// SimilaritySink appends every similarity update delivered by the
// aggregator to durable storage. No merge by pair: the store is a history
// log.
type SimilaritySink struct {
	store SimilarityAppender
}

func NewSimilaritySink(store SimilarityAppender) *SimilaritySink {
	return &SimilaritySink{store: store}
}

func (s *SimilaritySink) Handle(ctx context.Context, msg kafka.Message) error {
	var sim model.EventSimilarity
	if err := json.Unmarshal(msg.Value, &sim); err != nil {
		return fmt.Errorf("decode event similarity: %w", err)
	}

	if err := s.store.Insert(ctx, sim); err != nil {
		return fmt.Errorf("insert similarity: %w", err)
	}
	return nil
}
