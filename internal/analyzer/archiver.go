package analyzer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/eventpulse/stats/internal/consumer"
	"github.com/eventpulse/stats/internal/model"
)

// ActionStore is the durable per-(user, event) interaction record.
type ActionStore interface {
	Get(ctx context.Context, userID, eventID int64) (*model.UserAction, error)
	Save(ctx context.Context, a model.UserAction) error
}

// Archiver keeps one row per (user, event) holding the highest-weight
// action seen. Equal-weight actions overwrite the stored row, so ties keep
// the newest timestamp. That is looser than the aggregator's strict-greater
// rule and is kept that way on purpose.
type Archiver struct {
	store ActionStore
}

func NewArchiver(store ActionStore) *Archiver {
	return &Archiver{store: store}
}

func (a *Archiver) Handle(ctx context.Context, msg kafka.Message) error {
	var action model.UserAction
	if err := json.Unmarshal(msg.Value, &action); err != nil {
		return fmt.Errorf("decode user action: %w", err)
	}
	if err := action.Validate(); err != nil {
		return fmt.Errorf("%w: %s", consumer.ErrSkipRecord, err)
	}

	existing, err := a.store.Get(ctx, action.UserID, action.EventID)
	if err != nil {
		return fmt.Errorf("load existing action: %w", err)
	}

	if existing != nil && action.ActionType.Weight() < existing.ActionType.Weight() {
		log.Debug().
			Int64("user_id", action.UserID).
			Int64("event_id", action.EventID).
			Str("stored", string(existing.ActionType)).
			Str("incoming", string(action.ActionType)).
			Msg("Stored action outweighs incoming, keeping it")
		return nil
	}

	if err := a.store.Save(ctx, action); err != nil {
		return fmt.Errorf("save action: %w", err)
	}

	log.Debug().
		Int64("user_id", action.UserID).
		Int64("event_id", action.EventID).
		Str("action", string(action.ActionType)).
		Msg("Archived user action")

	return nil
}
