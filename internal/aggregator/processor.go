package aggregator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/eventpulse/stats/internal/consumer"
	"github.com/eventpulse/stats/internal/model"
)

// Publisher delivers similarity updates downstream.
type Publisher interface {
	Publish(ctx context.Context, sims []model.EventSimilarity) error
}

// Processor binds the similarity engine to the action stream: decode,
// update state, publish changed pairs. Publishing completes before the
// consumer loop commits the triggering offset.
type Processor struct {
	engine    *Engine
	publisher Publisher
}

func NewProcessor(engine *Engine, publisher Publisher) *Processor {
	return &Processor{
		engine:    engine,
		publisher: publisher,
	}
}

func (p *Processor) Handle(ctx context.Context, msg kafka.Message) error {
	var action model.UserAction
	if err := json.Unmarshal(msg.Value, &action); err != nil {
		// Malformed records are fatal for the loop; the supervisor
		// restarts the process.
		return fmt.Errorf("decode user action: %w", err)
	}

	sims, err := p.engine.Apply(action)
	if err != nil {
		if errors.Is(err, model.ErrInvalidID) {
			return fmt.Errorf("%w: %s", consumer.ErrSkipRecord, err)
		}
		return err
	}
	if len(sims) == 0 {
		return nil
	}

	if err := p.publisher.Publish(ctx, sims); err != nil {
		return fmt.Errorf("publish similarities: %w", err)
	}

	log.Debug().
		Int64("user_id", action.UserID).
		Int64("event_id", action.EventID).
		Int("pairs", len(sims)).
		Msg("Published similarity updates")

	return nil
}
