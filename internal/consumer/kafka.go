package consumer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"github.com/eventpulse/stats/internal/config"
)

// ErrSkipRecord marks a record that is domain-invalid but safe to step over.
// The loop logs it, commits its offset and moves on. Any other handler error
// is fatal for the loop: offsets stay uncommitted and the record is
// redelivered after restart.
var ErrSkipRecord = errors.New("skip record")

// Handler processes one fetched message. All side effects (state mutation,
// downstream publish, persistence) must complete before Handle returns,
// because the loop commits the offset right after.
type Handler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// Consumer is a single-goroutine Kafka consumer with manual offset commit.
type Consumer struct {
	reader  *kafka.Reader
	handler Handler
}

func New(cfg config.KafkaConfig, topic, group string, handler Handler) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    topic,
		GroupID:  group,
		MinBytes: 1e3,  // 1KB
		MaxBytes: 10e6, // 10MB
		// Async commit flushes during steady state; Close performs the
		// final synchronous flush on shutdown.
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})

	return &Consumer{
		reader:  reader,
		handler: handler,
	}
}

// Run consumes until ctx is cancelled or a fatal error occurs. Cancellation
// interrupts the blocking fetch and returns nil.
func (c *Consumer) Run(ctx context.Context) error {
	log.Info().
		Str("topic", c.reader.Config().Topic).
		Str("group", c.reader.Config().GroupID).
		Msg("Starting Kafka consumer")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().
					Str("group", c.reader.Config().GroupID).
					Msg("Kafka consumer stopped")
				return nil
			}
			return fmt.Errorf("fetch message: %w", err)
		}

		if err := c.handler.Handle(ctx, msg); err != nil {
			if !errors.Is(err, ErrSkipRecord) {
				return fmt.Errorf("handle message at %s/%d/%d: %w",
					msg.Topic, msg.Partition, msg.Offset, err)
			}
			log.Warn().
				Err(err).
				Str("topic", msg.Topic).
				Int("partition", msg.Partition).
				Int64("offset", msg.Offset).
				Msg("Skipping record")
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("commit offset: %w", err)
		}
	}
}

// Close flushes pending offset commits synchronously and releases the reader.
func (c *Consumer) Close() error {
	log.Info().
		Str("group", c.reader.Config().GroupID).
		Msg("Closing Kafka consumer")
	return c.reader.Close()
}
