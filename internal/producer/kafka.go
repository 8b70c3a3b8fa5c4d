package producer

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/eventpulse/stats/internal/config"
	"github.com/eventpulse/stats/internal/model"
)

// SimilarityWriter publishes similarity updates to the event-similarity
// topic. Writes are synchronous: the caller must not commit the offset of
// the triggering action before Publish returns.
type SimilarityWriter struct {
	writer *kafka.Writer
}

func NewSimilarityWriter(cfg config.KafkaConfig) *SimilarityWriter {
	return &SimilarityWriter{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic(config.TopicEventSimilarity),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: time.Millisecond * 10,
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// Publish writes all similarity records produced by one action. Messages are
// keyed by the lesser event id so updates for a pair stay partition-ordered.
func (w *SimilarityWriter) Publish(ctx context.Context, sims []model.EventSimilarity) error {
	if len(sims) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(sims))
	for _, sim := range sims {
		data, err := json.Marshal(sim)
		if err != nil {
			return err
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(strconv.FormatInt(sim.EventA, 10)),
			Value: data,
		})
	}

	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *SimilarityWriter) Close() error {
	return w.writer.Close()
}
