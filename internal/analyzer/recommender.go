package analyzer

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/eventpulse/stats/internal/model"
)

// ActionRepository reads the archived interaction records.
type ActionRepository interface {
	RecentByUser(ctx context.Context, userID int64, limit int) ([]model.UserAction, error)
	EventIDsByUser(ctx context.Context, userID int64) ([]int64, error)
	ByEventIDs(ctx context.Context, eventIDs []int64) ([]model.UserAction, error)
}

// SimilarityRepository reads the similarity history.
type SimilarityRepository interface {
	ByEvent(ctx context.Context, eventID int64) ([]model.EventSimilarity, error)
}

// Recommender answers the three read-only queries over archived actions and
// similarity history. It never mutates ingestion state and reads whatever
// has been durably committed so far.
type Recommender struct {
	actions      ActionRepository
	similarities SimilarityRepository

	// Optional cache for interaction counts; the event service calls that
	// query on every listing.
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewRecommender(actions ActionRepository, similarities SimilarityRepository, cache *redis.Client, cacheTTL time.Duration) *Recommender {
	return &Recommender{
		actions:      actions,
		similarities: similarities,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

// RecommendationsForUser suggests events similar to the user's most recent
// interactions, excluding pairs the user has fully explored. An empty
// interaction history yields an empty result.
func (r *Recommender) RecommendationsForUser(ctx context.Context, userID int64, maxResults int) ([]model.RecommendedEvent, error) {
	limit := clampLimit(maxResults)

	recent, err := r.actions.RecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("load recent interactions: %w", err)
	}
	if len(recent) == 0 {
		return nil, nil
	}

	recentEvents := make([]int64, 0, len(recent))
	seen := make(map[int64]struct{}, len(recent))
	for _, a := range recent {
		if _, ok := seen[a.EventID]; ok {
			continue
		}
		seen[a.EventID] = struct{}{}
		recentEvents = append(recentEvents, a.EventID)
	}

	// The exclusion set covers the user's full history, not just the
	// recent window.
	interacted, err := r.interactedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	var sims []model.EventSimilarity
	for _, eventID := range recentEvents {
		batch, err := r.similarities.ByEvent(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("load similarities for event %d: %w", eventID, err)
		}
		sims = append(sims, batch...)
	}

	return pickTop(sims, interacted, limit, func(sim model.EventSimilarity) int64 {
		if _, ok := interacted[sim.EventA]; ok {
			return sim.EventB
		}
		return sim.EventA
	}), nil
}

// SimilarEvents returns events similar to the given one. A pair is dropped
// only when the user has interacted with both of its endpoints.
func (r *Recommender) SimilarEvents(ctx context.Context, userID, eventID int64, maxResults int) ([]model.RecommendedEvent, error) {
	limit := clampLimit(maxResults)

	interacted, err := r.interactedSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	sims, err := r.similarities.ByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load similarities for event %d: %w", eventID, err)
	}

	return pickTop(sims, interacted, limit, func(sim model.EventSimilarity) int64 {
		if sim.EventA == eventID {
			return sim.EventB
		}
		return sim.EventA
	}), nil
}

// InteractionsCount returns the weighted popularity score per requested
// event: the sum of action weights over its archived interactions. Events
// without interactions are omitted.
func (r *Recommender) InteractionsCount(ctx context.Context, eventIDs []int64) ([]model.RecommendedEvent, error) {
	ids := make([]int64, 0, len(eventIDs))
	seen := make(map[int64]struct{}, len(eventIDs))
	for _, id := range eventIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	scores := make(map[int64]float64, len(ids))
	missing := ids
	if r.cache != nil {
		missing = r.fromCache(ctx, ids, scores)
	}

	if len(missing) > 0 {
		rows, err := r.actions.ByEventIDs(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("load interactions: %w", err)
		}
		computed := make(map[int64]float64, len(missing))
		for _, a := range rows {
			computed[a.EventID] += a.ActionType.Weight()
		}
		for id, score := range computed {
			scores[id] = score
		}
		r.toCache(ctx, computed)
	}

	var out []model.RecommendedEvent
	for _, id := range ids {
		score, ok := scores[id]
		if !ok {
			continue
		}
		out = append(out, model.RecommendedEvent{EventID: id, Score: score})
	}
	return out, nil
}

func (r *Recommender) interactedSet(ctx context.Context, userID int64) (map[int64]struct{}, error) {
	ids, err := r.actions.EventIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load interacted events: %w", err)
	}
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// fromCache fills scores for cached ids and returns the cache misses.
// Cache failures degrade to a full recompute.
func (r *Recommender) fromCache(ctx context.Context, ids []int64, scores map[int64]float64) []int64 {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = popularityKey(id)
	}

	values, err := r.cache.MGet(ctx, keys...).Result()
	if err != nil {
		log.Warn().Err(err).Msg("Popularity cache read failed")
		return ids
	}

	var missing []int64
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			missing = append(missing, ids[i])
			continue
		}
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			missing = append(missing, ids[i])
			continue
		}
		scores[ids[i]] = score
	}
	return missing
}

func (r *Recommender) toCache(ctx context.Context, computed map[int64]float64) {
	if r.cache == nil || len(computed) == 0 {
		return
	}
	pipe := r.cache.Pipeline()
	for id, score := range computed {
		pipe.Set(ctx, popularityKey(id), strconv.FormatFloat(score, 'f', -1, 64), r.cacheTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Warn().Err(err).Msg("Popularity cache write failed")
	}
}

func popularityKey(eventID int64) string {
	return "popularity:" + strconv.FormatInt(eventID, 10)
}

// pickTop filters out pairs whose both endpoints are already known to the
// user, orders the rest by score descending and maps the survivors to the
// endpoint chosen by pick.
func pickTop(sims []model.EventSimilarity, interacted map[int64]struct{}, limit int, pick func(model.EventSimilarity) int64) []model.RecommendedEvent {
	filtered := make([]model.EventSimilarity, 0, len(sims))
	for _, sim := range sims {
		_, hasA := interacted[sim.EventA]
		_, hasB := interacted[sim.EventB]
		if hasA && hasB {
			continue
		}
		filtered = append(filtered, sim)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	out := make([]model.RecommendedEvent, 0, len(filtered))
	for _, sim := range filtered {
		out = append(out, model.RecommendedEvent{EventID: pick(sim), Score: sim.Score})
	}
	return out
}

func clampLimit(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
