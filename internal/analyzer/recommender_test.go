package analyzer

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/eventpulse/stats/internal/model"
)

type fakeActionRepo struct {
	actions []model.UserAction
}

func (r *fakeActionRepo) RecentByUser(ctx context.Context, userID int64, limit int) ([]model.UserAction, error) {
	var mine []model.UserAction
	for _, a := range r.actions {
		if a.UserID == userID {
			mine = append(mine, a)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].Timestamp.After(mine[j].Timestamp) })
	if len(mine) > limit {
		mine = mine[:limit]
	}
	return mine, nil
}

func (r *fakeActionRepo) EventIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for _, a := range r.actions {
		if a.UserID == userID {
			ids = append(ids, a.EventID)
		}
	}
	return ids, nil
}

func (r *fakeActionRepo) ByEventIDs(ctx context.Context, eventIDs []int64) ([]model.UserAction, error) {
	want := make(map[int64]struct{}, len(eventIDs))
	for _, id := range eventIDs {
		want[id] = struct{}{}
	}
	var out []model.UserAction
	for _, a := range r.actions {
		if _, ok := want[a.EventID]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func at(ts int) time.Time {
	return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(ts) * time.Minute)
}

func sim(a, b int64, score float64) model.EventSimilarity {
	return model.EventSimilarity{EventA: a, EventB: b, Score: score, Timestamp: at(0)}
}

func TestRecommendationsForUserEmptyHistory(t *testing.T) {
	r := NewRecommender(&fakeActionRepo{}, &fakeSimilarityStore{}, nil, time.Minute)

	recs, err := r.RecommendationsForUser(context.Background(), 42, 10)
	require.NoError(t, err)
	require.Empty(t, recs, "no history is an empty result, not an error")
}

func TestRecommendationsForUserSuggestsUnseenEndpoints(t *testing.T) {
	actions := &fakeActionRepo{actions: []model.UserAction{
		{UserID: 1, EventID: 10, ActionType: model.ActionLike, Timestamp: at(3)},
		{UserID: 1, EventID: 11, ActionType: model.ActionView, Timestamp: at(2)},
	}}
	sims := &fakeSimilarityStore{rows: []model.EventSimilarity{
		sim(10, 20, 0.9),
		sim(10, 11, 0.8), // both endpoints interacted: dropped
		sim(11, 30, 0.5),
	}}
	r := NewRecommender(actions, sims, nil, time.Minute)

	recs, err := r.RecommendationsForUser(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, model.RecommendedEvent{EventID: 20, Score: 0.9}, recs[0])
	require.Equal(t, model.RecommendedEvent{EventID: 30, Score: 0.5}, recs[1])
}

func TestRecommendationsForUserExcludesFullHistoryNotJustWindow(t *testing.T) {
	// Event 30 was interacted with long ago: outside the recent window but
	// still excluded from suggestions.
	actions := &fakeActionRepo{actions: []model.UserAction{
		{UserID: 1, EventID: 30, ActionType: model.ActionView, Timestamp: at(0)},
		{UserID: 1, EventID: 10, ActionType: model.ActionLike, Timestamp: at(5)},
	}}
	sims := &fakeSimilarityStore{rows: []model.EventSimilarity{
		sim(10, 30, 0.9),
		sim(10, 40, 0.4),
	}}
	r := NewRecommender(actions, sims, nil, time.Minute)

	recs, err := r.RecommendationsForUser(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, int64(40), recs[0].EventID, "pair fully inside user history must be dropped")
}

func TestRecommendationsForUserClampsMaxResults(t *testing.T) {
	actions := &fakeActionRepo{actions: []model.UserAction{
		{UserID: 1, EventID: 10, ActionType: model.ActionLike, Timestamp: at(1)},
	}}
	sims := &fakeSimilarityStore{rows: []model.EventSimilarity{
		sim(10, 20, 0.9),
		sim(10, 30, 0.8),
	}}
	r := NewRecommender(actions, sims, nil, time.Minute)

	recs, err := r.RecommendationsForUser(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, recs, 1, "maxResults below 1 is clamped to 1")
	require.Equal(t, int64(20), recs[0].EventID)
}

func TestSimilarEventsKeepsHalfExploredPairs(t *testing.T) {
	// User interacted with the query event but not with the candidate: the
	// pair must be included.
	actions := &fakeActionRepo{actions: []model.UserAction{
		{UserID: 1, EventID: 10, ActionType: model.ActionLike, Timestamp: at(1)},
		{UserID: 1, EventID: 11, ActionType: model.ActionView, Timestamp: at(2)},
	}}
	sims := &fakeSimilarityStore{rows: []model.EventSimilarity{
		sim(10, 20, 0.7),
		sim(10, 11, 0.9), // both endpoints known: dropped
	}}
	r := NewRecommender(actions, sims, nil, time.Minute)

	recs, err := r.SimilarEvents(context.Background(), 1, 10, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, model.RecommendedEvent{EventID: 20, Score: 0.7}, recs[0])
}

func TestSimilarEventsOrdersByScore(t *testing.T) {
	actions := &fakeActionRepo{}
	sims := &fakeSimilarityStore{rows: []model.EventSimilarity{
		sim(10, 20, 0.2),
		sim(10, 30, 0.9),
		sim(5, 10, 0.6),
	}}
	r := NewRecommender(actions, sims, nil, time.Minute)

	recs, err := r.SimilarEvents(context.Background(), 1, 10, 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, int64(30), recs[0].EventID)
	require.Equal(t, int64(5), recs[1].EventID)
}

func TestInteractionsCountWeightedSums(t *testing.T) {
	actions := &fakeActionRepo{actions: []model.UserAction{
		{UserID: 1, EventID: 1, ActionType: model.ActionLike, Timestamp: at(1)},
		{UserID: 2, EventID: 1, ActionType: model.ActionView, Timestamp: at(2)},
		{UserID: 1, EventID: 2, ActionType: model.ActionRegister, Timestamp: at(3)},
	}}
	r := NewRecommender(actions, &fakeSimilarityStore{}, nil, time.Minute)

	recs, err := r.InteractionsCount(context.Background(), []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, recs, 2, "events without interactions are omitted")
	require.Equal(t, int64(1), recs[0].EventID)
	require.InDelta(t, 1.4, recs[0].Score, 1e-9)
	require.Equal(t, int64(2), recs[1].EventID)
	require.InDelta(t, 0.8, recs[1].Score, 1e-9)
}

func TestInteractionsCountAgreesWithAggregatorWeights(t *testing.T) {
	// Same dedup contract as the aggregator: one highest-weight action per
	// (user, event). The worked sequence view(1), like(2), like(1) archives
	// LIKE for both events.
	actions := &fakeActionRepo{actions: []model.UserAction{
		{UserID: 7, EventID: 1, ActionType: model.ActionLike, Timestamp: at(3)},
		{UserID: 7, EventID: 2, ActionType: model.ActionLike, Timestamp: at(2)},
	}}
	r := NewRecommender(actions, &fakeSimilarityStore{}, nil, time.Minute)

	recs, err := r.InteractionsCount(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.InDelta(t, 1.0, recs[0].Score, 1e-9)
	require.InDelta(t, 1.0, recs[1].Score, 1e-9)
}

func TestInteractionsCountEmptyRequest(t *testing.T) {
	r := NewRecommender(&fakeActionRepo{}, &fakeSimilarityStore{}, nil, time.Minute)

	recs, err := r.InteractionsCount(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, recs)
}
