package analyzer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"github.com/eventpulse/stats/internal/consumer"
	"github.com/eventpulse/stats/internal/model"
)

type fakeActionStore struct {
	rows   map[[2]int64]model.UserAction
	getErr error
}

func newFakeActionStore() *fakeActionStore {
	return &fakeActionStore{rows: make(map[[2]int64]model.UserAction)}
}

func (s *fakeActionStore) Get(ctx context.Context, userID, eventID int64) (*model.UserAction, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	a, ok := s.rows[[2]int64{userID, eventID}]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (s *fakeActionStore) Save(ctx context.Context, a model.UserAction) error {
	s.rows[[2]int64{a.UserID, a.EventID}] = a
	return nil
}

func archiveMessage(t *testing.T, a model.UserAction) kafka.Message {
	t.Helper()
	data, err := json.Marshal(a)
	require.NoError(t, err)
	return kafka.Message{Value: data}
}

func userAction(userID, eventID int64, at model.ActionType, ts time.Time) model.UserAction {
	return model.UserAction{UserID: userID, EventID: eventID, ActionType: at, Timestamp: ts}
}

func TestArchiverInsertsNewAction(t *testing.T) {
	store := newFakeActionStore()
	a := NewArchiver(store)

	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	err := a.Handle(context.Background(), archiveMessage(t, userAction(1, 2, model.ActionView, ts)))
	require.NoError(t, err)

	stored := store.rows[[2]int64{1, 2}]
	require.Equal(t, model.ActionView, stored.ActionType)
	require.Equal(t, ts, stored.Timestamp)
}

func TestArchiverKeepsHighestWeight(t *testing.T) {
	store := newFakeActionStore()
	a := NewArchiver(store)
	ctx := context.Background()

	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, a.Handle(ctx, archiveMessage(t, userAction(1, 2, model.ActionLike, t0))))
	require.NoError(t, a.Handle(ctx, archiveMessage(t, userAction(1, 2, model.ActionView, t0.Add(time.Hour)))))

	stored := store.rows[[2]int64{1, 2}]
	require.Equal(t, model.ActionLike, stored.ActionType, "lower-weight action must not overwrite")
	require.Equal(t, t0, stored.Timestamp)
}

func TestArchiverEqualWeightTakesNewest(t *testing.T) {
	store := newFakeActionStore()
	a := NewArchiver(store)
	ctx := context.Background()

	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)
	require.NoError(t, a.Handle(ctx, archiveMessage(t, userAction(1, 2, model.ActionRegister, t0))))
	require.NoError(t, a.Handle(ctx, archiveMessage(t, userAction(1, 2, model.ActionRegister, t1))))

	stored := store.rows[[2]int64{1, 2}]
	require.Equal(t, t1, stored.Timestamp, "equal weight overwrites, keeping the newest")
}

func TestArchiverMalformedRecordIsFatal(t *testing.T) {
	a := NewArchiver(newFakeActionStore())

	err := a.Handle(context.Background(), kafka.Message{Value: []byte("{broken")})
	require.Error(t, err)
	require.NotErrorIs(t, err, consumer.ErrSkipRecord)
}

func TestArchiverInvalidIDIsSkippable(t *testing.T) {
	store := newFakeActionStore()
	a := NewArchiver(store)

	err := a.Handle(context.Background(), archiveMessage(t, userAction(0, 2, model.ActionView, time.Now())))
	require.ErrorIs(t, err, consumer.ErrSkipRecord)
	require.Empty(t, store.rows)
}

func TestArchiverStoreFailureIsFatal(t *testing.T) {
	store := newFakeActionStore()
	store.getErr = context.DeadlineExceeded
	a := NewArchiver(store)

	err := a.Handle(context.Background(), archiveMessage(t, userAction(1, 2, model.ActionView, time.Now())))
	require.Error(t, err)
	require.NotErrorIs(t, err, consumer.ErrSkipRecord)
}
