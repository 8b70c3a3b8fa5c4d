package server

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/eventpulse/stats/internal/analyzer"
	"github.com/eventpulse/stats/internal/model"
	pb "github.com/eventpulse/stats/proto/statspb"
)

type stubActions struct {
	recent []model.UserAction
	ids    []int64
	err    error
}

func (s *stubActions) RecentByUser(ctx context.Context, userID int64, limit int) ([]model.UserAction, error) {
	return s.recent, s.err
}

func (s *stubActions) EventIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	return s.ids, s.err
}

func (s *stubActions) ByEventIDs(ctx context.Context, eventIDs []int64) ([]model.UserAction, error) {
	return nil, s.err
}

type stubSimilarities struct {
	rows []model.EventSimilarity
	err  error
}

func (s *stubSimilarities) ByEvent(ctx context.Context, eventID int64) ([]model.EventSimilarity, error) {
	return s.rows, s.err
}

type recordedStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []*pb.RecommendedEvent
}

func (s *recordedStream) Context() context.Context { return s.ctx }

func (s *recordedStream) Send(m *pb.RecommendedEvent) error {
	s.sent = append(s.sent, m)
	return nil
}

func newServer(actions analyzer.ActionRepository, sims analyzer.SimilarityRepository) *RecommendationServer {
	return NewRecommendationServer(analyzer.NewRecommender(actions, sims, nil, time.Minute))
}

func TestGetSimilarEventsStreamsScoredResults(t *testing.T) {
	s := newServer(&stubActions{}, &stubSimilarities{rows: []model.EventSimilarity{
		{EventA: 10, EventB: 20, Score: 0.7},
		{EventA: 10, EventB: 30, Score: 0.9},
	}})
	stream := &recordedStream{ctx: context.Background()}

	err := s.GetSimilarEvents(&pb.SimilarEventsRequest{UserId: 1, EventId: 10, MaxResults: 5}, stream)
	require.NoError(t, err)
	require.Len(t, stream.sent, 2)
	require.Equal(t, int64(30), stream.sent[0].GetEventId())
	require.InDelta(t, 0.9, stream.sent[0].GetScore(), 1e-9)
	require.Equal(t, int64(20), stream.sent[1].GetEventId())
}

func TestGetRecommendationsForUserEmptyHistoryCompletesEmpty(t *testing.T) {
	s := newServer(&stubActions{}, &stubSimilarities{})
	stream := &recordedStream{ctx: context.Background()}

	err := s.GetRecommendationsForUser(&pb.UserPredictionsRequest{UserId: 1, MaxResults: 5}, stream)
	require.NoError(t, err)
	require.Empty(t, stream.sent, "no history completes the stream without items")
}

func TestQueryFailureSurfacesAsInternal(t *testing.T) {
	s := newServer(&stubActions{err: context.DeadlineExceeded}, &stubSimilarities{})
	stream := &recordedStream{ctx: context.Background()}

	err := s.GetRecommendationsForUser(&pb.UserPredictionsRequest{UserId: 1, MaxResults: 5}, stream)
	require.Error(t, err)
	require.Equal(t, codes.Internal, status.Code(err))
}

func TestWireContractRegistered(t *testing.T) {
	// The committed generated code must carry a full file descriptor: the
	// service with its three server-streaming methods, and marshalable
	// message types.
	fd := pb.File_recommendations_proto
	require.NotNil(t, fd)
	require.Equal(t, 1, fd.Services().Len())

	svc := fd.Services().Get(0)
	require.Equal(t, "statspb.Recommendations", string(svc.FullName()))
	require.Equal(t, 3, svc.Methods().Len())
	for i := 0; i < svc.Methods().Len(); i++ {
		m := svc.Methods().Get(i)
		require.True(t, m.IsStreamingServer(), "%s must stream responses", m.Name())
		require.False(t, m.IsStreamingClient())
		require.Equal(t, "statspb.RecommendedEvent", string(m.Output().FullName()))
	}

	data, err := proto.Marshal(&pb.RecommendedEvent{EventId: 7, Score: 0.25})
	require.NoError(t, err)
	var decoded pb.RecommendedEvent
	require.NoError(t, proto.Unmarshal(data, &decoded))
	require.Equal(t, int64(7), decoded.GetEventId())
	require.InDelta(t, 0.25, decoded.GetScore(), 1e-9)
}
