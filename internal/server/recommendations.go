package server

import (
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/eventpulse/stats/internal/analyzer"
	"github.com/eventpulse/stats/internal/model"
	pb "github.com/eventpulse/stats/proto/statspb"
)

// RecommendationServer exposes the recommender queries over gRPC. Results
// are streamed; an empty result completes the stream without items, storage
// failures surface as gRPC errors.
type RecommendationServer struct {
	pb.UnimplementedRecommendationsServer
	recommender *analyzer.Recommender
}

func NewRecommendationServer(recommender *analyzer.Recommender) *RecommendationServer {
	return &RecommendationServer{recommender: recommender}
}

func (s *RecommendationServer) GetRecommendationsForUser(req *pb.UserPredictionsRequest, stream pb.Recommendations_GetRecommendationsForUserServer) error {
	recs, err := s.recommender.RecommendationsForUser(stream.Context(), req.GetUserId(), int(req.GetMaxResults()))
	if err != nil {
		log.Error().Err(err).Int64("user_id", req.GetUserId()).Msg("Recommendations query failed")
		return status.Errorf(codes.Internal, "recommendations for user %d: %v", req.GetUserId(), err)
	}
	return sendAll(recs, stream.Send)
}

func (s *RecommendationServer) GetSimilarEvents(req *pb.SimilarEventsRequest, stream pb.Recommendations_GetSimilarEventsServer) error {
	recs, err := s.recommender.SimilarEvents(stream.Context(), req.GetUserId(), req.GetEventId(), int(req.GetMaxResults()))
	if err != nil {
		log.Error().Err(err).Int64("event_id", req.GetEventId()).Msg("Similar events query failed")
		return status.Errorf(codes.Internal, "similar events for %d: %v", req.GetEventId(), err)
	}
	return sendAll(recs, stream.Send)
}

func (s *RecommendationServer) GetInteractionsCount(req *pb.InteractionsCountRequest, stream pb.Recommendations_GetInteractionsCountServer) error {
	recs, err := s.recommender.InteractionsCount(stream.Context(), req.GetEventId())
	if err != nil {
		log.Error().Err(err).Msg("Interactions count query failed")
		return status.Errorf(codes.Internal, "interactions count: %v", err)
	}
	return sendAll(recs, stream.Send)
}

func sendAll(recs []model.RecommendedEvent, send func(*pb.RecommendedEvent) error) error {
	for _, rec := range recs {
		if err := send(&pb.RecommendedEvent{EventId: rec.EventID, Score: rec.Score}); err != nil {
			return err
		}
	}
	return nil
}
