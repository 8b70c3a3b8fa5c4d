package aggregator

import (
	"math"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/eventpulse/stats/internal/model"
)

// Engine maintains the incremental co-visitation similarity state.
//
// State is process-local and volatile: a restart starts from empty and
// similarity converges again as the action stream flows. The update rule is
// idempotent under replay, so at-least-once delivery from the consumer is
// safe.
type Engine struct {
	mu sync.Mutex

	// userWeights[eventID][userID] is the highest weight ever observed for
	// that (user, event) pair. Monotonically non-decreasing per key.
	userWeights map[int64]map[int64]float64

	// weightSums[eventID] is the sum of userWeights[eventID] values,
	// recomputed after every change to the owning event.
	weightSums map[int64]float64

	// minWeightSums[minID][maxID] is the running sum over shared users of
	// min(weightA, weightB), maintained by delta only.
	minWeightSums map[int64]map[int64]float64

	// userEvents[userID] is the set of events the user has touched, so the
	// pair fan-out per action is bounded by user activity rather than the
	// size of the catalog.
	userEvents map[int64]map[int64]struct{}
}

func NewEngine() *Engine {
	return &Engine{
		userWeights:   make(map[int64]map[int64]float64),
		weightSums:    make(map[int64]float64),
		minWeightSums: make(map[int64]map[int64]float64),
		userEvents:    make(map[int64]map[int64]struct{}),
	}
}

// Apply folds one user action into the state and returns the similarity
// updates for every pair whose score may have changed. A non-improving
// action (new weight not strictly greater than the stored one) mutates
// nothing and emits nothing.
func (e *Engine) Apply(action model.UserAction) ([]model.EventSimilarity, error) {
	if err := action.Validate(); err != nil {
		return nil, err
	}

	userID := action.UserID
	eventID := action.EventID
	newWeight := action.ActionType.Weight()

	e.mu.Lock()
	defer e.mu.Unlock()

	weights, ok := e.userWeights[eventID]
	if !ok {
		weights = make(map[int64]float64)
		e.userWeights[eventID] = weights
	}

	oldWeight, hadWeight := weights[userID]
	if hadWeight && oldWeight >= newWeight {
		log.Debug().
			Int64("user_id", userID).
			Int64("event_id", eventID).
			Float64("old", oldWeight).
			Float64("new", newWeight).
			Msg("Weight did not improve, skipping recompute")
		return nil, nil
	}

	weights[userID] = newWeight
	e.weightSums[eventID] = sumValues(weights)

	events, ok := e.userEvents[userID]
	if !ok {
		events = make(map[int64]struct{})
		e.userEvents[userID] = events
	}
	events[eventID] = struct{}{}

	return e.recomputePairs(userID, eventID, oldWeight, newWeight, action), nil
}

// recomputePairs walks every other event the user has touched, applies the
// min-weight delta to the pair sum and recalculates the pair's score.
// Caller holds the lock.
func (e *Engine) recomputePairs(userID, eventA int64, oldWeight, newWeight float64, action model.UserAction) []model.EventSimilarity {
	var sims []model.EventSimilarity

	for eventB := range e.userEvents[userID] {
		if eventB == eventA {
			continue
		}

		weightB, ok := e.userWeights[eventB][userID]
		if !ok {
			continue
		}

		minID := min(eventA, eventB)
		maxID := max(eventA, eventB)

		delta := math.Min(newWeight, weightB) - math.Min(oldWeight, weightB)
		if delta != 0 {
			inner, ok := e.minWeightSums[minID]
			if !ok {
				inner = make(map[int64]float64)
				e.minWeightSums[minID] = inner
			}
			inner[maxID] += delta
		}

		score, ok := e.similarity(minID, maxID)
		if !ok {
			log.Debug().
				Int64("event_a", minID).
				Int64("event_b", maxID).
				Msg("Incomplete data for pair, skipping emission")
			continue
		}

		sims = append(sims, model.EventSimilarity{
			EventA:    minID,
			EventB:    maxID,
			Score:     score,
			Timestamp: action.Timestamp,
		})
	}

	// Deterministic emission order; map iteration is randomized.
	sort.Slice(sims, func(i, j int) bool {
		if sims[i].EventA != sims[j].EventA {
			return sims[i].EventA < sims[j].EventA
		}
		return sims[i].EventB < sims[j].EventB
	})

	return sims
}

// similarity computes the normalized score for a canonical pair. The second
// return value is false when one side's sums are not known yet.
func (e *Engine) similarity(minID, maxID int64) (float64, bool) {
	inner, ok := e.minWeightSums[minID]
	if !ok {
		return 0, false
	}
	sumMin, ok := inner[maxID]
	if !ok {
		return 0, false
	}
	sumA, ok := e.weightSums[minID]
	if !ok {
		return 0, false
	}
	sumB, ok := e.weightSums[maxID]
	if !ok {
		return 0, false
	}

	if sumA == 0 || sumB == 0 {
		return 0, true
	}
	return sumMin / math.Sqrt(sumA*sumB), true
}

func sumValues(m map[int64]float64) float64 {
	var sum float64
	for _, v := range m {
		sum += v
	}
	return sum
}
