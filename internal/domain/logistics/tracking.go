package logistics

// Stage is a shipment's position in the delivery pipeline.
type Stage string

const (
	StageOrigin     Stage = "origin"
	StageInTransit  Stage = "in-transit"
	StageCustoms    Stage = "customs"
	StageInspection Stage = "inspection"
	StageDelivered  Stage = "delivered"
)

// ActiveShipment is a scheduled shipment in flight across rounds.
type ActiveShipment struct {
	ID            string
	From          string
	To            string
	Method        string
	DispatchRound int
	TotalRounds   int
}

// TrackingEvent is one synthesized milestone in a shipment's timeline.
type TrackingEvent struct {
	Stage       Stage
	Round       int
	Description string
}

// TrackingStatus is the derived state of a shipment at a point in time.
type TrackingStatus struct {
	Stage    Stage
	Progress float64 // [0, 1]
	Timeline []TrackingEvent
}

// stageThresholds maps progress fractions to pipeline stages. The stage is
// derived purely from elapsed-rounds-over-total-rounds, not from discrete
// events, so tracking needs no per-shipment state.
var stageThresholds = []struct {
	upTo  float64
	stage Stage
	desc  string
}{
	{0.1, StageOrigin, "awaiting pickup at origin"},
	{0.6, StageInTransit, "in transit"},
	{0.8, StageCustoms, "arrived at customs"},
	{0.95, StageInspection, "under inspection"},
	{1.0, StageDelivered, "delivered"},
}

// Track derives the shipment's current stage and a timeline consistent with
// its progress fraction.
func Track(s ActiveShipment, currentRound int) TrackingStatus {
	progress := 0.0
	if s.TotalRounds > 0 {
		progress = float64(currentRound-s.DispatchRound) / float64(s.TotalRounds)
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	status := TrackingStatus{Progress: progress}
	for _, t := range stageThresholds {
		status.Stage = t.stage
		if progress < t.upTo {
			break
		}
	}

	// Timeline: one event per stage already reached, placed at the round
	// where that stage began.
	prev := 0.0
	for _, t := range stageThresholds {
		if progress < prev {
			break
		}
		round := s.DispatchRound + int(prev*float64(s.TotalRounds))
		status.Timeline = append(status.Timeline, TrackingEvent{
			Stage:       t.stage,
			Round:       round,
			Description: t.desc,
		})
		if progress < t.upTo {
			break
		}
		prev = t.upTo
	}

	return status
}
