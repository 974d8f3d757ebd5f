package telemetry

import (
	"encoding/json"
	"time"
)

// Stats summarizes engine activity since a point in time.
type Stats struct {
	Period           string            `json:"period"`
	EventCounts      map[EventType]int `json:"event_counts"`
	BoardsByTier     map[string]int    `json:"boards_by_tier"`
	GenerationFails  int               `json:"generation_fails"`
	ValidationsReady int               `json:"validations_ready"`
	ValidationsTotal int               `json:"validations_total"`
	ClaimsOK         int               `json:"claims_ok"`
	ClaimsTotal      int               `json:"claims_total"`
}

// CalculateStats folds events into season-tuning numbers.
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:       since.Format("2006-01-02"),
		EventCounts:  make(map[EventType]int),
		BoardsByTier: make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventBoardGenerated:
			if tier, ok := metadata["tier"].(string); ok {
				stats.BoardsByTier[tier]++
			}
		case EventGenerationFailed:
			stats.GenerationFails++
		case EventBoardValidated:
			stats.ValidationsTotal++
			if ready, ok := metadata["ready"].(bool); ok && ready {
				stats.ValidationsReady++
			}
		case EventClaimChecked:
			stats.ClaimsTotal++
			if ok2, ok := metadata["ok"].(bool); ok && ok2 {
				stats.ClaimsOK++
			}
		}
	}

	return stats, nil
}
