// Package telemetry records engine events so seasons can be tuned against
// real usage: how often boards are drafted, how often generation has to
// retry, which tiers players actually build for.
package telemetry

import "time"

type EventType string

const (
	EventBoardGenerated   EventType = "board_generated"
	EventGenerationFailed EventType = "generation_failed"
	EventBoardValidated   EventType = "board_validated"
	EventClaimChecked     EventType = "claim_checked"
	EventLabelsTranslated EventType = "labels_translated"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
