package events

import "time"

const AdjustmentStatusChangedTopic = "comp.adjustment.status.v1"

type AdjustmentStatusChangedEvent struct {
	EventType    string    `json:"event_type"`
	AdjustmentID string    `json:"adjustment_id"`
	Kind         string    `json:"kind"`
	BranchID     string    `json:"branch_id"`
	UserID       string    `json:"user_id"`
	Status       string    `json:"status"`
	ActorID      string    `json:"actor_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
