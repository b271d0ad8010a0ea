package events

import "time"

const TemplateAppliedTopic = "comp.adjustment.template.v1"

type TemplateAppliedEvent struct {
	EventType    string    `json:"event_type"`
	TemplateID   string    `json:"template_id"`
	Kind         string    `json:"kind"`
	BranchID     string    `json:"branch_id"`
	Period       string    `json:"period"`
	SuccessCount int       `json:"success_count"`
	FailureCount int       `json:"failure_count"`
	AppliedBy    string    `json:"applied_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}
