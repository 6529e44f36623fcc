package domain

// EventType identifies a workflow event.
type EventType string

// Review-task machine events.
const (
	EventAssignUser   EventType = "ASSIGN_USER"
	EventSaveDraft    EventType = "SAVE_DRAFT"
	EventFinishReport EventType = "FINISH_REPORT"
	EventPublish      EventType = "PUBLISH"
)

// Claim-creation machine events.
const (
	EventStartSpeech     EventType = "startSpeech"
	EventStartImage      EventType = "startImage"
	EventAddPersonality  EventType = "addPersonality"
	EventSavePersonality EventType = "savePersonality"
	EventNoPersonality   EventType = "noPersonality"
	EventPersist         EventType = "persist"
)

// Event is one client action submitted against a workflow instance.
// Payload carries the partial context contributed by this action. Recaptcha
// is staged per-action for boundary validation and is never merged into the
// durable context.
type Event struct {
	Type      EventType      `json:"type"`
	Payload   map[string]any `json:"payload,omitempty"`
	Recaptcha string         `json:"recaptcha,omitempty"`
}
