package domain

import (
	"context"
	"time"
)

// TransitionEvent describes one completed transition of a workflow instance.
type TransitionEvent struct {
	Machine   string
	Hash      string
	Event     EventType
	From      StateValue
	To        StateValue
	Timestamp time.Time

	// Duration covers the whole dispatch: load, step, and save.
	Duration time.Duration
}

// IgnoredEvent describes an event that was discarded because the current
// state defines no transition for it.
type IgnoredEvent struct {
	Machine string
	Hash    string
	Event   EventType
	State   StateValue
}

// PublishEvent describes the publish side effect of a review task.
type PublishEvent struct {
	Hash      string
	ReportRef string
	Err       error
}

// LifecycleHooks defines callbacks for dispatcher observability.
// Nil callbacks are skipped.
type LifecycleHooks struct {
	OnTransition   func(context.Context, *TransitionEvent)
	OnEventIgnored func(context.Context, *IgnoredEvent)
	OnPublish      func(context.Context, *PublishEvent)
}
