package domain

import "strings"

// StateValue is the current position of a workflow instance.
// Hierarchical states are encoded as a dot-separated path, e.g. "assigned.draft".
type StateValue string

// Review-task machine states.
const (
	StateUnassigned StateValue = "unassigned"
	StateAssigned   StateValue = "assigned"
	StateReported   StateValue = "reported"
	StatePublished  StateValue = "published"

	// Substates shared by the assigned and reported compound states.
	SubstateUndraft = "undraft"
	SubstateDraft   = "draft"
)

// Claim-creation machine states.
const (
	StateNotStarted       StateValue = "notStarted"
	StateSetupSpeech      StateValue = "setupSpeech"
	StateSetupImage       StateValue = "setupImage"
	StatePersonalityAdded StateValue = "personalityAdded"
	StatePersisted        StateValue = "persisted"
)

// Parent returns the enclosing compound state, or "" for a top-level state.
func (v StateValue) Parent() StateValue {
	i := strings.LastIndex(string(v), ".")
	if i < 0 {
		return ""
	}
	return v[:i]
}

// Leaf returns the innermost segment of the path.
func (v StateValue) Leaf() string {
	i := strings.LastIndex(string(v), ".")
	return string(v[i+1:])
}

// Child returns the path extended with a substate segment.
func (v StateValue) Child(sub string) StateValue {
	return v + "." + StateValue(sub)
}

// Matches reports whether v is the given state or nested inside it.
func (v StateValue) Matches(prefix StateValue) bool {
	if v == prefix {
		return true
	}
	return strings.HasPrefix(string(v), string(prefix)+".")
}
