package domain

// Snapshot is the durable representation of a workflow instance between
// client interactions: the current state value plus the accumulated context.
// It is keyed externally by the instance's content hash.
type Snapshot struct {
	Value   StateValue `json:"value"`
	Context Context    `json:"context"`
}

// NewSnapshot creates a snapshot at the given state with an empty context.
func NewSnapshot(value StateValue) *Snapshot {
	return &Snapshot{
		Value:   value,
		Context: make(Context),
	}
}

// Clone returns an independent copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Value:   s.Value,
		Context: s.Context.Clone(),
	}
}
