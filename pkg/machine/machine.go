package machine

import (
	"fmt"

	"github.com/factlane/factlane/pkg/domain"
)

// Action mutates the working context in response to a transition. It receives
// the current context and the triggering event, and returns the context to
// carry forward. An error aborts the transition before any state change is
// observable.
type Action func(ctx domain.Context, ev domain.Event) (domain.Context, error)

// Transition is one edge of the table: a target state and the ordered actions
// to run while taking it.
type Transition struct {
	Target  domain.StateValue
	Actions []Action
}

// Definition is a declarative state machine: a transition table keyed by
// (state path, event type), initial-substate resolution for compound states,
// and a set of final states. Definitions are immutable after construction and
// safe for concurrent use; all per-instance data lives in the Snapshot.
type Definition struct {
	// Name identifies the machine in logs and metrics.
	Name string

	// Initial is the state a fresh instance starts in.
	Initial domain.StateValue

	// InitialSubstates maps a compound state to the substate entered when the
	// compound state is targeted directly.
	InitialSubstates map[domain.StateValue]string

	// Finals marks terminal states. A final state has no outgoing
	// transitions; every event sent to it is ignored.
	Finals map[domain.StateValue]bool

	// Table maps a state path to its event handlers. Lookup falls back from
	// the exact path to enclosing paths, so a compound state's handlers fire
	// from any of its substates.
	Table map[domain.StateValue]map[domain.EventType]Transition
}

// Result describes the outcome of sending one event.
type Result struct {
	// Handled is false when the current state defines no transition for the
	// event. The event is discarded: no actions ran, the snapshot is
	// unchanged, and no persistence write should follow.
	Handled bool

	Event domain.EventType
	From  domain.StateValue
	To    domain.StateValue

	// Final reports whether the transition entered a terminal state.
	Final bool
}

// NewSnapshot creates a fresh instance snapshot at the machine's initial
// state, with compound initials resolved.
func (d *Definition) NewSnapshot() *domain.Snapshot {
	return domain.NewSnapshot(d.resolve(d.Initial))
}

// Send applies one event to a snapshot and returns the resulting snapshot.
// The input snapshot is never mutated. If the current state defines no
// transition for the event, the input snapshot is returned unchanged with
// Result.Handled == false and a nil error. If an action fails, the error is
// returned and the instance is considered untouched.
func (d *Definition) Send(snap *domain.Snapshot, ev domain.Event) (*domain.Snapshot, Result, error) {
	res := Result{Event: ev.Type, From: snap.Value}

	tr, ok := d.lookup(snap.Value, ev.Type)
	if !ok {
		return snap, res, nil
	}

	// Work on a copy: the caller's snapshot must stay untouched even when an
	// action returns its input unchanged, or when there are no actions at all.
	ctx := snap.Context.Clone()
	for _, act := range tr.Actions {
		next, err := act(ctx, ev)
		if err != nil {
			return snap, res, fmt.Errorf("machine %s: event %s in state %s: %w", d.Name, ev.Type, snap.Value, err)
		}
		ctx = next
	}

	target := tr.Target
	if target == "" {
		// Self transition: data accumulation without advancing the state.
		target = snap.Value
	}
	target = d.resolve(target)

	res.Handled = true
	res.To = target
	res.Final = d.Finals[target]

	return &domain.Snapshot{Value: target, Context: ctx}, res, nil
}

// CanHandle reports whether the given state has a transition for the event.
func (d *Definition) CanHandle(state domain.StateValue, et domain.EventType) bool {
	_, ok := d.lookup(state, et)
	return ok
}

// lookup finds the transition for (state, event), walking up the state path
// so compound-level handlers fire from any substate.
func (d *Definition) lookup(state domain.StateValue, et domain.EventType) (Transition, bool) {
	for s := state; s != ""; s = s.Parent() {
		if handlers, ok := d.Table[s]; ok {
			if tr, ok := handlers[et]; ok {
				return tr, true
			}
		}
	}
	return Transition{}, false
}

// resolve descends into compound states until a leaf state is reached.
func (d *Definition) resolve(state domain.StateValue) domain.StateValue {
	for {
		sub, ok := d.InitialSubstates[state]
		if !ok {
			return state
		}
		state = state.Child(sub)
	}
}
