/*
Package machine implements the declarative state machines driving the
fact-checking workflows.

A Definition is a transition table keyed by (state path, event type), with
fallback lookup to enclosing compound states and initial-substate resolution
on entry. Sending an event runs the transition's actions in order against a
working copy of the context; events with no matching transition are ignored
rather than rejected.

Two machines are defined: ReviewTask (unassigned → assigned → reported →
published) and CreateClaim (notStarted → setupSpeech/setupImage →
personalityAdded → persisted).
*/
package machine
