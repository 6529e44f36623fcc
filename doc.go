/*
Package factlane is a workflow engine for fact-checking platforms: it drives
claim reviews and claim creations through declarative, hierarchical state
machines and reliably persists every transition.

# Concept

A workflow instance is identified by a content hash of the text under review.
Between client interactions only its snapshot exists: the current state value
plus the accumulated context. Each incoming event reconstructs the
machine at that state, applies exactly one transition, and persists the
result. Side effects (creating the permanent report and claim review on
publish, writing the claim on persist) run at defined state boundaries and
surface their errors to the caller instead of firing and forgetting.

# Key Features

  - Declarative machines: transition tables with compound states and
    parent-level fallback, mirroring the review lifecycle
    (unassigned → assigned → reported → published).
  - Merge-only context: later transitions never silently drop fields written
    by earlier ones.
  - Ignored-by-design: events a state does not recognize are discarded
    without error and without a persistence write.
  - Pluggable persistence: in-memory, file, and Redis snapshot stores, plus
    optional distributed locking per content hash.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/factlane/factlane"
		"github.com/factlane/factlane/pkg/domain"
	)

	func main() {
		eng := factlane.New()
		ctx := context.Background()

		hash := factlane.Hash("the earth is flat")

		snap, err := eng.DispatchReview(ctx, hash, domain.Event{
			Type:    domain.EventAssignUser,
			Payload: map[string]any{domain.KeyReviewerID: "u1"},
		})
		if err != nil {
			log.Fatal(err)
		}

		log.Printf("state=%s reviewer=%v", snap.Value, snap.Context[domain.KeyReviewerID])
	}
*/
package factlane
