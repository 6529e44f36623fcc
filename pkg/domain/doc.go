/*
Package domain contains the core domain models for the factlane workflow engine.

It defines the fundamental entities of the review workflow, such as StateValue,
Context, Snapshot, and Event. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - StateValue: A hierarchical state path (e.g. "assigned.draft").
  - Context: The merge-only record a workflow instance accumulates across transitions.
  - Snapshot: The durable {value, context} pair representing an instance at rest.
  - Event: One client action, carrying a partial context payload.
*/
package domain
