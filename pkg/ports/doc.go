/*
Package ports defines the driven ports (interfaces) for the factlane engine.

These interfaces decouple the core workflow logic from external
implementations, allowing the dispatcher to work with various storage
backends, publication sinks, and lock providers.

# Key Interfaces

  - SnapshotStore: Responsible for persisting and loading workflow snapshots.
  - ReviewPublisher: Creates the permanent Report and Claim-Review records on publish.
  - ClaimWriter: Performs the claim-creation write for the persist transition.
  - DistributedLocker: Provides distributed locking for concurrent access to one hash.
*/
package ports
