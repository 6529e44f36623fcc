/*
Package dispatch implements the client-facing event pipeline.

Each call to Dispatch is request-scoped: load snapshot, reconstruct the
machine at that state, apply one event, persist the resulting snapshot, run
the transition's side effect, discard the in-memory machine. Processing for
one content hash is serialized by refcounted in-process locks, optionally
backed by a distributed locker when multiple replicas share a store.
*/
package dispatch
