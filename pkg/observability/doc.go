/*
Package observability provides Prometheus instrumentation for the workflow
engine, exposed as lifecycle hooks that plug into the dispatcher.
*/
package observability
