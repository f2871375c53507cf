// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports).
//
// Driven ports are implemented by adapters in internal/adapters/driven
// and consumed by the core services. The core never depends on a
// concrete adapter.
package driven
