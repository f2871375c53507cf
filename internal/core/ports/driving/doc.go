// Package driving provides interfaces exposed to user-facing adapters
// (primary/inbound ports).
//
// Driving ports are implemented by the core services and consumed by
// the CLI adapter. They are the only surface the presentation layer
// sees.
package driving
