// Package services implements the driving ports on top of the driven
// ports. Services hold the business rules: the cache validity policy,
// the load/index pipeline, and the selection mapping.
package services
