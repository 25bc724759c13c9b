// Package services defines shared error classification and context plumbing
// for external collaborators and pipeline stages.
//
// Sentinel errors mark the broad failure class (validation, configuration,
// external tool, timeout, transient) so the orchestrator and CLI can decide
// whether a failure is stage-local or pipeline-fatal without parsing
// messages. Context helpers annotate a context with the active stage name and
// run correlation ID so loggers can tag every line consistently.
package services
