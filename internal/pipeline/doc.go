// Package pipeline sequences the analysis stages over one transcript.
//
// Stages run strictly in order because later stages consume earlier outputs
// as context. Each stage is isolated: a failure or panic inside one stage is
// logged and recorded on that section, and the remaining stages still run
// against a well-formed partial result. Only persistence failures and
// invalid configuration abort a run.
package pipeline
