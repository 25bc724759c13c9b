// Package assess wraps the optional local language-model endpoint used to
// enrich validation output with one-sentence quality assessments.
//
// The service is strictly best-effort: reachability is probed before use and
// every failure degrades to an empty assessment rather than an error the
// pipeline would act on.
package assess
