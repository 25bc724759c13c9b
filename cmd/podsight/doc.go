// Command podsight analyzes spoken-content transcripts: it produces an
// extractive summary, research topics and findings, a multi-label
// categorization, and a rule-based quality validation, then stores the
// combined result in a local library.
package main
