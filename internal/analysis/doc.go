// Package analysis implements the heuristic content-intelligence stages:
// extractive summarization, topic and finding extraction, multi-label
// categorization with contextual boosting, tag extraction, and rule-based
// quality validation.
//
// Every stage is a pure function of its inputs. Scoring is deterministic:
// candidate ordering always carries an explicit tie-break so identical
// transcripts produce identical results. Stage entry points accept raw
// transcript text and normalize it themselves; no stage mutates another
// stage's output.
package analysis
