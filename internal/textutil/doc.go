// Package textutil provides text processing utilities for transcript
// normalization, tokenization, and sentence splitting.
//
// The primary use cases are:
//   - Cleaning raw speech-to-text output (filler words, whitespace runs,
//     repeated punctuation)
//   - Splitting normalized text into words and sentences for scoring
//   - Producing slugs and normalized prefixes for deduplication sets
//
// Word extraction lowercases text, splits on whitespace, and trims the
// punctuation characters speech transcripts commonly carry. Sentence
// splitting treats '.', '!', and '?' as terminal.
package textutil
