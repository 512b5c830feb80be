package chunker

import "strings"

// separators is the boundary priority order: paragraph breaks first, then
// line breaks, then sentence boundaries, then word boundaries. A split
// that still exceeds the chunk size after the last separator is cut at
// character boundaries.
var separators = []string{"\n\n", "\n", ". ", " "}

// splitter breaks text into segments at most chunkSize characters long,
// re-including the last overlap characters of each segment at the start
// of the next.
type splitter struct {
	chunkSize int
	overlap   int
}

// split recursively splits text using the separator priority list.
func (s *splitter) split(text string) []string {
	return s.splitWith(text, separators)
}

func (s *splitter) splitWith(text string, seps []string) []string {
	separator := ""
	var remaining []string
	for i, sep := range seps {
		if strings.Contains(text, sep) {
			separator = sep
			remaining = seps[i+1:]
			break
		}
	}

	var parts []string
	if separator == "" {
		parts = []string{text}
	} else {
		parts = strings.Split(text, separator)
	}

	var final []string
	var good []string
	for _, part := range parts {
		if part == "" {
			continue
		}
		if len(part) < s.chunkSize {
			good = append(good, part)
			continue
		}
		// Oversized part: flush accumulated splits, then recurse with the
		// lower-priority separators. With none left, cut at characters.
		if len(good) > 0 {
			final = append(final, s.merge(good, separator)...)
			good = nil
		}
		if len(remaining) == 0 {
			final = append(final, s.splitCharacters(part)...)
		} else {
			final = append(final, s.splitWith(part, remaining)...)
		}
	}
	if len(good) > 0 {
		final = append(final, s.merge(good, separator)...)
	}
	return final
}

// splitCharacters is the last-resort split for a run with no usable
// boundaries: hard cuts at the chunk size, carrying overlap between
// windows.
func (s *splitter) splitCharacters(text string) []string {
	step := s.chunkSize - s.overlap
	if step <= 0 {
		step = s.chunkSize
	}

	var out []string
	for start := 0; start < len(text); start += step {
		end := start + s.chunkSize
		if end > len(text) {
			end = len(text)
		}
		out = append(out, text[start:end])
		if end == len(text) {
			break
		}
	}
	return out
}

// merge greedily joins splits into chunks under chunkSize, carrying the
// trailing splits worth up to overlap characters into the next chunk.
func (s *splitter) merge(splits []string, separator string) []string {
	sepLen := len(separator)

	var docs []string
	var current []string
	total := 0

	for _, split := range splits {
		splitLen := len(split)
		if total+splitLen+sepLenIf(sepLen, len(current) > 0) > s.chunkSize && len(current) > 0 {
			if doc := joinSplits(current, separator); doc != "" {
				docs = append(docs, doc)
			}
			// Drop leading splits until the carried tail fits the overlap
			// budget and leaves room for the incoming split.
			for total > s.overlap ||
				(total+splitLen+sepLenIf(sepLen, len(current) > 0) > s.chunkSize && total > 0) {
				total -= len(current[0]) + sepLenIf(sepLen, len(current) > 1)
				current = current[1:]
			}
		}
		current = append(current, split)
		total += splitLen + sepLenIf(sepLen, len(current) > 1)
	}

	if doc := joinSplits(current, separator); doc != "" {
		docs = append(docs, doc)
	}
	return docs
}

func joinSplits(splits []string, separator string) string {
	return strings.TrimSpace(strings.Join(splits, separator))
}

func sepLenIf(sepLen int, cond bool) int {
	if cond {
		return sepLen
	}
	return 0
}
