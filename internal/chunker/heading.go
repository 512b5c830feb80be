package chunker

import "strings"

// HeadingLineMaxLen is the maximum length for a line to be treated as a
// section heading.
const HeadingLineMaxLen = 60

// codeChars are characters typical of code or register-notation lines
// (e.g. "MOVE.W #$00F0" or "reg = 1;"). A line containing any of them is
// never treated as a heading.
const codeChars = "#/=;"

// IsHeadingLine reports whether a line looks like a section heading.
//
// Heuristic: after trimming, the line is non-empty, at most
// HeadingLineMaxLen characters, has no trailing sentence punctuation
// (. ! ?), and contains none of # / = ;.
func IsHeadingLine(line string) bool {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return false
	}
	if strings.ContainsAny(stripped, codeChars) {
		return false
	}
	if len([]rune(stripped)) > HeadingLineMaxLen {
		return false
	}
	last := stripped[len(stripped)-1]
	return last != '.' && last != '!' && last != '?'
}

// headingOf returns the first line of a chunk if it independently looks
// like a heading.
func headingOf(content string) (string, bool) {
	first, _, _ := strings.Cut(content, "\n")
	first = strings.TrimSpace(first)
	if first == "" || !IsHeadingLine(first) {
		return "", false
	}
	return first, true
}

// ensureHeadingBreaks inserts an explicit paragraph break before every
// heading-looking line. The splitter prefers to break on paragraph
// boundaries, so without this pre-pass a short title line that follows a
// paragraph would be fused into that paragraph instead of starting a new
// segment with the text it introduces.
func ensureHeadingBreaks(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			out = append(out, line)
			continue
		}
		if IsHeadingLine(line) && len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
