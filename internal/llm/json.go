package llm

import "strings"

// extractJSON pulls a JSON document out of an LLM answer that may wrap it in
// a markdown code fence or surrounding prose. The input is returned unchanged
// when nothing JSON-shaped is found.
func extractJSON(s string) string {
	if block, ok := fencedBlock(s, "```json"); ok {
		return block
	}
	if block, ok := fencedBlock(s, "```"); ok {
		return block
	}

	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return s
	}
	depth := 0
	for j := start; j < len(s); j++ {
		switch s[j] {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[start : j+1]
			}
		}
	}
	return s
}

// fencedBlock returns the body of the first code fence opened by marker.
func fencedBlock(s, marker string) (string, bool) {
	idx := strings.Index(s, marker)
	if idx == -1 {
		return "", false
	}
	body := strings.TrimLeft(s[idx+len(marker):], "\r\n")
	end := strings.Index(body, "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimRight(body[:end], "\r\n"), true
}
