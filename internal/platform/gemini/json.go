package gemini

import (
	"errors"
	"strings"
)

// ErrNoJSONObject is returned when no balanced JSON object can be found in
// a verdict response.
var ErrNoJSONObject = errors.New("no JSON object found in response text")

// extractJSONObject finds the first well-formed JSON object embedded in
// model output. The model is asked to return bare JSON but frequently
// wraps it in ```json fences or surrounds it with prose; both are
// tolerated here.
func extractJSONObject(text string) (string, error) {
	text = stripCodeFences(strings.TrimSpace(text))

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", ErrNoJSONObject
	}

	// Scan for the matching close brace, ignoring braces inside strings.
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", ErrNoJSONObject
}

// stripCodeFences removes a surrounding markdown code block, with or
// without a language tag, leaving the fenced content.
func stripCodeFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if strings.HasPrefix(lines[0], "```") {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
