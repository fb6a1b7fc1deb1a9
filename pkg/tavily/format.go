package tavily

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const snippetLength = 200

// FormatResults renders a response as plain text bounded by maxLength,
// suitable for display or for feeding back to the model.
func FormatResults(resp Response, maxLength int) string {
	if !resp.Success {
		return fmt.Sprintf("Search failed: %s", resp.Error)
	}

	var out []string
	out = append(out, fmt.Sprintf("Search Results for: %s\n", resp.Query))

	if resp.Answer != "" {
		out = append(out, fmt.Sprintf("Summary: %s\n", resp.Answer))
	}

	for i, r := range resp.Results {
		if i >= 5 {
			break
		}
		out = append(out, fmt.Sprintf("%d. %s", i+1, r.Title))
		out = append(out, fmt.Sprintf("   %s", r.URL))
		out = append(out, fmt.Sprintf("   %s", truncate(r.Content, snippetLength)))
		out = append(out, "")
	}

	if len(resp.FollowUpQuestions) > 0 {
		out = append(out, "Related Questions:")
		for i, q := range resp.FollowUpQuestions {
			if i >= 3 {
				break
			}
			out = append(out, fmt.Sprintf("  - %s", q))
		}
	}

	formatted := strings.Join(out, "\n")
	if maxLength > 3 && len(formatted) > maxLength {
		formatted = clip(formatted, maxLength-3) + "..."
	}
	return formatted
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return clip(s, n) + "..."
}

// clip cuts s to at most n bytes, backing up so a multi-byte rune is
// never split.
func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
