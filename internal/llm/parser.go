package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// maxCategoryLength bounds a plain-text reply accepted as a category.
const maxCategoryLength = 50

// cleanMarkdownWrapper strips a ```json fence around a reply.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	if nl := strings.IndexByte(content, '\n'); nl >= 0 {
		content = content[nl+1:]
	} else {
		content = strings.TrimPrefix(content, "json")
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

// parseCategory extracts the suggested category from a model reply. JSON of
// the form {"category": "..."} is preferred; otherwise the first non-empty
// line is taken, stripped of a "Category:" label and quotes.
func parseCategory(content string) (string, error) {
	content = cleanMarkdownWrapper(content)
	if content == "" {
		return "", fmt.Errorf("empty response")
	}

	if start := strings.IndexByte(content, '{'); start >= 0 {
		if end := strings.LastIndexByte(content, '}'); end > start {
			var reply struct {
				Category string `json:"category"`
			}
			if err := json.Unmarshal([]byte(content[start:end+1]), &reply); err == nil {
				category := strings.TrimSpace(reply.Category)
				if category == "" {
					return "", fmt.Errorf("response has no category")
				}
				return category, nil
			}
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if idx := strings.Index(strings.ToLower(line), "category:"); idx >= 0 {
			line = strings.TrimSpace(line[idx+len("category:"):])
		}
		line = strings.Trim(line, `"'.*`)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) > maxCategoryLength {
			return "", fmt.Errorf("response is not a category: %q", line)
		}
		return line, nil
	}

	return "", fmt.Errorf("response has no category")
}
