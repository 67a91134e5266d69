package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	fence        = "---\n"
	closingFence = "\n---\n"
)

// Render writes meta as a YAML frontmatter block followed by body.
func Render(meta any, body string) (string, error) {
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	buf := bytes.Buffer{}
	buf.WriteString(fence)
	buf.Write(raw)
	buf.WriteString(fence)
	if !strings.HasPrefix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString(body)
	return buf.String(), nil
}

// Parse decodes the frontmatter block of content into meta and returns the
// remaining body. Content without frontmatter leaves meta untouched.
func Parse(content string, meta any) (string, error) {
	if !strings.HasPrefix(content, fence) {
		return content, nil
	}
	rest := strings.TrimPrefix(content, fence)
	idx := strings.Index(rest, closingFence)
	if idx < 0 {
		return "", fmt.Errorf("invalid frontmatter: missing closing fence")
	}
	if err := yaml.Unmarshal([]byte(rest[:idx]), meta); err != nil {
		return "", fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return rest[idx+len(closingFence):], nil
}
