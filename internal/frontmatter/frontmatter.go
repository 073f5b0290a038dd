// Package frontmatter splits Markdown content into its YAML front matter and body.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thinktandem/seocheck/pkg/seocheck"
)

const delimiter = "---"

// ErrUnterminated is returned when the opening delimiter has no closing line.
var ErrUnterminated = errors.New("unterminated front matter: missing closing ---")

// Parse extracts the YAML front matter of content into a Record and returns
// it with the remaining body. Content without front matter yields an empty
// Record and the whole content as body. Front matter must be a mapping.
func Parse(content []byte) (seocheck.Record, string, error) {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	text = strings.TrimPrefix(text, "\ufeff")

	if !strings.HasPrefix(text, delimiter+"\n") {
		return seocheck.Record{}, text, nil
	}

	rest := text[len(delimiter)+1:]
	var head, body string
	found := false
	for offset := 0; offset <= len(rest); {
		end := strings.IndexByte(rest[offset:], '\n')
		line := rest[offset:]
		if end >= 0 {
			line = rest[offset : offset+end]
		}
		if strings.TrimRight(line, " \t") == delimiter {
			head = rest[:offset]
			if end >= 0 {
				body = rest[offset+end+1:]
			}
			found = true
			break
		}
		if end < 0 {
			break
		}
		offset += end + 1
	}
	if !found {
		return nil, "", ErrUnterminated
	}

	rec := seocheck.Record{}
	if strings.TrimSpace(head) == "" {
		return rec, body, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(head), &raw); err != nil {
		return nil, "", fmt.Errorf("parse front matter YAML: %w", err)
	}
	for k, v := range raw {
		rec[k] = v
	}
	return rec, body, nil
}
