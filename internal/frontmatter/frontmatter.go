// Package frontmatter handles the YAML metadata block that may lead a
// Markdown document, delimited by lines of exactly three dashes.
package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Result holds the outcome of parsing a Markdown document.
type Result struct {
	Meta  map[string]interface{}
	Body  string
	Title string
	Tags  []string
}

// Parse splits a leading front-matter block from the body and decodes it.
// Invalid YAML inside the block is not an error: the whole input is treated
// as body, mirroring Strip's best-effort behaviour.
func Parse(data []byte) *Result {
	src := string(data)
	block, body, ok := split(src)
	res := &Result{Body: src}
	if ok {
		var meta map[string]interface{}
		if err := yaml.Unmarshal([]byte(block), &meta); err == nil && meta != nil {
			res.Meta = meta
			res.Body = body
		}
	}
	res.Title = deriveTitle(res.Meta, res.Body)
	res.Tags = metaTags(res.Meta)
	return res
}

// Strip removes a leading front-matter block, if present. The block is a
// non-greedy match from the first triple-dash line to the next triple-dash
// line, inclusive, removed once and only at the very start of the input.
// Unmatched delimiters leave the input unchanged.
func Strip(data []byte) []byte {
	if _, body, ok := split(string(data)); ok {
		return []byte(body)
	}
	return data
}

// split returns the raw YAML block and the body following it. ok is false
// when no well-formed block starts the input.
func split(src string) (block, body string, ok bool) {
	rest, found := cutDelimiterLine(src)
	if !found {
		return "", "", false
	}
	// Scan line by line for the closing delimiter.
	offset := 0
	for offset <= len(rest) {
		line, next := nextLine(rest, offset)
		if isDelimiter(line) {
			return rest[:offset], rest[next:], true
		}
		if next == offset {
			break
		}
		offset = next
	}
	return "", "", false
}

// cutDelimiterLine consumes the first line when it is exactly "---" and
// returns the remainder.
func cutDelimiterLine(src string) (string, bool) {
	line, next := nextLine(src, 0)
	if !isDelimiter(line) {
		return "", false
	}
	return src[next:], true
}

func isDelimiter(line string) bool {
	return strings.TrimRight(line, "\r") == "---"
}

// nextLine returns the line starting at offset (without the newline) and
// the offset just past it. At end of input next equals offset.
func nextLine(s string, offset int) (line string, next int) {
	if offset >= len(s) {
		return "", offset
	}
	if i := strings.IndexByte(s[offset:], '\n'); i >= 0 {
		return s[offset : offset+i], offset + i + 1
	}
	return s[offset:], len(s)
}

// deriveTitle returns the metadata "title" if present, otherwise the first
// H1 heading, otherwise empty string.
func deriveTitle(meta map[string]interface{}, body string) string {
	if meta != nil {
		if t, ok := meta["title"]; ok {
			if s, ok := t.(string); ok && s != "" {
				return s
			}
		}
	}
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}

// metaTags collects string entries of the metadata "tags" list.
func metaTags(meta map[string]interface{}) []string {
	if meta == nil {
		return nil
	}
	raw, ok := meta["tags"]
	if !ok {
		return nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	seen := make(map[string]struct{}, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
