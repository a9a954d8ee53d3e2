package frontmatter

import (
	"strings"
	"testing"
)

func TestStrip_WellFormedBlock(t *testing.T) {
	input := "---\ntitle: Hello\ntags:\n  - go\n---\n# Hello\nBody text.\n"
	got := string(Strip([]byte(input)))
	if got != "# Hello\nBody text.\n" {
		t.Errorf("stripped = %q", got)
	}
}

func TestStrip_NoFrontMatter(t *testing.T) {
	input := "# Just a heading\nSome --- dashes inline.\n"
	if got := string(Strip([]byte(input))); got != input {
		t.Errorf("content changed: %q", got)
	}
}

func TestStrip_UnclosedBlockUnchanged(t *testing.T) {
	input := "---\ntitle: Hello\nno closing delimiter\n"
	if got := string(Strip([]byte(input))); got != input {
		t.Errorf("malformed block should be left unchanged, got %q", got)
	}
}

func TestStrip_OnlyAtStart(t *testing.T) {
	input := "intro\n---\nkey: value\n---\nrest\n"
	if got := string(Strip([]byte(input))); got != input {
		t.Errorf("mid-document block must not be removed, got %q", got)
	}
}

func TestStrip_LeadingBlankLineNotFrontMatter(t *testing.T) {
	input := "\n---\nkey: value\n---\nrest\n"
	if got := string(Strip([]byte(input))); got != input {
		t.Errorf("block after blank line must not be removed, got %q", got)
	}
}

func TestStrip_NonGreedy(t *testing.T) {
	input := "---\na: 1\n---\nbody\n---\nmore\n"
	got := string(Strip([]byte(input)))
	if got != "body\n---\nmore\n" {
		t.Errorf("stripped = %q, want first block only", got)
	}
}

func TestStrip_ExactlyThreeDashes(t *testing.T) {
	input := "----\nkey: value\n----\nrest\n"
	if got := string(Strip([]byte(input))); got != input {
		t.Errorf("four-dash lines are not delimiters, got %q", got)
	}
}

func TestStrip_CRLF(t *testing.T) {
	input := "---\r\ntitle: x\r\n---\r\nbody\r\n"
	got := string(Strip([]byte(input)))
	if got != "body\r\n" {
		t.Errorf("stripped = %q", got)
	}
}

func TestStrip_DelimiterAtEOF(t *testing.T) {
	input := "---\ntitle: x\n---"
	if got := string(Strip([]byte(input))); got != "" {
		t.Errorf("stripped = %q, want empty body", got)
	}
}

func TestParse_MetaAndBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\ntags:\n  - go\n  - preview\n---\n# Hello\nBody text.\n")
	r := Parse(input)
	if r.Title != "Hello" {
		t.Errorf("title = %q, want %q", r.Title, "Hello")
	}
	if len(r.Tags) != 2 || r.Tags[0] != "go" || r.Tags[1] != "preview" {
		t.Errorf("tags = %v, want [go preview]", r.Tags)
	}
	if r.Body != "# Hello\nBody text.\n" {
		t.Errorf("body = %q", r.Body)
	}
}

func TestParse_InvalidYAMLFallback(t *testing.T) {
	input := []byte("---\n: invalid: yaml: {{{\n---\nBody\n")
	r := Parse(input)
	if r.Meta != nil {
		t.Errorf("expected nil meta on invalid YAML, got %v", r.Meta)
	}
	if !strings.HasPrefix(r.Body, "---") {
		t.Errorf("body should be the whole input on invalid YAML, got %q", r.Body)
	}
}

func TestParse_TitleFromH1(t *testing.T) {
	r := Parse([]byte("some text\n# My Heading\nmore"))
	if r.Title != "My Heading" {
		t.Errorf("title = %q, want %q", r.Title, "My Heading")
	}
}
