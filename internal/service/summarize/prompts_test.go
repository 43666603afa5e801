package summarize

import (
	"strings"
	"testing"
)

func TestLoadPrompts(t *testing.T) {
	p, err := LoadPrompts()
	if err != nil {
		t.Fatalf("LoadPrompts failed: %v", err)
	}
	if p.TextInstruction == "" || p.AudioInstruction == "" || p.CustomPreamble == "" {
		t.Error("embedded prompts are incomplete")
	}
}

func TestTextPromptWithoutCustomInstruction(t *testing.T) {
	p, err := LoadPrompts()
	if err != nil {
		t.Fatalf("LoadPrompts failed: %v", err)
	}

	prompt := p.TextPrompt("document body", "")
	if !strings.HasPrefix(prompt, p.TextInstruction) {
		t.Error("prompt does not start with the base instruction")
	}
	if !strings.HasSuffix(prompt, "---\ndocument body") {
		t.Errorf("document text not appended after separator: %q", prompt)
	}
	if strings.Contains(prompt, p.CustomPreamble) {
		t.Error("custom preamble present without a custom instruction")
	}
}

func TestTextPromptWithCustomInstruction(t *testing.T) {
	p, err := LoadPrompts()
	if err != nil {
		t.Fatalf("LoadPrompts failed: %v", err)
	}

	prompt := p.TextPrompt("doc", "focus on dates")
	if !strings.Contains(prompt, p.CustomPreamble) {
		t.Error("custom preamble missing")
	}
	if !strings.Contains(prompt, "focus on dates") {
		t.Error("custom instruction missing")
	}
}
