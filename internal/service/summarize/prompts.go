package summarize

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var promptsFile []byte

// Prompts holds the fixed summarization instructions. They ship embedded
// so a deployment can only change them by rebuilding.
type Prompts struct {
	TextInstruction  string `yaml:"text_instruction"`
	CustomPreamble   string `yaml:"custom_preamble"`
	AudioInstruction string `yaml:"audio_instruction"`
}

// LoadPrompts parses the embedded prompt file.
func LoadPrompts() (*Prompts, error) {
	var p Prompts
	if err := yaml.Unmarshal(promptsFile, &p); err != nil {
		return nil, fmt.Errorf("parse prompts.yaml: %w", err)
	}
	if p.TextInstruction == "" || p.AudioInstruction == "" {
		return nil, fmt.Errorf("prompts.yaml is missing required instructions")
	}
	return &p, nil
}

// TextPrompt builds the full prompt for document text: the base
// instruction, the optional custom instruction, then the text itself.
func (p *Prompts) TextPrompt(text, custom string) string {
	instruction := p.TextInstruction
	if custom != "" {
		instruction = fmt.Sprintf("%s\n\n%s\n%s", instruction, p.CustomPreamble, custom)
	}
	return fmt.Sprintf("%s\n\n---\n%s", instruction, text)
}
