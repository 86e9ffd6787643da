package enhance

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"canvas-assistant-backend/internal/assistant"
)

//go:embed prompts/enhance.yaml
var defaultPrompt []byte

// PromptSpec is the system prompt and sampling style for the model. The
// system text may reference {intent} and {base_response}.
type PromptSpec struct {
	System string `yaml:"system"`
	Style  struct {
		Temperature float32 `yaml:"temperature"`
		MaxTokens   int     `yaml:"max_tokens"`
	} `yaml:"style"`
}

// LoadPromptSpec reads a prompt file, or the built-in prompt when path is empty.
func LoadPromptSpec(path string) (*PromptSpec, error) {
	b := defaultPrompt
	if strings.TrimSpace(path) != "" {
		var err error
		b, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read prompt file: %w", err)
		}
	}
	var spec PromptSpec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return nil, fmt.Errorf("parse prompt file: %w", err)
	}
	if strings.TrimSpace(spec.System) == "" {
		return nil, fmt.Errorf("prompt file %q has no system prompt", path)
	}
	if spec.Style.Temperature <= 0 {
		spec.Style.Temperature = 0.5
	}
	if spec.Style.MaxTokens <= 0 {
		spec.Style.MaxTokens = 120
	}
	return &spec, nil
}

func (p *PromptSpec) Render(intent assistant.Intent, baseResponse string) string {
	return strings.NewReplacer(
		"{intent}", intent.String(),
		"{base_response}", baseResponse,
	).Replace(p.System)
}
