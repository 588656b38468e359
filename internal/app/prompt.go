package service

import (
	_ "embed"
	"fmt"
	"os"
)

// DefaultPrompt is the classification template used when no file is configured.
//
//go:embed default_prompt.txt
var DefaultPrompt string

// LoadPrompt reads the template at path, or returns DefaultPrompt when path is empty.
func LoadPrompt(path string) (string, error) {
	if path == "" {
		return DefaultPrompt, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPromptTemplate, err)
	}
	return string(b), nil
}
