// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm builds the text-generation API client used for diet analysis.
package llm

import (
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/pdiddy/diet-reader/pkg/types"
)

// New returns an OpenAI client authenticated with cfg.APIKey. BaseURL, when
// set, points the client at a proxy or a compatible server.
func New(cfg types.OpenAIConfig) (*openai.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	return openai.NewClientWithConfig(config), nil
}
