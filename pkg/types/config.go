// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// DefaultLangfuseHost is the Langfuse cloud endpoint used when no host is configured.
const DefaultLangfuseHost = "https://cloud.langfuse.com"

// DefaultPreviewChars is the number of characters of extracted text printed by the CLI.
const DefaultPreviewChars = 500

// OpenAIConfig holds settings for the text-generation API client.
type OpenAIConfig struct {
	// APIKey is the authentication key for the OpenAI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL overrides the API endpoint (proxies, compatible servers).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`
}

// LangfuseConfig holds the credentials and endpoint of the tracing backend.
type LangfuseConfig struct {
	PublicKey string `json:"public_key,omitempty" yaml:"public_key,omitempty" mapstructure:"public_key"`
	SecretKey string `json:"secret_key,omitempty" yaml:"secret_key,omitempty" mapstructure:"secret_key"`

	// Host is the base URL of the Langfuse instance (default https://cloud.langfuse.com).
	Host string `json:"host" yaml:"host" mapstructure:"host"`
}

// PreviewConfig controls how much extracted text the CLI prints.
type PreviewConfig struct {
	// Chars is the number of characters printed before the ellipsis (default 500).
	Chars int `json:"chars" yaml:"chars" mapstructure:"chars"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups every setting the CLI needs at startup.
type Config struct {
	OpenAI   OpenAIConfig   `json:"openai" yaml:"openai" mapstructure:"openai"`
	Langfuse LangfuseConfig `json:"langfuse" yaml:"langfuse" mapstructure:"langfuse"`
	Preview  PreviewConfig  `json:"preview" yaml:"preview" mapstructure:"preview"`
	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
}

// Validate reports every missing required credential in one error.
func (c Config) Validate() error {
	var missing []string
	if c.OpenAI.APIKey == "" {
		missing = append(missing, "openai.api_key (OPENAI_API_KEY)")
	}
	if c.Langfuse.PublicKey == "" {
		missing = append(missing, "langfuse.public_key (LANGFUSE_PUBLIC_KEY)")
	}
	if c.Langfuse.SecretKey == "" {
		missing = append(missing, "langfuse.secret_key (LANGFUSE_SECRET_KEY)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.Preview.Chars <= 0 {
		return fmt.Errorf("preview.chars must be positive, got %d", c.Preview.Chars)
	}
	return nil
}

// Redacted returns a copy of c with credentials masked, safe to print.
func (c Config) Redacted() Config {
	c.OpenAI.APIKey = redact(c.OpenAI.APIKey)
	c.Langfuse.PublicKey = redact(c.Langfuse.PublicKey)
	c.Langfuse.SecretKey = redact(c.Langfuse.SecretKey)
	return c
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "****"
}
