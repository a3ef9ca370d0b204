// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		OpenAI:   OpenAIConfig{APIKey: "sk-test-0123456789"},
		Langfuse: LangfuseConfig{PublicKey: "pk-lf-1", SecretKey: "sk-lf-1", Host: DefaultLangfuseHost},
		Preview:  PreviewConfig{Chars: DefaultPreviewChars},
		Log:      LogConfig{Level: "info"},
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr []string
	}{
		{
			name:   "complete config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing openai key",
			mutate:  func(c *Config) { c.OpenAI.APIKey = "" },
			wantErr: []string{"OPENAI_API_KEY"},
		},
		{
			name: "lists every missing langfuse key",
			mutate: func(c *Config) {
				c.Langfuse.PublicKey = ""
				c.Langfuse.SecretKey = ""
			},
			wantErr: []string{"LANGFUSE_PUBLIC_KEY", "LANGFUSE_SECRET_KEY"},
		},
		{
			name:    "non-positive preview length",
			mutate:  func(c *Config) { c.Preview.Chars = 0 },
			wantErr: []string{"preview.chars"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestConfigRedacted(t *testing.T) {
	cfg := validConfig()
	got := cfg.Redacted()

	assert.Equal(t, "sk-t****", got.OpenAI.APIKey)
	assert.Equal(t, "****", got.Langfuse.PublicKey)
	assert.Equal(t, "****", got.Langfuse.SecretKey)
	assert.Equal(t, DefaultLangfuseHost, got.Langfuse.Host)
	assert.Equal(t, "sk-test-0123456789", cfg.OpenAI.APIKey, "receiver must be untouched")
}
