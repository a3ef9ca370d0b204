// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config assembles the CLI configuration from the environment, a .env
// file, an optional YAML file and the secrets directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/diet-reader/internal/secrets"
	"github.com/pdiddy/diet-reader/pkg/types"
)

// EnvPrefix prefixes every setting that has no well-known variable name,
// e.g. DIET_READER_PREVIEW_CHARS.
const EnvPrefix = "DIET_READER"

// envNames maps config keys to the conventional variable names used by the
// OpenAI and Langfuse SDKs.
var envNames = map[string]string{
	"openai.api_key":      "OPENAI_API_KEY",
	"openai.base_url":     "OPENAI_BASE_URL",
	"langfuse.public_key": "LANGFUSE_PUBLIC_KEY",
	"langfuse.secret_key": "LANGFUSE_SECRET_KEY",
	"langfuse.host":       "LANGFUSE_HOST",
}

// Options selects the optional sources consulted by Load.
type Options struct {
	// DotEnvPath is loaded into the process environment without overriding
	// variables that are already set. A missing file is ignored.
	DotEnvPath string

	// SecretsDir supplies credentials still empty after the other sources.
	SecretsDir string

	Logger *zap.Logger
}

// bind registers defaults and environment bindings on v.
func bind(v *viper.Viper) error {
	v.SetDefault("langfuse.host", types.DefaultLangfuseHost)
	v.SetDefault("preview.chars", types.DefaultPreviewChars)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, name := range envNames {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, name, prefixed); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}
	return nil
}

// Load resolves the configuration and fails fast when a required credential
// is missing.
func Load(v *viper.Viper, opts Options) (types.Config, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.DotEnvPath != "" {
		if err := godotenv.Load(opts.DotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return types.Config{}, fmt.Errorf("loading %s: %w", opts.DotEnvPath, err)
		}
	}

	if err := bind(v); err != nil {
		return types.Config{}, err
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}

	if opts.SecretsDir != "" {
		found, err := secrets.Load(opts.SecretsDir, logger)
		if err != nil {
			return types.Config{}, err
		}
		fillFromSecrets(&cfg, found)
		if len(found) > 0 {
			logger.Debug("loaded secrets", zap.Int("count", len(found)), zap.String("dir", opts.SecretsDir))
		}
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

func fillFromSecrets(cfg *types.Config, found map[string]string) {
	fill := func(dst *string, key string) {
		if *dst == "" {
			*dst = found[key]
		}
	}
	fill(&cfg.OpenAI.APIKey, secrets.OpenAIAPIKey)
	fill(&cfg.Langfuse.PublicKey, secrets.LangfusePublicKey)
	fill(&cfg.Langfuse.SecretKey, secrets.LangfuseSecretKey)
}
