// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the diet-reader CLI. It asks for the
// path of a PDF diet plan, extracts its text and prints a preview, tracing
// each step to Langfuse.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/diet-reader/internal/analyze"
	"github.com/pdiddy/diet-reader/internal/config"
	"github.com/pdiddy/diet-reader/internal/document"
	"github.com/pdiddy/diet-reader/internal/llm"
	"github.com/pdiddy/diet-reader/internal/secrets"
	"github.com/pdiddy/diet-reader/internal/telemetry"
	"github.com/pdiddy/diet-reader/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// dotEnvFile is loaded from the working directory before configuration is resolved.
const dotEnvFile = ".env"

// rootCmd prompts for a PDF and prints the start of its text.
var rootCmd = &cobra.Command{
	Use:   "diet-reader",
	Short: "Print the text of a PDF diet plan",
	Long: `diet-reader asks for the path of a PDF diet plan, extracts the text of
every page and prints the first characters of it. Each step is traced to
Langfuse; OPENAI_API_KEY, LANGFUSE_PUBLIC_KEY and LANGFUSE_SECRET_KEY must be
set in the environment, a .env file, the config file or .secrets/.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := newLogger(cfg.Log.Level)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		client, err := llm.New(cfg.OpenAI)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		tel, err := telemetry.New(ctx, cfg.Langfuse, telemetry.WithLogger(logger))
		if err != nil {
			return err
		}

		tr := tel.Tracer()
		reader := document.NewPDFReader(document.WithTracer(tr), document.WithLogger(logger))
		analyzer := analyze.New(reader,
			analyze.WithTracer(tr),
			analyze.WithLogger(logger),
			analyze.WithLLM(client),
		)
		logger.Debug("session started", zap.String("session_id", analyzer.SessionID()))

		return run(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), analyzer, tel, cfg.Preview.Chars, logger)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./diet-reader.yaml or ~/.config/diet-reader/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("diet-reader")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "diet-reader"))
		}
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the configuration from every source and fails fast on
// missing credentials.
func loadConfig() (types.Config, error) {
	return config.Load(viper.GetViper(), config.Options{
		DotEnvPath: dotEnvFile,
		SecretsDir: secrets.DefaultDir,
	})
}

// newLogger builds a console logger on stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
