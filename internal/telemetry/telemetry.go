// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package telemetry records spans around traced operations and exports them to
// a Langfuse instance over OTLP/HTTP.
//
// The provider is process-wide: build it once at startup with New and call
// Shutdown exactly once on exit, typically in a defer, so buffered spans are
// flushed on every path.
package telemetry

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"sync"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/pdiddy/diet-reader/pkg/types"
)

const (
	tracerName  = "github.com/pdiddy/diet-reader"
	serviceName = "diet-reader"

	// maxAttributeLength caps string attributes such as the extracted text
	// attached as observation output.
	maxAttributeLength = 4096

	// otlpPath is the Langfuse OTLP/HTTP traces endpoint, relative to the host.
	otlpPath = "/api/public/otel/v1/traces"
)

// Option is a functional option for New.
type Option func(*options)

type options struct {
	exporter sdktrace.SpanExporter
	logger   *zap.Logger
}

// WithSpanExporter replaces the OTLP exporter. Spans are handed to exp
// synchronously as they end.
func WithSpanExporter(exp sdktrace.SpanExporter) Option {
	return func(o *options) {
		o.exporter = exp
	}
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Telemetry owns the tracer provider.
type Telemetry struct {
	tp     *sdktrace.TracerProvider
	logger *zap.Logger

	shutdownOnce sync.Once
	shutdownErr  error
}

// New builds the tracer provider. Unless WithSpanExporter is given, spans are
// batched and sent to cfg.Host authenticated with the Langfuse key pair.
func New(ctx context.Context, cfg types.LangfuseConfig, opts ...Option) (*Telemetry, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	var processor sdktrace.TracerProviderOption
	if o.exporter != nil {
		processor = sdktrace.WithSyncer(o.exporter)
	} else {
		exp, err := newExporter(ctx, cfg)
		if err != nil {
			return nil, err
		}
		processor = sdktrace.WithBatcher(exp)
	}

	limits := sdktrace.NewSpanLimits()
	limits.AttributeValueLengthLimit = maxAttributeLength

	tp := sdktrace.NewTracerProvider(
		processor,
		sdktrace.WithRawSpanLimits(limits),
		sdktrace.WithResource(resource.NewSchemaless(serviceNameAttr(serviceName))),
	)
	o.logger.Debug("telemetry initialized", zap.String("host", cfg.Host))

	return &Telemetry{tp: tp, logger: o.logger}, nil
}

func newExporter(ctx context.Context, cfg types.LangfuseConfig) (sdktrace.SpanExporter, error) {
	if cfg.PublicKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("langfuse public and secret keys are required")
	}
	host := cfg.Host
	if host == "" {
		host = types.DefaultLangfuseHost
	}
	u, err := url.Parse(host)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid langfuse host %q", host)
	}

	auth := base64.StdEncoding.EncodeToString([]byte(cfg.PublicKey + ":" + cfg.SecretKey))
	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(u.JoinPath(otlpPath).String()),
		otlptracehttp.WithHeaders(map[string]string{"Authorization": "Basic " + auth}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}
	return exp, nil
}

// Tracer returns a tracer bound to this provider.
func (t *Telemetry) Tracer() *Tracer {
	return &Tracer{tracer: t.tp.Tracer(tracerName)}
}

// Flush exports every span that has ended so far.
func (t *Telemetry) Flush(ctx context.Context) error {
	if err := t.tp.ForceFlush(ctx); err != nil {
		return fmt.Errorf("flushing spans: %w", err)
	}
	return nil
}

// Shutdown flushes remaining spans and stops the provider. Calls after the
// first return the first result.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	t.shutdownOnce.Do(func() {
		if err := t.tp.Shutdown(ctx); err != nil {
			t.shutdownErr = fmt.Errorf("shutting down tracer provider: %w", err)
			return
		}
		t.logger.Debug("telemetry flushed")
	})
	return t.shutdownErr
}
