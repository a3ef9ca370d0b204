// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze orchestrates loading a diet plan: validate the path, then
// extract its text.
package analyze

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/pdiddy/diet-reader/internal/document"
	"github.com/pdiddy/diet-reader/internal/session"
	"github.com/pdiddy/diet-reader/internal/telemetry"
)

// loadFailedMsg is logged whenever AnalyzePDF collapses an error.
const loadFailedMsg = "Błąd podczas wczytywania PDF"

// Analyzer owns one reader and one session for its whole lifetime.
type Analyzer struct {
	reader  document.Reader
	session *session.Session
	tracer  *telemetry.Tracer
	logger  *zap.Logger
	llm     *openai.Client
}

// Option is a functional option for New.
type Option func(*Analyzer)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithTracer records an analyze_pdf_content span for every analysis.
func WithTracer(tr *telemetry.Tracer) Option {
	return func(a *Analyzer) {
		a.tracer = tr
	}
}

// WithLLM attaches the text-generation client used for downstream analysis.
func WithLLM(client *openai.Client) Option {
	return func(a *Analyzer) {
		a.llm = client
	}
}

// New creates an Analyzer with a fresh session.
func New(reader document.Reader, opts ...Option) *Analyzer {
	a := &Analyzer{
		reader:  reader,
		session: session.New(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SessionID returns the identifier tagged on every span this analyzer emits.
func (a *Analyzer) SessionID() string {
	return a.session.ID()
}

// LLM returns the text-generation client, or nil when none was configured.
func (a *Analyzer) LLM() *openai.Client {
	return a.llm
}

// Analyze validates path and returns its text. Errors match
// document.ErrNotFound, document.ErrInvalidFormat or document.ErrExtraction.
func (a *Analyzer) Analyze(ctx context.Context, path string) (string, error) {
	ctx = session.NewContext(ctx, a.session)
	args := map[string]any{"pdf_path": path}
	return telemetry.Observe(ctx, a.tracer, "analyze_pdf_content", args, func(ctx context.Context) (string, error) {
		if err := document.Validate(path); err != nil {
			return "", err
		}
		return a.reader.Read(ctx, path)
	})
}

// AnalyzePDF is Analyze with every failure, panics included, logged and
// collapsed into ok == false. Callers that need the cause use Analyze.
func (a *Analyzer) AnalyzePDF(ctx context.Context, path string) (text string, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			a.logFailure(path, fmt.Errorf("panic: %v", rec))
			text, ok = "", false
		}
	}()

	text, err := a.Analyze(ctx, path)
	if err != nil {
		a.logFailure(path, err)
		return "", false
	}
	return text, true
}

func (a *Analyzer) logFailure(path string, err error) {
	a.logger.Error(loadFailedMsg,
		zap.String("path", path),
		zap.String("session_id", a.session.ID()),
		zap.Error(err))
}
