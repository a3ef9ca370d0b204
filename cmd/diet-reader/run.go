// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	promptMsg     = "Podaj ścieżkę do pliku PDF z dietą: "
	previewHeader = "Zawartość PDF (pierwsze %d znaków):"
	failedMsg     = "Nie udało się wczytać pliku PDF."
	ellipsis      = "..."

	// flushTimeout bounds the final export so a dead backend cannot hang exit.
	flushTimeout = 10 * time.Second
)

// pdfAnalyzer is the part of analyze.Analyzer the prompt needs.
type pdfAnalyzer interface {
	AnalyzePDF(ctx context.Context, path string) (string, bool)
}

// flusher is the part of telemetry.Telemetry called on exit.
type flusher interface {
	Shutdown(ctx context.Context) error
}

// run prompts for one path on in, analyzes it and writes the preview or the
// failure message to out. Telemetry is flushed exactly once on return,
// including when a panic unwinds through run.
func run(ctx context.Context, in io.Reader, out io.Writer, a pdfAnalyzer, tel flusher, previewChars int, logger *zap.Logger) error {
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
		defer cancel()
		if err := tel.Shutdown(flushCtx); err != nil {
			logger.Warn("flushing telemetry failed", zap.Error(err))
		}
	}()

	fmt.Fprint(out, promptMsg)
	path, err := readLine(in)
	if err != nil {
		return err
	}

	text, ok := a.AnalyzePDF(ctx, path)
	if !ok || text == "" {
		fmt.Fprintln(out, failedMsg)
		return nil
	}

	fmt.Fprintf(out, "\n"+previewHeader+"\n", previewChars)
	fmt.Fprintln(out, truncate(text, previewChars)+ellipsis)
	return nil
}

// readLine returns one line from in without its line terminator. A final
// line without a newline is accepted; empty input is an error.
func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("no path given on standard input")
		}
		return "", fmt.Errorf("reading path: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// truncate returns the first n characters of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
