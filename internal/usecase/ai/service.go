package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// SystemInstruction is sent as the system message to the model
const SystemInstruction = "You are an expert assistant that creates clear, concise and structured summaries of meeting notes and transcripts."

// Completer is a remote language model that completes a prompt
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}

// Source tells where a summary came from
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Result is a generated summary and its origin
type Result struct {
	Summary string
	Source  Source
}

// Summarizer generates summaries, preferring the remote model when one is configured
type Summarizer interface {
	// Summarize never fails: model errors fall back to the heuristic generator
	Summarize(ctx context.Context, text, prompt string) Result

	// RemoteEnabled reports whether a remote model is wired in
	RemoteEnabled() bool
}

type summarizer struct {
	remote Completer
	logger *zap.Logger
}

// NewSummarizer creates a summarizer. A nil remote selects the heuristic
// generator for every request.
func NewSummarizer(remote Completer, logger *zap.Logger) Summarizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &summarizer{remote: remote, logger: logger}
}

func (s *summarizer) RemoteEnabled() bool {
	return s.remote != nil
}

func (s *summarizer) Summarize(ctx context.Context, text, prompt string) Result {
	style := SelectStyle(prompt)

	if s.remote == nil {
		s.logger.Info("using fallback heuristic summary generation",
			zap.String("style", style.String()),
		)
		return s.fallback(text, prompt)
	}

	out, err := s.remote.Complete(ctx, SystemInstruction, buildPrompt(text, prompt))
	if err != nil {
		s.logger.Warn("⚠️ model completion failed, falling back to heuristic summary",
			zap.String("style", style.String()),
			zap.Error(err),
		)
		return s.fallback(text, prompt)
	}

	out = stripCodeFence(out)
	if out == "" {
		s.logger.Warn("⚠️ model returned an empty summary, falling back to heuristic summary",
			zap.String("style", style.String()),
		)
		return s.fallback(text, prompt)
	}

	return Result{Summary: out, Source: SourceModel}
}

func (s *summarizer) fallback(text, prompt string) Result {
	return Result{Summary: GenerateHeuristicSummary(text, prompt), Source: SourceFallback}
}

func buildPrompt(text, prompt string) string {
	return fmt.Sprintf("%s\n\nText to summarize:\n%s", prompt, text)
}

// stripCodeFence removes a markdown code fence some models wrap their answer in
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	// Drop the info string (```markdown, ```md).
	if idx := strings.IndexByte(content, '\n'); idx != -1 {
		if !strings.ContainsAny(content[:idx], " \t") {
			content = content[idx+1:]
		}
	}
	if idx := strings.LastIndex(content, "```"); idx != -1 {
		content = content[:idx]
	}
	return strings.TrimSpace(content)
}
