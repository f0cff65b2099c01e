package transcript

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/compentube/compentube-server/internal/domain"
	"github.com/compentube/compentube-server/internal/observability"
)

// CommandRunner abstracts process execution so tests can substitute the
// extraction script.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var out, errBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return out.Bytes(), errBuf.Bytes(), err
}

// Extractor spawns the transcript-extraction executable once per request,
// passing the video id as its sole argument. Success is a zero exit status
// and non-empty trimmed stdout; everything else is TranscriptUnavailable.
type Extractor struct {
	runner CommandRunner
	python string
	script string
}

func NewExtractor(python, script string) *Extractor {
	return NewExtractorWithRunner(execRunner{}, python, script)
}

func NewExtractorWithRunner(runner CommandRunner, python, script string) *Extractor {
	return &Extractor{
		runner: runner,
		python: python,
		script: script,
	}
}

func (e *Extractor) Extract(ctx context.Context, videoID domain.VideoID) (string, error) {
	log := observability.LoggerFromContext(ctx).With("video_id", videoID)

	stdout, stderr, err := e.runner.Run(ctx, e.python, e.script, string(videoID))
	if err != nil {
		log.Error("transcript process failed", "error", err, "stderr", string(stderr))
		return "", fmt.Errorf("%w: %w", domain.ErrTranscriptUnavailable, err)
	}

	text := strings.TrimSpace(string(stdout))
	if text == "" {
		log.Error("transcript process produced no output", "stderr", string(stderr))
		return "", fmt.Errorf("%w: empty transcript output", domain.ErrTranscriptUnavailable)
	}

	log.Debug("transcript fetched", "chars", len(text), "stderr", string(stderr))
	return text, nil
}
