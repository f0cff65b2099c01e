package summarize

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/compentube/compentube-server/internal/adapters/llm"
	"github.com/compentube/compentube-server/internal/domain"
	"github.com/compentube/compentube-server/internal/observability"
)

// Service is the summarization orchestrator: it validates the request,
// resolves the video id, runs transcript extraction and metadata fetch
// concurrently, and on joint success issues a single generation call.
type Service struct {
	extractor domain.TranscriptExtractor
	metadata  domain.MetadataFetcher
	generator domain.TextGenerator
}

func NewService(
	extractor domain.TranscriptExtractor,
	metadata domain.MetadataFetcher,
	generator domain.TextGenerator,
) *Service {
	return &Service{
		extractor: extractor,
		metadata:  metadata,
		generator: generator,
	}
}

func (s *Service) Summarize(ctx context.Context, session *domain.Session, req domain.SummarizationRequest) (*domain.SummarizationResult, error) {
	if !session.IsAuthenticated() {
		return nil, domain.ErrUnauthenticated
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	videoID, err := ResolveVideoID(req.ItemReference)
	if err != nil {
		return nil, err
	}

	log := observability.LoggerFromContext(ctx).With(
		"video_id", videoID,
		"user", session.Profile.Email,
	)
	log.Info("starting summarization", "length_mode", req.LengthMode, "language", req.OutputLanguage)

	// Extraction and metadata fetch run concurrently and are each attempted
	// exactly once. A plain group (no WithContext): neither branch is
	// cancelled by the other's failure, both settle before the join returns.
	var (
		g          errgroup.Group
		transcript string
		metadata   *domain.VideoMetadata
	)

	g.Go(func() error {
		t, err := s.extractor.Extract(ctx, videoID)
		if err != nil {
			return err
		}
		transcript = t
		return nil
	})

	g.Go(func() error {
		m, err := s.metadata.Fetch(ctx, session.Credentials, videoID)
		if err != nil {
			return err
		}
		metadata = m
		return nil
	})

	if err := g.Wait(); err != nil {
		// Either branch failing discards the other's result entirely.
		log.Error("summarization pipeline failed before generation", "error", err)
		return nil, err
	}

	prompt := llm.BuildPrompt(transcript, req.OutputLanguage, req.LengthMode)

	start := time.Now()
	summary, err := s.generator.Generate(ctx, session.Credentials, prompt)
	if err != nil {
		log.Error("generation failed", "error", err)
		return nil, err
	}
	log.Info("summary generated", "elapsed_ms", time.Since(start).Milliseconds())

	return &domain.SummarizationResult{
		SummaryText: summary,
		Metadata:    *metadata,
	}, nil
}
