package followup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"meeting-followup/internal/app/api"
	"meeting-followup/internal/app/cache"
	"meeting-followup/internal/app/email"
	"meeting-followup/internal/app/generator"
	"meeting-followup/internal/app/metrics"
	"meeting-followup/internal/app/model"
	"meeting-followup/internal/app/utils"
)

// Pipeline runs the transcribe → compose → generate sequence for one
// recording. It holds no per-run state and is safe for concurrent use.
type Pipeline struct {
	transcriber api.Transcriber
	gen         generator.EmailGenerator
	composer    *email.Composer
	transcripts cache.TranscriptCache
	logger      *slog.Logger
}

// Options adjust a single run.
type Options struct {
	RecipientName string
}

// NewPipeline wires the pipeline from its stages.
func NewPipeline(
	transcriber api.Transcriber,
	gen generator.EmailGenerator,
	composer *email.Composer,
	transcripts cache.TranscriptCache,
	logger *slog.Logger,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		transcriber: transcriber,
		gen:         gen,
		composer:    composer,
		transcripts: transcripts,
		logger:      logger,
	}
}

// Run produces a draft follow-up email for the recording at audioPath.
func (p *Pipeline) Run(ctx context.Context, audioPath string, opts Options) (*model.Draft, error) {
	transcript, fromCache, err := p.transcribe(ctx, audioPath)
	if err != nil {
		metrics.TranscriptionsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("transcription failed: %w", err)
	}
	metrics.TranscriptionsTotal.WithLabelValues(metrics.OutcomeOK).Inc()

	providerInfo := p.gen.GetProviderInfo()

	start := time.Now()
	prompt := p.composer.Compose(transcript, opts.RecipientName)
	body, err := p.gen.GenerateEmail(ctx, prompt)
	metrics.PipelineDuration.WithLabelValues("generate").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.EmailsGeneratedTotal.WithLabelValues(providerInfo.Name, metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("email generation failed: %w", err)
	}
	metrics.EmailsGeneratedTotal.WithLabelValues(providerInfo.Name, metrics.OutcomeOK).Inc()

	p.logger.Info("draft generated",
		"audio", audioPath,
		"provider", providerInfo.Name,
		"transcript_cached", fromCache,
	)

	return &model.Draft{
		Transcript: transcript,
		EmailBody:  body,
		Provider:   providerInfo.Name,
		FromCache:  fromCache,
	}, nil
}

// transcribe returns the transcript for the file, consulting the cache
// first. The cache key is the file content hash, not the name, so
// renamed re-uploads still hit.
func (p *Pipeline) transcribe(ctx context.Context, audioPath string) (string, bool, error) {
	fileHash, err := utils.CalculateFileHash(audioPath)
	if err != nil {
		return "", false, err
	}

	if transcript, ok := p.transcripts.Get(ctx, fileHash); ok {
		metrics.TranscriptCacheHits.Inc()
		return transcript, true, nil
	}

	start := time.Now()
	transcript, err := p.transcriber.Transcript(ctx, audioPath)
	metrics.PipelineDuration.WithLabelValues("transcribe").Observe(time.Since(start).Seconds())
	if err != nil {
		return "", false, err
	}

	p.transcripts.Set(ctx, fileHash, transcript)
	return transcript, false, nil
}
