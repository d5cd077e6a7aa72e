package followup

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"meeting-followup/internal/app/model"
	"meeting-followup/internal/app/repository"
	"meeting-followup/internal/app/util/files"
)

// BatchResult summarizes one batch run.
type BatchResult struct {
	Processed int
	Failed    int
}

// BatchRunner runs the pipeline over every recording in a directory and
// writes the draft email and transcript next to an output directory.
// Drafts are recorded in the history with no sent time; the operator
// reviews and sends them later.
type BatchRunner struct {
	pipeline *Pipeline
	dao      repository.EmailRecordDAO
	progress *ProgressManager
	logger   *slog.Logger
}

// NewBatchRunner assembles a batch runner.
func NewBatchRunner(pipeline *Pipeline, dao repository.EmailRecordDAO, progress *ProgressManager, logger *slog.Logger) *BatchRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchRunner{
		pipeline: pipeline,
		dao:      dao,
		progress: progress,
		logger:   logger,
	}
}

// Run processes inputDir and writes results into outputDir. One failing
// file does not stop the batch.
func (br *BatchRunner) Run(ctx context.Context, inputDir, outputDir string, opts Options) (*BatchResult, error) {
	audioFiles, err := files.GetAllAudioFiles(inputDir)
	if err != nil {
		return nil, err
	}
	if len(audioFiles) == 0 {
		return nil, fmt.Errorf("no supported audio files in %s", inputDir)
	}

	if err := files.CheckAndCreateDirectory(outputDir); err != nil {
		return nil, err
	}

	bar := br.progress.CreateBar(len(audioFiles), "Generating")
	result := &BatchResult{}

	for _, audio := range audioFiles {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		draft, err := br.pipeline.Run(ctx, audio.FullPath, opts)
		if err != nil {
			br.logger.Error("batch item failed", "file", audio.Name, "error", err)
			result.Failed++
			bar.Increment()
			continue
		}

		if err := br.writeOutputs(outputDir, audio.Name, draft); err != nil {
			br.logger.Error("failed to write outputs", "file", audio.Name, "error", err)
			result.Failed++
			bar.Increment()
			continue
		}

		record := &model.EmailRecord{
			UUID:          uuid.New().String(),
			Subject:       "Follow-Up from Our Recent Meeting",
			Body:          draft.EmailBody,
			Transcript:    draft.Transcript,
			AudioFilename: audio.Name,
			Provider:      draft.Provider,
			CreatedAt:     time.Now(),
		}
		if err := br.dao.Save(record); err != nil {
			br.logger.Error("failed to record draft", "file", audio.Name, "error", err)
		}

		result.Processed++
		bar.Increment()
	}

	br.progress.Wait()
	return result, nil
}

// RunFile processes a single recording and writes results into outputDir.
func (br *BatchRunner) RunFile(ctx context.Context, audioPath, outputDir string, opts Options) error {
	if !files.IsSupportedAudio(audioPath) {
		return fmt.Errorf("unsupported audio format %q, supported: %s", filepath.Ext(audioPath), files.SupportedExtensions())
	}

	if err := files.CheckAndCreateDirectory(outputDir); err != nil {
		return err
	}

	draft, err := br.pipeline.Run(ctx, audioPath, opts)
	if err != nil {
		return err
	}

	name := filepath.Base(audioPath)
	if err := br.writeOutputs(outputDir, name, draft); err != nil {
		return err
	}

	record := &model.EmailRecord{
		UUID:          uuid.New().String(),
		Subject:       "Follow-Up from Our Recent Meeting",
		Body:          draft.EmailBody,
		Transcript:    draft.Transcript,
		AudioFilename: name,
		Provider:      draft.Provider,
		CreatedAt:     time.Now(),
	}
	if err := br.dao.Save(record); err != nil {
		br.logger.Error("failed to record draft", "file", name, "error", err)
	}

	return nil
}

func (br *BatchRunner) writeOutputs(outputDir, audioName string, draft *model.Draft) error {
	base := strings.TrimSuffix(audioName, filepath.Ext(audioName))

	emailPath := filepath.Join(outputDir, base+"_email.txt")
	if err := os.WriteFile(emailPath, []byte(draft.EmailBody), 0o644); err != nil {
		return fmt.Errorf("failed to write email: %w", err)
	}

	transcriptPath := filepath.Join(outputDir, base+"_transcript.txt")
	if err := os.WriteFile(transcriptPath, []byte(draft.Transcript), 0o644); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}

	return nil
}
