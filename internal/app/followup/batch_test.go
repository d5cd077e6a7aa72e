package followup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-followup/internal/app/cache"
	"meeting-followup/internal/app/email"
	"meeting-followup/internal/app/generator"
	"meeting-followup/internal/app/testutil"
)

func newTestBatchRunner(transcriber *testutil.MockTranscriber, dao *testutil.MockEmailRecordDAO) *BatchRunner {
	pipeline := NewPipeline(transcriber, generator.NewMockProvider(""), email.NewComposer(nil), cache.NewMemoryCache(), nil)
	progress := NewProgressManager(ProgressConfig{Enabled: false})
	return NewBatchRunner(pipeline, dao, progress, nil)
}

func TestBatchRunner_Run(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "drafts")

	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "alpha.mp3"), []byte("recording one"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "beta.wav"), []byte("recording two"), 0o644))
	// Unsupported files are ignored, not failed.
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "notes.txt"), []byte("not audio"), 0o644))

	dao := testutil.NewMockEmailRecordDAO()
	runner := newTestBatchRunner(testutil.NewMockTranscriber(), dao)

	result, err := runner.Run(context.Background(), inputDir, outputDir, Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 0, result.Failed)

	for _, base := range []string{"alpha", "beta"} {
		emailBody, err := os.ReadFile(filepath.Join(outputDir, base+"_email.txt"))
		require.NoError(t, err)
		assert.Contains(t, string(emailBody), "Next Steps:")

		transcript, err := os.ReadFile(filepath.Join(outputDir, base+"_transcript.txt"))
		require.NoError(t, err)
		assert.NotEmpty(t, transcript)
	}

	records, err := dao.GetAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, "Follow-Up from Our Recent Meeting", r.Subject)
		assert.True(t, r.SentAt.IsZero())
	}
}

func TestBatchRunner_Run_OneFailureDoesNotStopBatch(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	badPath := filepath.Join(inputDir, "broken.mp3")
	require.NoError(t, os.WriteFile(badPath, []byte("bad"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "good.mp3"), []byte("good recording"), 0o644))

	transcriber := testutil.NewMockTranscriber()
	transcriber.ErrorMap[badPath] = errors.New("whisper choked")

	dao := testutil.NewMockEmailRecordDAO()
	runner := newTestBatchRunner(transcriber, dao)

	result, err := runner.Run(context.Background(), inputDir, outputDir, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)
}

func TestBatchRunner_Run_EmptyDirectory(t *testing.T) {
	runner := newTestBatchRunner(testutil.NewMockTranscriber(), testutil.NewMockEmailRecordDAO())

	_, err := runner.Run(context.Background(), t.TempDir(), t.TempDir(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no supported audio files")
}

func TestBatchRunner_RunFile(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "drafts")

	audioPath := filepath.Join(inputDir, "standup.m4a")
	require.NoError(t, os.WriteFile(audioPath, []byte("recording"), 0o644))

	dao := testutil.NewMockEmailRecordDAO()
	runner := newTestBatchRunner(testutil.NewMockTranscriber(), dao)

	require.NoError(t, runner.RunFile(context.Background(), audioPath, outputDir, Options{}))

	emailBody, err := os.ReadFile(filepath.Join(outputDir, "standup_email.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(emailBody), "Next Steps:")

	records, err := dao.GetAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "standup.m4a", records[0].AudioFilename)
}

func TestBatchRunner_RunFile_UnsupportedFormat(t *testing.T) {
	inputDir := t.TempDir()
	notesPath := filepath.Join(inputDir, "notes.txt")
	require.NoError(t, os.WriteFile(notesPath, []byte("not audio"), 0o644))

	runner := newTestBatchRunner(testutil.NewMockTranscriber(), testutil.NewMockEmailRecordDAO())

	err := runner.RunFile(context.Background(), notesPath, t.TempDir(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported audio format")
}

func TestBatchRunner_Run_CancelledContext(t *testing.T) {
	inputDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "alpha.mp3"), []byte("recording"), 0o644))

	runner := newTestBatchRunner(testutil.NewMockTranscriber(), testutil.NewMockEmailRecordDAO())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, inputDir, t.TempDir(), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
