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

func writeTestAudio(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "meeting.mp3")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestPipeline(transcriber *testutil.MockTranscriber, gen generator.EmailGenerator) *Pipeline {
	return NewPipeline(transcriber, gen, email.NewComposer(nil), cache.NewMemoryCache(), nil)
}

func TestPipeline_Run(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	transcriber.DefaultResponse = "We agreed to rebalance the portfolio."

	gen := generator.NewMockProvider("Dear Sarah,\n\nNext Steps:\n- Rebalance the portfolio")

	pipeline := newTestPipeline(transcriber, gen)
	audioPath := writeTestAudio(t, "fake audio bytes")

	draft, err := pipeline.Run(context.Background(), audioPath, Options{RecipientName: "Sarah Chen"})
	require.NoError(t, err)

	assert.Equal(t, "We agreed to rebalance the portfolio.", draft.Transcript)
	assert.Contains(t, draft.EmailBody, "Next Steps:")
	assert.Equal(t, "mock", draft.Provider)
	assert.False(t, draft.FromCache)

	// The transcript flowed into the generation prompt.
	assert.Contains(t, gen.LastPrompt.User, "We agreed to rebalance the portfolio.")
	assert.Contains(t, gen.LastPrompt.User, "Address the email to Sarah Chen.")
}

func TestPipeline_Run_TranscriptCacheHit(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	gen := generator.NewMockProvider("body")

	pipeline := newTestPipeline(transcriber, gen)
	audioPath := writeTestAudio(t, "identical audio bytes")

	first, err := pipeline.Run(context.Background(), audioPath, Options{})
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := pipeline.Run(context.Background(), audioPath, Options{})
	require.NoError(t, err)
	assert.True(t, second.FromCache)

	// The second run never reached the transcription API.
	assert.Equal(t, 1, transcriber.CallCount)
}

func TestPipeline_Run_CacheKeyedByContent(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	gen := generator.NewMockProvider("body")
	pipeline := newTestPipeline(transcriber, gen)

	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.mp3")
	pathB := filepath.Join(dir, "b.mp3")
	require.NoError(t, os.WriteFile(pathA, []byte("recording one"), 0o644))
	require.NoError(t, os.WriteFile(pathB, []byte("recording two"), 0o644))

	_, err := pipeline.Run(context.Background(), pathA, Options{})
	require.NoError(t, err)
	_, err = pipeline.Run(context.Background(), pathB, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, transcriber.CallCount)
}

func TestPipeline_Run_TranscriptionFailure(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	transcriber.DefaultError = errors.New("whisper unavailable")

	pipeline := newTestPipeline(transcriber, generator.NewMockProvider("body"))
	audioPath := writeTestAudio(t, "audio")

	_, err := pipeline.Run(context.Background(), audioPath, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transcription failed")
}

func TestPipeline_Run_GenerationFailure(t *testing.T) {
	transcriber := testutil.NewMockTranscriber()
	gen := generator.NewMockProvider("")
	gen.Err = errors.New("model overloaded")

	pipeline := newTestPipeline(transcriber, gen)
	audioPath := writeTestAudio(t, "audio")

	_, err := pipeline.Run(context.Background(), audioPath, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email generation failed")
}

func TestPipeline_Run_MissingFile(t *testing.T) {
	pipeline := newTestPipeline(testutil.NewMockTranscriber(), generator.NewMockProvider("body"))

	_, err := pipeline.Run(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"), Options{})
	require.Error(t, err)
}
