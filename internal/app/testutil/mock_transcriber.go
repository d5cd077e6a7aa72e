package testutil

import (
	"context"
	"sync"
)

// MockTranscriber is a configurable api.Transcriber for pipeline tests.
// Responses can be keyed per file path; unkeyed files get the default.
type MockTranscriber struct {
	mu sync.Mutex

	DefaultResponse string
	DefaultError    error
	ResponseMap     map[string]string
	ErrorMap        map[string]error

	CallCount int
	Calls     []string
}

// NewMockTranscriber creates a MockTranscriber with a canned transcript.
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "This is a mock meeting transcript.",
		ResponseMap:     make(map[string]string),
		ErrorMap:        make(map[string]error),
	}
}

func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.Calls = append(m.Calls, inputFilePath)

	if err, ok := m.ErrorMap[inputFilePath]; ok {
		return "", err
	}
	if m.DefaultError != nil {
		return "", m.DefaultError
	}
	if resp, ok := m.ResponseMap[inputFilePath]; ok {
		return resp, nil
	}
	return m.DefaultResponse, nil
}
