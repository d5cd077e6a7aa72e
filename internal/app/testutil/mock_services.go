package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/tealeg/xlsx"

	"meeting-followup/internal/api/v1/dto"
)

// MockServices contains all mock services for testing
type MockServices struct {
	MeetingService *MockMeetingService
	EmailService   *MockEmailService
	TaskService    *MockTaskService
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		MeetingService: NewMockMeetingService(t),
		EmailService:   NewMockEmailService(t),
		TaskService:    NewMockTaskService(t),
	}
}

// MockMeetingService is a mock implementation of MeetingService
type MockMeetingService struct {
	mock.Mock
}

func NewMockMeetingService(t *testing.T) *MockMeetingService {
	m := &MockMeetingService{}
	m.Test(t)
	return m
}

func (m *MockMeetingService) CreateDraft(ctx context.Context, audio io.Reader, filename string, recipientName string) (*dto.DraftResponse, error) {
	args := m.Called(ctx, audio, filename, recipientName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DraftResponse), args.Error(1)
}

func (m *MockMeetingService) Regenerate(ctx context.Context, req *dto.GenerateEmailRequest) (*dto.DraftResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DraftResponse), args.Error(1)
}

// MockEmailService is a mock implementation of EmailService
type MockEmailService struct {
	mock.Mock
}

func NewMockEmailService(t *testing.T) *MockEmailService {
	m := &MockEmailService{}
	m.Test(t)
	return m
}

func (m *MockEmailService) Send(ctx context.Context, req *dto.SendEmailRequest) (*dto.EmailRecordResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmailRecordResponse), args.Error(1)
}

func (m *MockEmailService) List(ctx context.Context) (*dto.EmailListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmailListResponse), args.Error(1)
}

func (m *MockEmailService) Get(ctx context.Context, id int) (*dto.EmailRecordResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.EmailRecordResponse), args.Error(1)
}

func (m *MockEmailService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmailService) ExportWorkbook(ctx context.Context) (*xlsx.File, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*xlsx.File), args.Error(1)
}

func (m *MockEmailService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.StatsResponse), args.Error(1)
}

// MockTaskService is a mock implementation of TaskService
type MockTaskService struct {
	mock.Mock
}

func NewMockTaskService(t *testing.T) *MockTaskService {
	m := &MockTaskService{}
	m.Test(t)
	return m
}

func (m *MockTaskService) Extract(ctx context.Context, emailBody string) []string {
	args := m.Called(ctx, emailBody)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}

func (m *MockTaskService) Sync(ctx context.Context, req *dto.SyncTasksRequest) (*dto.SyncTasksResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SyncTasksResponse), args.Error(1)
}
