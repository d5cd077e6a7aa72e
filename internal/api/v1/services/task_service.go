package services

import (
	"context"
	"log/slog"

	"meeting-followup/internal/api/errors"
	"meeting-followup/internal/api/v1/dto"
	"meeting-followup/internal/app/metrics"
	"meeting-followup/internal/app/msgraph"
	"meeting-followup/internal/app/tasks"
)

type taskService struct {
	excel  *msgraph.ExcelClient
	logger *slog.Logger
}

// NewTaskService creates a task service. The Excel client may be nil
// when the Graph credentials are not configured; Sync then reports the
// workbook as unavailable while Extract keeps working.
func NewTaskService(excel *msgraph.ExcelClient, logger *slog.Logger) TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &taskService{excel: excel, logger: logger}
}

func (s *taskService) Extract(ctx context.Context, emailBody string) []string {
	extracted := tasks.Extract(emailBody)
	if extracted == nil {
		extracted = []string{}
	}
	return extracted
}

func (s *taskService) Sync(ctx context.Context, req *dto.SyncTasksRequest) (*dto.SyncTasksResponse, error) {
	if s.excel == nil {
		return nil, errors.NewServiceUnavailableError("Task workbook is not configured")
	}

	taskList := req.Tasks
	if len(taskList) == 0 {
		taskList = tasks.Extract(req.EmailBody)
	}
	if len(taskList) == 0 {
		return &dto.SyncTasksResponse{Synced: 0, Tasks: []string{}}, nil
	}

	synced, err := s.excel.AddTasks(ctx, req.ClientName, taskList)
	if err != nil {
		s.logger.Error("task sync failed", "client", req.ClientName, "error", err)
		return nil, errors.WrapError(err, errors.KindServiceUnavailable, "Failed to sync tasks to workbook")
	}

	metrics.TasksSyncedTotal.Add(float64(synced))
	s.logger.Info("tasks synced to workbook", "client", req.ClientName, "count", synced)

	return &dto.SyncTasksResponse{Synced: synced, Tasks: taskList}, nil
}
