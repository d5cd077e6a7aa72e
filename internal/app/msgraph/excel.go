package msgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"meeting-followup/internal/config"
)

const defaultGraphBase = "https://graph.microsoft.com/v1.0"

// ExcelClient appends action items to the shared task workbook through
// the Graph workbook API.
type ExcelClient struct {
	cfg       *config.GraphConfig
	tokens    *TokenSource
	graphBase string
	client    *http.Client
	now       func() time.Time
}

// NewExcelClient creates an Excel task sync client.
func NewExcelClient(cfg *config.GraphConfig, httpClient *http.Client) *ExcelClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &ExcelClient{
		cfg:       cfg,
		tokens:    NewTokenSource(cfg.ClientID, cfg.ClientSecret, cfg.TenantID, httpClient),
		graphBase: defaultGraphBase,
		client:    httpClient,
		now:       time.Now,
	}
}

type usedRangeResponse struct {
	RowCount int `json:"rowCount"`
}

type rangePatchBody struct {
	Values [][]string `json:"values"`
}

// AddTasks appends one row per task below the current used range.
// Returns the number of rows written.
func (ec *ExcelClient) AddTasks(ctx context.Context, clientName string, tasks []string) (int, error) {
	if !ec.cfg.Configured() {
		return 0, fmt.Errorf("excel sync not configured: set MICROSOFT_CLIENT_ID, MICROSOFT_CLIENT_SECRET, MICROSOFT_TENANT_ID and EXCEL_FILE_ID")
	}
	if len(tasks) == 0 {
		return 0, fmt.Errorf("no tasks to sync")
	}

	token, err := ec.tokens.Token(ctx)
	if err != nil {
		return 0, err
	}

	nextRow, err := ec.nextEmptyRow(ctx, token)
	if err != nil {
		return 0, err
	}

	date := ec.now().Format("2006-01-02")
	values := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		values = append(values, []string{
			clientName, task, date, "Pending",
			"Meeting Follow-up", "Medium", ec.cfg.TaskOwner, "",
		})
	}

	startRow := nextRow
	endRow := nextRow + len(tasks) - 1
	rangeAddress := fmt.Sprintf("A%d:H%d", startRow, endRow)

	body, err := json.Marshal(rangePatchBody{Values: values})
	if err != nil {
		return 0, fmt.Errorf("failed to encode task rows: %w", err)
	}

	url := fmt.Sprintf("%s/drives/b!%s/root/workbook/worksheets/Sheet1/range(address='%s')",
		ec.graphBase, ec.cfg.ExcelFileID, rangeAddress)

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build range request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ec.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("range patch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("range patch returned status %d", resp.StatusCode)
	}

	return len(tasks), nil
}

// nextEmptyRow reads the used range of Sheet1 and returns the first free
// row. Row 1 is the header, so an unreadable or empty sheet starts at 2.
func (ec *ExcelClient) nextEmptyRow(ctx context.Context, token string) (int, error) {
	url := fmt.Sprintf("%s/drives/b!%s/root/workbook/worksheets/Sheet1/usedRange",
		ec.graphBase, ec.cfg.ExcelFileID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build usedRange request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := ec.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("usedRange request failed: %w", err)
	}
	defer resp.Body.Close()

	nextRow := 2
	if resp.StatusCode == http.StatusOK {
		var ur usedRangeResponse
		if err := json.NewDecoder(resp.Body).Decode(&ur); err == nil && ur.RowCount > 0 {
			nextRow = ur.RowCount + 1
		}
	}

	return nextRow, nil
}

// SetGraphBase overrides the Graph endpoint. Used by tests.
func (ec *ExcelClient) SetGraphBase(base string) {
	ec.graphBase = strings.TrimRight(base, "/")
}

// SetLoginBase overrides the login endpoint. Used by tests.
func (ec *ExcelClient) SetLoginBase(base string) {
	ec.tokens.SetLoginBase(base)
}
