// Package api is the single doorway to the operations backend. Every figure
// shown anywhere in the console comes back from these calls; nothing is
// computed or cached on this side.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"sbu-console/internal/models"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Error is a non-OK backend response. Detail carries the backend's own
// message when it sent one; Body keeps the raw response for logging.
type Error struct {
	Status int
	Detail string
	Body   string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	Username    string `json:"username"`
}

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	payload := map[string]string{"username": username, "password": password}
	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", "", nil, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListSBUs(ctx context.Context, token string) ([]models.SBU, error) {
	var sbus []models.SBU
	if err := c.do(ctx, http.MethodGet, "/admin/sbus", token, nil, nil, &sbus); err != nil {
		return nil, err
	}
	return sbus, nil
}

func (c *Client) CreateStaff(ctx context.Context, token string, account models.StaffAccount) error {
	return c.do(ctx, http.MethodPost, "/admin/create-staff", token, nil, account, nil)
}

func (c *Client) SBUReport(ctx context.Context, token, sbuID, period, reportDate string) (*models.Report, error) {
	query := url.Values{
		"sbu_id":      {sbuID},
		"period":      {period},
		"report_date": {reportDate},
	}
	var report models.Report
	if err := c.do(ctx, http.MethodGet, "/admin/sbu-report", token, query, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) MySBU(ctx context.Context, token string) (*models.DashboardSnapshot, error) {
	var snap models.DashboardSnapshot
	if err := c.do(ctx, http.MethodGet, "/staff/my-sbu", token, nil, nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *Client) SaveExpense(ctx context.Context, token string, entry models.ExpenseEntry) error {
	return c.do(ctx, http.MethodPost, "/staff/expenses", token, nil, entry, nil)
}

func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call backend: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return newError(res)
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func newError(res *http.Response) *Error {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 64<<10))
	apiErr := &Error{Status: res.StatusCode, Body: string(raw)}

	var payload struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		apiErr.Detail = payload.Detail
	}
	return apiErr
}
