// Package client talks to the job board API and holds the state a UI
// renders from.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx reply from the API.
type APIError struct {
	Status  int
	Message string
	Code    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client is a JSON client for the job board API. After Signup or Login it
// sends the issued token on every call until Logout.
type Client struct {
	baseURL string
	http    *fiber.Client
	timeout time.Duration

	mu    sync.RWMutex
	token string
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout bounds every call that has no earlier context deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New builds a client for baseURL, for example "http://localhost:3001".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &fiber.Client{},
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns the bearer token in use, if any.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken replaces the bearer token.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Signup creates an account and keeps its token.
func (c *Client) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, fiber.MethodPost, "/api/auth/signup", req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Login authenticates and keeps the token.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(ctx, fiber.MethodPost, "/api/auth/login", dto.LoginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Logout revokes the token server side and forgets it. The token is
// forgotten even when the call fails.
func (c *Client) Logout(ctx context.Context) error {
	if c.Token() == "" {
		return nil
	}
	err := c.do(ctx, fiber.MethodPost, "/api/auth/logout", nil, nil)
	c.SetToken("")
	return err
}

// Jobs lists every job.
func (c *Client) Jobs(ctx context.Context) ([]dto.JobResponse, error) {
	out := []dto.JobResponse{}
	if err := c.do(ctx, fiber.MethodGet, "/api/jobs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Job fetches one job.
func (c *Client) Job(ctx context.Context, id string) (*dto.JobResponse, error) {
	var out dto.JobResponse
	if err := c.do(ctx, fiber.MethodGet, "/api/jobs/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateJob posts a job as the signed-in employer.
func (c *Client) CreateJob(ctx context.Context, req dto.JobCreateRequest) (*dto.JobResponse, error) {
	var out dto.JobResponse
	if err := c.do(ctx, fiber.MethodPost, "/api/jobs", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Apply submits an application as the signed-in candidate.
func (c *Client) Apply(ctx context.Context, jobID string, req dto.ApplyRequest) (*dto.ApplyResponse, error) {
	var out dto.ApplyResponse
	if err := c.do(ctx, fiber.MethodPost, "/api/jobs/"+url.PathEscape(jobID)+"/apply", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// JobApplications lists the applications of a job the signed-in employer owns.
func (c *Client) JobApplications(ctx context.Context, jobID string) ([]dto.JobApplicationResponse, error) {
	out := []dto.JobApplicationResponse{}
	if err := c.do(ctx, fiber.MethodGet, "/api/jobs/"+url.PathEscape(jobID)+"/applications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Employers lists employer accounts.
func (c *Client) Employers(ctx context.Context) ([]dto.UserResponse, error) {
	return c.users(ctx, "/api/employers")
}

// Candidates lists candidate accounts.
func (c *Client) Candidates(ctx context.Context) ([]dto.UserResponse, error) {
	return c.users(ctx, "/api/candidates")
}

// Applicants returns the applicant pool of the signed-in employer.
func (c *Client) Applicants(ctx context.Context, employerID string) ([]dto.ApplicantResponse, error) {
	out := []dto.ApplicantResponse{}
	if err := c.do(ctx, fiber.MethodGet, "/api/employer/"+url.PathEscape(employerID)+"/applicants", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) users(ctx context.Context, path string) ([]dto.UserResponse, error) {
	out := []dto.UserResponse{}
	if err := c.do(ctx, fiber.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var agent *fiber.Agent
	switch method {
	case fiber.MethodGet:
		agent = c.http.Get(c.baseURL + path)
	case fiber.MethodPost:
		agent = c.http.Post(c.baseURL + path)
	default:
		return fmt.Errorf("unsupported method %s", method)
	}
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if token := c.Token(); token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	if body != nil {
		agent.JSON(body)
	}
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}
	if timeout > 0 {
		agent.Timeout(timeout)
	}

	status, raw, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%s %s: %w", method, path, errors.Join(errs...))
	}
	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		return decodeAPIError(status, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(status int, raw []byte) error {
	apiErr := &APIError{Status: status}
	var body struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
		apiErr.Code = body.Code
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	if apiErr.Message == "" {
		apiErr.Message = fiber.NewError(status).Message
	}
	return apiErr
}
