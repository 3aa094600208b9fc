package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/service"
)

// JobsHandler serves job listings and postings.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// List GET /api/jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	jobs, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobList(jobs))
}

// Get GET /api/jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobResponse(job))
}

// Create POST /api/jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.JobCreateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.Normalize()
	if err := checkStruct(&req, func(fields []string) string {
		return "Job validation failed: " + strings.Join(fields, ", ")
	}); err != nil {
		return err
	}

	job, err := h.service.Create(c.UserContext(), user, service.JobCreateInput{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Type:             req.Type,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		Qualifications:   req.Qualifications,
		Salary:           req.Salary,
		PostedDate:       req.PostedDate,
		PostedBy:         req.PostedBy,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewJobResponse(job))
}
