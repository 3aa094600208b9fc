package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/service"
)

// ApplicationsHandler serves applying to jobs and reviewing applicants.
type ApplicationsHandler struct {
	service *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{service: applicationService}
}

// Apply POST /api/jobs/:id/apply. An unknown job is reported before any
// problem with the body.
func (h *ApplicationsHandler) Apply(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if _, err := h.service.Job(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	var req dto.ApplyRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	req.Normalize()
	if err := checkStruct(&req, func(fields []string) string {
		return "Application validation failed: " + strings.Join(fields, ", ")
	}); err != nil {
		return err
	}

	app, err := h.service.Apply(c.UserContext(), user, c.Params("id"), service.ApplyInput{
		Name:        req.Name,
		Email:       req.Email,
		Resume:      req.Resume,
		CandidateID: req.CandidateID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.ApplyResponse{
		Message:     "Application submitted",
		Application: dto.NewApplicationResponse(app),
	})
}

// ListForJob GET /api/jobs/:id/applications.
func (h *ApplicationsHandler) ListForJob(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	apps, err := h.service.ListForJob(c.UserContext(), user, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewJobApplicationList(apps))
}
