package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/service"
)

// DirectoryHandler lists accounts and applicant pools.
type DirectoryHandler struct {
	service *service.DirectoryService
}

// NewDirectoryHandler constructs handler.
func NewDirectoryHandler(directoryService *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: directoryService}
}

// Employers GET /api/employers.
func (h *DirectoryHandler) Employers(c *fiber.Ctx) error {
	users, err := h.service.ListEmployers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserList(users))
}

// Candidates GET /api/candidates.
func (h *DirectoryHandler) Candidates(c *fiber.Ctx) error {
	users, err := h.service.ListCandidates(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserList(users))
}

// Applicants GET /api/employer/:employerId/applicants.
func (h *DirectoryHandler) Applicants(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	pool, err := h.service.ApplicantPool(c.UserContext(), user, c.Params("employerId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewApplicantList(pool))
}
