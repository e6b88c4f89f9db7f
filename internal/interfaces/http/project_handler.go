package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/application/usecase"
	"github.com/insuretrack/insuretrack-api/internal/domain/entity"
)

// ProjectHandler CRUD for projects and their subcontractor assignments.
type ProjectHandler struct {
	uc    *usecase.ProjectUseCase
	subUC *usecase.ProjectSubcontractorUseCase
}

// NewProjectHandler builds the project handler.
func NewProjectHandler(uc *usecase.ProjectUseCase, subUC *usecase.ProjectSubcontractorUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc, subUC: subUC}
}

// Create godoc
// @Summary      Create project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateProjectRequest  true  "project"
// @Success      201   {object}  dto.ProjectResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	// GC users create projects for their own company.
	if GetRole(c) == entity.RoleGC && GetContractorID(c) != "" {
		in.GCID = GetContractorID(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "project id"
// @Success      200  {object}  dto.ProjectResponse
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ProjectResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	// GC users see only their own projects; admins see everything.
	gcID := c.Query("gc_id")
	if GetRole(c) == entity.RoleGC {
		gcID = GetContractorID(c)
	}
	out, err := h.uc.List(gcID, page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "project id"
// @Param        body  body  dto.CreateProjectRequest  true  "project"
// @Success      200   {object}  dto.ProjectResponse
// @Router       /api/projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "project id"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "project deleted"})
}

// AssignSubcontractor godoc
// @Summary      Assign subcontractor to project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                          true  "project id"
// @Param        body  body  dto.AssignSubcontractorRequest  true  "assignment"
// @Success      201   {object}  dto.ProjectSubcontractorResponse
// @Router       /api/projects/{id}/subcontractors [post]
func (h *ProjectHandler) AssignSubcontractor(c *fiber.Ctx) error {
	var in dto.AssignSubcontractorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.subUC.Assign(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSubcontractors godoc
// @Summary      List project subcontractors
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "project id"
// @Success      200  {array}  dto.ProjectSubcontractorResponse
// @Router       /api/projects/{id}/subcontractors [get]
func (h *ProjectHandler) ListSubcontractors(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	out, err := h.subUC.ListByProject(c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
