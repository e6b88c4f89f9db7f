package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/application/usecase"
)

// SubcontractorHandler operations on a single project assignment and its
// uploaded documents.
type SubcontractorHandler struct {
	uc    *usecase.ProjectSubcontractorUseCase
	docUC *usecase.DocumentUseCase
}

// NewSubcontractorHandler builds the assignment handler.
func NewSubcontractorHandler(uc *usecase.ProjectSubcontractorUseCase, docUC *usecase.DocumentUseCase) *SubcontractorHandler {
	return &SubcontractorHandler{uc: uc, docUC: docUC}
}

// GetByID godoc
// @Summary      Get project subcontractor
// @Tags         subcontractors
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "assignment id"
// @Success      200  {object}  dto.ProjectSubcontractorResponse
// @Router       /api/subcontractors/{id} [get]
func (h *SubcontractorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update project subcontractor
// @Tags         subcontractors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                          true  "assignment id"
// @Param        body  body  dto.AssignSubcontractorRequest  true  "assignment"
// @Success      200   {object}  dto.ProjectSubcontractorResponse
// @Router       /api/subcontractors/{id} [put]
func (h *SubcontractorHandler) Update(c *fiber.Ctx) error {
	var in dto.AssignSubcontractorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Remove subcontractor from project
// @Tags         subcontractors
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "assignment id"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/subcontractors/{id} [delete]
func (h *SubcontractorHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "subcontractor removed"})
}

// CreateDocument godoc
// @Summary      Record uploaded insurance document
// @Tags         subcontractors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "assignment id"
// @Param        body  body  dto.CreateDocumentRequest  true  "document metadata"
// @Success      201   {object}  dto.DocumentResponse
// @Router       /api/subcontractors/{id}/documents [post]
func (h *SubcontractorHandler) CreateDocument(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.docUC.Create(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListDocuments godoc
// @Summary      List insurance documents on file
// @Tags         subcontractors
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "assignment id"
// @Success      200  {array}  dto.DocumentResponse
// @Router       /api/subcontractors/{id}/documents [get]
func (h *SubcontractorHandler) ListDocuments(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	out, err := h.docUC.ListBySubcontractor(c.Params("id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReviewDocument godoc
// @Summary      Approve or reject a document
// @Tags         subcontractors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        docId  path  string                    true  "document id"
// @Param        body   body  dto.ReviewDocumentRequest  true  "review"
// @Success      200    {object}  dto.DocumentResponse
// @Router       /api/documents/{docId}/review [post]
func (h *SubcontractorHandler) ReviewDocument(c *fiber.Ctx) error {
	var in dto.ReviewDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.docUC.Review(c.Params("docId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
