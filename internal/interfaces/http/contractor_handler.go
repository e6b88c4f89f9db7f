package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/application/usecase"
)

// ContractorHandler CRUD for GC and subcontractor companies.
type ContractorHandler struct {
	uc *usecase.ContractorUseCase
}

// NewContractorHandler builds the contractor handler.
func NewContractorHandler(uc *usecase.ContractorUseCase) *ContractorHandler {
	return &ContractorHandler{uc: uc}
}

// Create godoc
// @Summary      Create contractor
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateContractorRequest  true  "contractor"
// @Success      201   {object}  dto.ContractorResponse
// @Router       /api/contractors [post]
func (h *ContractorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get contractor
// @Tags         contractors
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "contractor id"
// @Success      200  {object}  dto.ContractorResponse
// @Router       /api/contractors/{id} [get]
func (h *ContractorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List contractors
// @Tags         contractors
// @Produce      json
// @Security     BearerAuth
// @Param        type    query  string  false  "general_contractor or subcontractor"
// @Param        limit   query  int     false  "page size"
// @Param        offset  query  int     false  "page offset"
// @Success      200  {array}  dto.ContractorResponse
// @Router       /api/contractors [get]
func (h *ContractorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	out, err := h.uc.List(c.Query("type"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update contractor
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                       true  "contractor id"
// @Param        body  body  dto.CreateContractorRequest  true  "contractor"
// @Success      200   {object}  dto.ContractorResponse
// @Router       /api/contractors/{id} [put]
func (h *ContractorHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateContractorRequest
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
// @Summary      Delete contractor
// @Tags         contractors
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "contractor id"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/contractors/{id} [delete]
func (h *ContractorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contractor deleted"})
}
