package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/application/usecase"
)

// BrokerHandler CRUD for insurance brokers.
type BrokerHandler struct {
	uc *usecase.BrokerUseCase
}

// NewBrokerHandler builds the broker handler.
func NewBrokerHandler(uc *usecase.BrokerUseCase) *BrokerHandler {
	return &BrokerHandler{uc: uc}
}

// Create godoc
// @Summary      Create broker
// @Tags         brokers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateBrokerRequest  true  "broker"
// @Success      201   {object}  dto.BrokerResponse
// @Router       /api/brokers [post]
func (h *BrokerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBrokerRequest
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
// @Summary      Get broker
// @Tags         brokers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "broker id"
// @Success      200  {object}  dto.BrokerResponse
// @Router       /api/brokers/{id} [get]
func (h *BrokerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List brokers
// @Tags         brokers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.BrokerResponse
// @Router       /api/brokers [get]
func (h *BrokerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	out, err := h.uc.List(page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update broker
// @Tags         brokers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "broker id"
// @Param        body  body  dto.CreateBrokerRequest  true  "broker"
// @Success      200   {object}  dto.BrokerResponse
// @Router       /api/brokers/{id} [put]
func (h *BrokerHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateBrokerRequest
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
// @Summary      Delete broker
// @Tags         brokers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "broker id"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/brokers/{id} [delete]
func (h *BrokerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "broker deleted"})
}
