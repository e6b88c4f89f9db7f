package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/application/usecase"
)

// TradeHandler CRUD for the trade catalog.
type TradeHandler struct {
	uc *usecase.TradeUseCase
}

// NewTradeHandler builds the trade handler.
func NewTradeHandler(uc *usecase.TradeUseCase) *TradeHandler {
	return &TradeHandler{uc: uc}
}

// Create godoc
// @Summary      Create trade
// @Tags         trades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTradeRequest  true  "trade"
// @Success      201   {object}  dto.TradeResponse
// @Router       /api/trades [post]
func (h *TradeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTradeRequest
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
// @Summary      Get trade
// @Tags         trades
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "trade id"
// @Success      200  {object}  dto.TradeResponse
// @Router       /api/trades/{id} [get]
func (h *TradeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List trades
// @Tags         trades
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TradeResponse
// @Router       /api/trades [get]
func (h *TradeHandler) List(c *fiber.Ctx) error {
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
// @Summary      Update trade
// @Tags         trades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "trade id"
// @Param        body  body  dto.CreateTradeRequest  true  "trade"
// @Success      200   {object}  dto.TradeResponse
// @Router       /api/trades/{id} [put]
func (h *TradeHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateTradeRequest
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
// @Summary      Delete trade
// @Tags         trades
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "trade id"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/trades/{id} [delete]
func (h *TradeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "trade deleted"})
}
