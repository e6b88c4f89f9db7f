package http

import (
	"github.com/gofiber/fiber/v2"

	appcoi "github.com/insuretrack/insuretrack-api/internal/application/coi"
	"github.com/insuretrack/insuretrack-api/internal/application/dto"
)

// COIHandler certificate generation and export.
type COIHandler struct {
	uc *appcoi.COIUseCase
}

// NewCOIHandler builds the certificate handler.
func NewCOIHandler(uc *appcoi.COIUseCase) *COIHandler {
	return &COIHandler{uc: uc}
}

// Generate godoc
// @Summary      Generate ACORD 25 certificate PDF
// @Tags         coi
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "assignment id"
// @Param        body  body  dto.GenerateCOIRequest  true  "certificate data"
// @Success      201   {object}  dto.GenerateCOIResponse
// @Router       /api/subcontractors/{id}/coi [post]
func (h *COIHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateCOIRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.Generate(c.Query("project_id"), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetLatest godoc
// @Summary      Latest generated certificate for an assignment
// @Tags         coi
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "assignment id"
// @Success      200  {object}  entity.GeneratedCOI
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/subcontractors/{id}/coi [get]
func (h *COIHandler) GetLatest(c *fiber.Ctx) error {
	out, err := h.uc.GetLatest(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ExportXML godoc
// @Summary      Export certificate data as ACORD XML
// @Tags         coi
// @Accept       json
// @Produce      application/xml
// @Security     BearerAuth
// @Param        body  body  dto.GenerateCOIRequest  true  "certificate data"
// @Success      200   {string}  string  "ACORD XML document"
// @Router       /api/coi/acord-xml [post]
func (h *COIHandler) ExportXML(c *fiber.Ctx) error {
	var in dto.GenerateCOIRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	xmlBytes, filename, err := h.uc.ExportXML(in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(xmlBytes)
}

// Download godoc
// @Summary      Download a generated certificate file
// @Tags         coi
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        filename  path  string  true  "certificate filename"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/coi/files/{filename} [get]
func (h *COIHandler) Download(c *fiber.Ctx) error {
	path, err := h.uc.OpenFile(c.Params("filename"))
	if err != nil {
		return respondError(c, err)
	}
	return c.SendFile(path)
}
