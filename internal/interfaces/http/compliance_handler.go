package http

import (
	"github.com/gofiber/fiber/v2"

	compliancecheck "github.com/insuretrack/insuretrack-api/internal/application/compliance"
	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/domain/compliance"
)

// ComplianceHandler runs checks and exposes requirement resolution.
type ComplianceHandler struct {
	uc *compliancecheck.CheckUseCase
}

// NewComplianceHandler builds the compliance handler.
func NewComplianceHandler(uc *compliancecheck.CheckUseCase) *ComplianceHandler {
	return &ComplianceHandler{uc: uc}
}

// RunCheck godoc
// @Summary      Run compliance check for an assignment
// @Description  Evaluates the inline certificate snapshot when supplied, otherwise the latest certificate on file.
// @Tags         compliance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                      true   "assignment id"
// @Param        body  body  dto.CheckComplianceRequest  false  "optional certificate snapshot"
// @Success      200   {object}  dto.ComplianceCheckResponse
// @Router       /api/subcontractors/{id}/compliance-check [post]
func (h *ComplianceHandler) RunCheck(c *fiber.Ctx) error {
	var in dto.CheckComplianceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.RunCheck(c.Params("id"), in, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetCheck godoc
// @Summary      Get one compliance check
// @Tags         compliance
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "check id"
// @Success      200  {object}  dto.ComplianceCheckResponse
// @Router       /api/compliance-checks/{id} [get]
func (h *ComplianceHandler) GetCheck(c *fiber.Ctx) error {
	out, err := h.uc.GetCheck(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Compliance check history for an assignment
// @Tags         compliance
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "assignment id"
// @Success      200  {array}  dto.ComplianceCheckResponse
// @Router       /api/subcontractors/{id}/compliance-checks [get]
func (h *ComplianceHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()
	out, err := h.uc.History(c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// requirementsQuery is the payload for requirement resolution previews.
type requirementsQuery struct {
	ProjectType       string   `json:"project_type"`
	AdditionalInsured []string `json:"additional_insured"`
	Trades            []string `json:"trades"`
}

// ResolveRequirements godoc
// @Summary      Preview the insurance requirements for a trade/project mix
// @Tags         compliance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  compliance.RequirementSet
// @Router       /api/compliance/requirements [post]
func (h *ComplianceHandler) ResolveRequirements(c *fiber.Ctx) error {
	var in requirementsQuery
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if len(in.Trades) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "at least one trade is required"})
	}
	rs := compliance.ResolveRequirements(compliance.ProjectContext{
		ProjectType:       in.ProjectType,
		AdditionalInsured: in.AdditionalInsured,
	}, in.Trades)
	return c.JSON(rs)
}
