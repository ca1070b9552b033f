package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/timeflow-api/internal/application/dto"
	"github.com/jhoicas/timeflow-api/internal/application/usecase"
)

// TemplateHandler maneja plantillas de reporte y reportes guardados.
type TemplateHandler struct {
	uc       *usecase.TemplateUseCase
	validate *validator.Validate
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(uc *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc, validate: validator.New()}
}

// ── Plantillas ────────────────────────────────────────────────────────────────

// CreateTemplate godoc
// @Summary      Crear plantilla de reporte
// @Tags         templates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTemplateRequest  true  "name, type, configuration"
// @Success      201   {object}  dto.TemplateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/templates [post]
func (h *TemplateHandler) CreateTemplate(c *fiber.Ctx) error {
	var in dto.CreateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.CreateTemplate(c.Context(), callerFromCtx(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetTemplate godoc
// @Summary      Obtener plantilla por id
// @Tags         templates
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TemplateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *fiber.Ctx) error {
	out, err := h.uc.GetTemplate(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListTemplates godoc
// @Summary      Listar plantillas
// @Tags         templates
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TemplateResponse
// @Router       /api/reports/templates [get]
func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	out, err := h.uc.ListTemplates(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateTemplate godoc
// @Summary      Actualizar plantilla
// @Tags         templates
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.TemplateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c *fiber.Ctx) error {
	var in dto.UpdateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.UpdateTemplate(c.Context(), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// DeleteTemplate godoc
// @Summary      Borrar plantilla
// @Tags         templates
// @Security     Bearer
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *fiber.Ctx) error {
	if err := h.uc.DeleteTemplate(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Reportes guardados ────────────────────────────────────────────────────────

// CreateSavedReport godoc
// @Summary      Guardar un reporte con nombre
// @Tags         saved-reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSavedReportRequest  true  "name, parameters"
// @Success      201   {object}  dto.SavedReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/saved [post]
func (h *TemplateHandler) CreateSavedReport(c *fiber.Ctx) error {
	var in dto.CreateSavedReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.CreateSavedReport(c.Context(), callerFromCtx(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetSavedReport godoc
// @Summary      Obtener reporte guardado por id
// @Tags         saved-reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SavedReportResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/saved/{id} [get]
func (h *TemplateHandler) GetSavedReport(c *fiber.Ctx) error {
	out, err := h.uc.GetSavedReport(c.Context(), callerFromCtx(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListSavedReports godoc
// @Summary      Listar los reportes guardados del usuario
// @Tags         saved-reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SavedReportResponse
// @Router       /api/reports/saved [get]
func (h *TemplateHandler) ListSavedReports(c *fiber.Ctx) error {
	out, err := h.uc.ListSavedReports(c.Context(), callerFromCtx(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateSavedReport godoc
// @Summary      Actualizar reporte guardado
// @Tags         saved-reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.SavedReportResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/saved/{id} [put]
func (h *TemplateHandler) UpdateSavedReport(c *fiber.Ctx) error {
	var in dto.UpdateSavedReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.UpdateSavedReport(c.Context(), callerFromCtx(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// DeleteSavedReport godoc
// @Summary      Borrar reporte guardado
// @Tags         saved-reports
// @Security     Bearer
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/saved/{id} [delete]
func (h *TemplateHandler) DeleteSavedReport(c *fiber.Ctx) error {
	if err := h.uc.DeleteSavedReport(c.Context(), callerFromCtx(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
