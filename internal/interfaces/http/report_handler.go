package http

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/timeflow-api/internal/application/dto"
	"github.com/jhoicas/timeflow-api/internal/application/reporting"
	"github.com/jhoicas/timeflow-api/internal/domain/report"
)

// ReportHandler maneja los endpoints de reportería y exportación.
type ReportHandler struct {
	uc       *reporting.UseCase
	exporter *reporting.Exporter
	validate *validator.Validate
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reporting.UseCase, exporter *reporting.Exporter) *ReportHandler {
	return &ReportHandler{uc: uc, exporter: exporter, validate: validator.New()}
}

// parseQuery parsea y valida los parámetros comunes de reporte. Devuelve
// false si ya respondió con un error.
func (h *ReportHandler) parseQuery(c *fiber.Ctx, req *dto.ReportQuery) bool {
	if err := c.QueryParser(req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date y end_date son requeridos (YYYY-MM-DD)"})
		return false
	}
	return true
}

// GetTimesheet godoc
// @Summary      Timesheet plano de un usuario con estadísticas del período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true   "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  true   "Fin del período (YYYY-MM-DD), inclusivo"
// @Param        user_id     query  string  false  "Usuario objetivo. Default: el del token."
// @Success      200  {object}  dto.TimesheetReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/timesheet [get]
func (h *ReportHandler) GetTimesheet(c *fiber.Ctx) error {
	var req dto.ReportQuery
	if !h.parseQuery(c, &req) {
		return nil
	}
	period, err := reporting.ParsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return domainError(c, err)
	}
	out, err := h.uc.GetTimesheet(c.Context(), callerFromCtx(c), req.UserID, period)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetTeamReport godoc
// @Summary      Reporte agregado usuario→proyecto de un equipo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  true  "Fin del período (YYYY-MM-DD), inclusivo"
// @Param        team_id     query  string  true  "Equipo objetivo"
// @Success      200  {object}  report.Report
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/team [get]
func (h *ReportHandler) GetTeamReport(c *fiber.Ctx) error {
	return h.buildReport(c, scopeTeam)
}

// GetDepartmentReport godoc
// @Summary      Reporte agregado usuario→proyecto de un departamento
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date     query  string  true  "Inicio del período (YYYY-MM-DD)"
// @Param        end_date       query  string  true  "Fin del período (YYYY-MM-DD), inclusivo"
// @Param        department_id  query  string  true  "Departamento objetivo"
// @Success      200  {object}  report.Report
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/department [get]
func (h *ReportHandler) GetDepartmentReport(c *fiber.Ctx) error {
	return h.buildReport(c, scopeDepartment)
}

// GetProjectReport godoc
// @Summary      Reporte agregado por usuario de un proyecto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  true  "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  true  "Fin del período (YYYY-MM-DD), inclusivo"
// @Param        project_id  query  string  true  "Proyecto objetivo"
// @Success      200  {object}  report.Report
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/project [get]
func (h *ReportHandler) GetProjectReport(c *fiber.Ctx) error {
	return h.buildReport(c, scopeProject)
}

func (h *ReportHandler) buildReport(c *fiber.Ctx, pick scopePicker) error {
	var req dto.ReportQuery
	if !h.parseQuery(c, &req) {
		return nil
	}
	requested, ok := pick(c, req)
	if !ok {
		return nil
	}
	period, err := reporting.ParsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return domainError(c, err)
	}
	out, err := h.uc.BuildReport(c.Context(), callerFromCtx(c), requested, period)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ── Exportación ───────────────────────────────────────────────────────────────

// ExportTimesheet godoc
// @Summary      Exporta el timesheet plano (csv por defecto, xlsx o pdf)
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Param        start_date  query  string  true   "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  true   "Fin del período (YYYY-MM-DD), inclusivo"
// @Param        user_id     query  string  false  "Usuario objetivo. Default: el del token."
// @Param        format      query  string  false  "csv (default), xlsx o pdf"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/export/timesheet [get]
func (h *ReportHandler) ExportTimesheet(c *fiber.Ctx) error {
	var req dto.ReportQuery
	if !h.parseQuery(c, &req) {
		return nil
	}
	period, err := reporting.ParsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return domainError(c, err)
	}
	data, format, err := h.exporter.ExportTimesheet(c.Context(), callerFromCtx(c), req.UserID, period, req.Format)
	if err != nil {
		return domainError(c, err)
	}
	return sendAttachment(c, data, format, "timesheet", req)
}

// ExportTeamReport godoc
// @Summary      Exporta el reporte de equipo (csv por defecto, xlsx o pdf)
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Router       /api/reports/export/team [get]
func (h *ReportHandler) ExportTeamReport(c *fiber.Ctx) error {
	return h.exportReport(c, scopeTeam, "team_report")
}

// ExportDepartmentReport godoc
// @Summary      Exporta el reporte de departamento (csv por defecto, xlsx o pdf)
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Router       /api/reports/export/department [get]
func (h *ReportHandler) ExportDepartmentReport(c *fiber.Ctx) error {
	return h.exportReport(c, scopeDepartment, "department_report")
}

// ExportProjectReport godoc
// @Summary      Exporta el reporte de proyecto (csv por defecto, xlsx o pdf)
// @Tags         reports
// @Security     Bearer
// @Produce      octet-stream
// @Router       /api/reports/export/project [get]
func (h *ReportHandler) ExportProjectReport(c *fiber.Ctx) error {
	return h.exportReport(c, scopeProject, "project_report")
}

func (h *ReportHandler) exportReport(c *fiber.Ctx, pick scopePicker, basename string) error {
	var req dto.ReportQuery
	if !h.parseQuery(c, &req) {
		return nil
	}
	requested, ok := pick(c, req)
	if !ok {
		return nil
	}
	period, err := reporting.ParsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return domainError(c, err)
	}
	data, format, err := h.exporter.ExportReport(c.Context(), callerFromCtx(c), requested, period, req.Format)
	if err != nil {
		return domainError(c, err)
	}
	return sendAttachment(c, data, format, basename, req)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// scopePicker traduce los query params al scope pedido de la ruta. Devuelve
// false si el target obligatorio falta (ya respondió 400).
type scopePicker func(c *fiber.Ctx, req dto.ReportQuery) (report.Scope, bool)

func scopeTeam(c *fiber.Ctx, req dto.ReportQuery) (report.Scope, bool) {
	if req.TeamID == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "team_id es requerido"})
		return report.Scope{}, false
	}
	return report.Scope{Kind: report.ScopeTeam, TargetID: req.TeamID}, true
}

func scopeDepartment(c *fiber.Ctx, req dto.ReportQuery) (report.Scope, bool) {
	if req.DeptID == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "department_id es requerido"})
		return report.Scope{}, false
	}
	return report.Scope{Kind: report.ScopeDepartment, TargetID: req.DeptID}, true
}

func scopeProject(c *fiber.Ctx, req dto.ReportQuery) (report.Scope, bool) {
	if req.ProjectID == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "project_id es requerido"})
		return report.Scope{}, false
	}
	return report.Scope{Kind: report.ScopeProject, TargetID: req.ProjectID}, true
}

func sendAttachment(c *fiber.Ctx, data []byte, format reporting.ExportFormat, basename string, req dto.ReportQuery) error {
	filename := fmt.Sprintf("%s_%s_%s.%s", basename, req.StartDate, req.EndDate, format)
	c.Set(fiber.HeaderContentType, format.ContentType())
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
