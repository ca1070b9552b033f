package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/timeflow-api/internal/application/auth"
	"github.com/jhoicas/timeflow-api/internal/application/reporting"
	"github.com/jhoicas/timeflow-api/internal/application/usecase"
	"github.com/jhoicas/timeflow-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReportUC   *reporting.UseCase
	Exporter   *reporting.Exporter
	TemplateUC *usecase.TemplateUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Reportes (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Exporter)
	reports.Get("/timesheet", reportHandler.GetTimesheet)
	reports.Get("/team", reportHandler.GetTeamReport)
	reports.Get("/department", reportHandler.GetDepartmentReport)
	reports.Get("/project", reportHandler.GetProjectReport)

	// Exportación (protegido)
	export := reports.Group("/export")
	export.Get("/timesheet", reportHandler.ExportTimesheet)
	export.Get("/team", reportHandler.ExportTeamReport)
	export.Get("/department", reportHandler.ExportDepartmentReport)
	export.Get("/project", reportHandler.ExportProjectReport)

	// Plantillas: lectura para cualquier autenticado, escritura solo
	// owner/manager.
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates := reports.Group("/templates")
	templates.Get("/", templateHandler.ListTemplates)
	templates.Get("/:id", templateHandler.GetTemplate)
	manage := RequireRole(entity.RoleOwner, entity.RoleManager)
	templates.Post("/", manage, templateHandler.CreateTemplate)
	templates.Put("/:id", manage, templateHandler.UpdateTemplate)
	templates.Delete("/:id", manage, templateHandler.DeleteTemplate)

	// Reportes guardados (protegido; propiedad verificada en el caso de uso)
	saved := reports.Group("/saved")
	saved.Post("/", templateHandler.CreateSavedReport)
	saved.Get("/", templateHandler.ListSavedReports)
	saved.Get("/:id", templateHandler.GetSavedReport)
	saved.Put("/:id", templateHandler.UpdateSavedReport)
	saved.Delete("/:id", templateHandler.DeleteSavedReport)
}
