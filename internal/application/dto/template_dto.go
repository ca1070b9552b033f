package dto

// CreateTemplateRequest cuerpo de POST /api/reports/templates.
type CreateTemplateRequest struct {
	Name          string `json:"name" validate:"required,max=120"`
	Description   string `json:"description"`
	Type          string `json:"type" validate:"required,oneof=timesheet team department project"`
	Configuration string `json:"configuration"`
}

// UpdateTemplateRequest cuerpo de PUT /api/reports/templates/:id.
type UpdateTemplateRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=120"`
	Description   *string `json:"description"`
	Type          *string `json:"type" validate:"omitempty,oneof=timesheet team department project"`
	Configuration *string `json:"configuration"`
}

// TemplateResponse plantilla de reporte serializada.
type TemplateResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	Configuration string `json:"configuration"`
	CreatedBy     string `json:"created_by"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// CreateSavedReportRequest cuerpo de POST /api/reports/saved.
type CreateSavedReportRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description"`
	TemplateID  string `json:"template_id" validate:"omitempty,uuid"`
	Parameters  string `json:"parameters"`
}

// UpdateSavedReportRequest cuerpo de PUT /api/reports/saved/:id.
type UpdateSavedReportRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=120"`
	Description *string `json:"description"`
	TemplateID  *string `json:"template_id" validate:"omitempty,uuid"`
	Parameters  *string `json:"parameters"`
}

// SavedReportResponse reporte guardado serializado.
type SavedReportResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TemplateID  string `json:"template_id,omitempty"`
	Parameters  string `json:"parameters"`
	UserID      string `json:"user_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
