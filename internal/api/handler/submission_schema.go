package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// createSubmissionRequest is the public intake form payload. Validation
// mirrors the form's native constraints: required-field presence, the email
// input's format check, and a non-empty domain selection. Budget and
// timeline come from fixed display lists but are stored as plain text, so
// their values are not re-validated here.
type createSubmissionRequest struct {
	FullName               string   `json:"full_name"               validate:"required"`
	Email                  string   `json:"email"                   validate:"required,email"`
	Phone                  string   `json:"phone"`
	CompanyName            string   `json:"company_name"`
	ProjectTitle           string   `json:"project_title"           validate:"required"`
	ProjectDescription     string   `json:"project_description"     validate:"required"`
	Domain                 []string `json:"domain"                  validate:"required,min=1,dive,required"`
	BudgetRange            string   `json:"budget_range"`
	Timeline               string   `json:"timeline"`
	AdditionalRequirements string   `json:"additional_requirements"`
}

// updateReviewRequest carries the two admin-editable fields. Empty notes
// clear the stored value.
type updateReviewRequest struct {
	Status     string `json:"status"      validate:"required,oneof=new contacted poc-in-progress poc-delivered accepted completed rejected"`
	AdminNotes string `json:"admin_notes"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type createSubmissionResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type submissionResponse struct {
	ID                     string    `json:"id"`
	FullName               string    `json:"full_name"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"phone,omitempty"`
	CompanyName            string    `json:"company_name,omitempty"`
	ProjectTitle           string    `json:"project_title"`
	ProjectDescription     string    `json:"project_description"`
	Domain                 []string  `json:"domain"`
	BudgetRange            string    `json:"budget_range,omitempty"`
	Timeline               string    `json:"timeline,omitempty"`
	AdditionalRequirements string    `json:"additional_requirements,omitempty"`
	Status                 string    `json:"status"`
	AdminNotes             *string   `json:"admin_notes"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// statsResponse carries the dashboard aggregates. Always computed over the
// full snapshot regardless of the active filter.
type statsResponse struct {
	Total      int            `json:"total"`
	New        int            `json:"new"`
	InProgress int            `json:"in_progress"`
	Completed  int            `json:"completed"`
	ByStatus   map[string]int `json:"by_status"`
}

type listSubmissionsResponse struct {
	Data  []submissionResponse `json:"data"`
	Stats statsResponse        `json:"stats"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type adminProfileResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expires_at"`
	Profile   adminProfileResponse `json:"profile"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Intake options ---

type domainOptionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type intakeOptionsResponse struct {
	Domains      []domainOptionResponse `json:"domains"`
	BudgetRanges []string               `json:"budget_ranges"`
	Timelines    []string               `json:"timelines"`
	Statuses     []string               `json:"statuses"`
}
