package domain

import (
	"errors"
	"time"
)

// Status represents the review lifecycle state of a submission.
type Status string

const (
	StatusNew           Status = "new"
	StatusContacted     Status = "contacted"
	StatusPOCInProgress Status = "poc-in-progress"
	StatusPOCDelivered  Status = "poc-delivered"
	StatusAccepted      Status = "accepted"
	StatusCompleted     Status = "completed"
	StatusRejected      Status = "rejected"
)

// AllStatuses lists every status in display order.
var AllStatuses = []Status{
	StatusNew,
	StatusContacted,
	StatusPOCInProgress,
	StatusPOCDelivered,
	StatusAccepted,
	StatusCompleted,
	StatusRejected,
}

var ErrSubmissionNotFound = errors.New("submission not found")
var ErrEmptyDomain = errors.New("at least one domain must be selected")
var ErrInvalidStatus = errors.New("invalid submission status")

// Valid reports whether s is one of the seven defined statuses.
// The status set is flat: any status may move to any other, so membership
// is the only check performed before persisting a review.
func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// InProgress reports whether s counts towards the dashboard's
// "in progress" aggregate.
func (s Status) InProgress() bool {
	return s == StatusContacted || s == StatusPOCInProgress || s == StatusPOCDelivered
}

// Submission is the core aggregate root: one prospective client's
// project-intake record.
type Submission struct {
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
	Status                 Status    `json:"status"`
	AdminNotes             *string   `json:"admin_notes,omitempty"`
	IdempotencyKey         string    `json:"-"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// DomainOption is one selectable category on the intake form.
type DomainOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DomainOptions are the category tags offered by the intake form.
var DomainOptions = []DomainOption{
	{ID: "frontend", Label: "Frontend Development"},
	{ID: "backend", Label: "Backend Development"},
	{ID: "fullstack", Label: "Full Stack Development"},
	{ID: "ai", Label: "AI Integration"},
	{ID: "mobile", Label: "Mobile Development"},
	{ID: "devops", Label: "DevOps & Cloud"},
	{ID: "other", Label: "Other"},
}

// BudgetRanges are the fixed display values for the optional budget field.
// They are stored verbatim as plain text.
var BudgetRanges = []string{
	"Under $5,000",
	"$5,000 - $10,000",
	"$10,000 - $25,000",
	"$25,000 - $50,000",
	"$50,000+",
	"Not sure yet",
}

// TimelineOptions are the fixed display values for the optional timeline field.
var TimelineOptions = []string{
	"ASAP (1-2 weeks)",
	"1 Month",
	"2-3 Months",
	"3-6 Months",
	"6+ Months",
	"Flexible",
}
