package ports

import (
	"context"
	"time"

	"github.com/devsolutions/intake-api/internal/core/domain"
)

// CreateSubmissionInput carries all data needed to create a new submission.
type CreateSubmissionInput struct {
	FullName               string
	Email                  string
	Phone                  string
	CompanyName            string
	ProjectTitle           string
	ProjectDescription     string
	Domain                 []string
	BudgetRange            string
	Timeline               string
	AdditionalRequirements string
	IdempotencyKey         string
}

// SubmissionResult is returned by the service after creating a submission.
type SubmissionResult struct {
	ID        string
	Status    string
	CreatedAt time.Time
	// AlreadyExisted is true when the Idempotency-Key matched an existing submission.
	AlreadyExisted bool
}

// DashboardStats are the aggregates shown above the admin listing. All
// counts are computed over the full fetched snapshot, never the filtered
// view.
type DashboardStats struct {
	Total      int
	New        int
	InProgress int
	Completed  int
	// ByStatus holds one count per defined status (filter button badges).
	ByStatus map[domain.Status]int
}

// ListSubmissionsResult is returned by List.
type ListSubmissionsResult struct {
	Items []*domain.Submission
	Stats DashboardStats
}

// ReviewInput carries the two admin-editable fields of a submission.
type ReviewInput struct {
	Status string
	// AdminNotes empty means "clear the notes" — stored as absent, not "".
	AdminNotes string
}

// SubmissionService defines use-case operations for the submission lifecycle.
type SubmissionService interface {
	Create(ctx context.Context, input CreateSubmissionInput) (*SubmissionResult, error)

	// List fetches every submission once and computes dashboard aggregates.
	// statusFilter narrows Items in memory; "" or "all" is a pass-through.
	// Stats always reflect the unfiltered set.
	List(ctx context.Context, statusFilter string) (*ListSubmissionsResult, error)

	Get(ctx context.Context, id string) (*domain.Submission, error)

	// SaveReview persists a status/notes change on one submission.
	SaveReview(ctx context.Context, id string, input ReviewInput) (*domain.Submission, error)
}
