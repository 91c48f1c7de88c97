package ports

import (
	"context"

	"github.com/devsolutions/intake-api/internal/core/domain"
)

// SubmissionRepository defines persistence operations for submissions.
//
// Create and UpdateReview are the only mutations the system performs;
// there is no deletion path.
type SubmissionRepository interface {
	// Create inserts a new submission and returns it with its
	// store-assigned ID and timestamps.
	Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error)

	FindByID(ctx context.Context, id string) (*domain.Submission, error)

	// FindByIdempotencyKey retrieves a submission previously created with
	// the given key, or domain.ErrSubmissionNotFound.
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Submission, error)

	// ListAll returns every submission ordered by created_at descending.
	ListAll(ctx context.Context) ([]*domain.Submission, error)

	// UpdateReview sets status and admin_notes on one submission and bumps
	// updated_at. A nil notes pointer clears the field. Returns the updated
	// record.
	UpdateReview(ctx context.Context, id string, status domain.Status, notes *string) (*domain.Submission, error)
}
