package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/devsolutions/intake-api/internal/core/domain"
	"github.com/devsolutions/intake-api/internal/core/ports"
)

type SubmissionService struct {
	repo   ports.SubmissionRepository
	logger zerolog.Logger
}

func NewSubmissionService(repo ports.SubmissionRepository, logger zerolog.Logger) *SubmissionService {
	return &SubmissionService{repo: repo, logger: logger}
}

// Create validates and persists a new intake submission with status "new".
// An empty domain selection fails before the store is contacted. If an
// idempotency key is provided and already seen, the previously created
// submission is returned without side effects.
func (s *SubmissionService) Create(ctx context.Context, input ports.CreateSubmissionInput) (*ports.SubmissionResult, error) {
	if len(input.Domain) == 0 {
		return nil, domain.ErrEmptyDomain
	}

	if input.IdempotencyKey != "" {
		existing, err := s.repo.FindByIdempotencyKey(ctx, input.IdempotencyKey)
		if err == nil && existing != nil {
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("submission_id", existing.ID).Msg("idempotent replay")
			return &ports.SubmissionResult{
				ID:             existing.ID,
				Status:         string(existing.Status),
				CreatedAt:      existing.CreatedAt,
				AlreadyExisted: true,
			}, nil
		}
	}

	now := time.Now().UTC()
	sub := &domain.Submission{
		FullName:               input.FullName,
		Email:                  input.Email,
		Phone:                  input.Phone,
		CompanyName:            input.CompanyName,
		ProjectTitle:           input.ProjectTitle,
		ProjectDescription:     input.ProjectDescription,
		Domain:                 input.Domain,
		BudgetRange:            input.BudgetRange,
		Timeline:               input.Timeline,
		AdditionalRequirements: input.AdditionalRequirements,
		Status:                 domain.StatusNew,
		IdempotencyKey:         input.IdempotencyKey,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	created, err := s.repo.Create(ctx, sub)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create submission")
		return nil, err
	}

	s.logger.Info().Str("submission_id", created.ID).Str("project_title", created.ProjectTitle).Msg("submission created")

	return &ports.SubmissionResult{
		ID:        created.ID,
		Status:    string(created.Status),
		CreatedAt: created.CreatedAt,
	}, nil
}

// List fetches every submission once (newest first) and computes the
// dashboard aggregates over the full snapshot. The optional status filter
// is applied in memory afterwards, so Stats never change with the filter.
func (s *SubmissionService) List(ctx context.Context, statusFilter string) (*ports.ListSubmissionsResult, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list submissions")
		return nil, err
	}

	return &ports.ListSubmissionsResult{
		Items: FilterByStatus(items, statusFilter),
		Stats: computeStats(items),
	}, nil
}

// Get returns one submission by ID.
func (s *SubmissionService) Get(ctx context.Context, id string) (*domain.Submission, error) {
	return s.repo.FindByID(ctx, id)
}

// SaveReview persists the admin-editable fields on one submission. Empty
// notes are stored as absent rather than an empty string.
func (s *SubmissionService) SaveReview(ctx context.Context, id string, input ports.ReviewInput) (*domain.Submission, error) {
	status := domain.Status(input.Status)
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	var notes *string
	if input.AdminNotes != "" {
		notes = &input.AdminNotes
	}

	updated, err := s.repo.UpdateReview(ctx, id, status, notes)
	if err != nil {
		s.logger.Error().Err(err).Str("submission_id", id).Msg("failed to save review")
		return nil, err
	}

	s.logger.Info().Str("submission_id", id).Str("status", input.Status).Msg("review saved")
	return updated, nil
}

// FilterByStatus narrows an already-fetched snapshot by exact status match.
// "" and "all" pass the snapshot through unchanged. It never re-queries.
func FilterByStatus(items []*domain.Submission, status string) []*domain.Submission {
	if status == "" || status == "all" {
		return items
	}
	out := make([]*domain.Submission, 0, len(items))
	for _, item := range items {
		if string(item.Status) == status {
			out = append(out, item)
		}
	}
	return out
}

func computeStats(items []*domain.Submission) ports.DashboardStats {
	byStatus := make(map[domain.Status]int, len(domain.AllStatuses))
	for _, st := range domain.AllStatuses {
		byStatus[st] = 0
	}

	stats := ports.DashboardStats{Total: len(items), ByStatus: byStatus}
	for _, item := range items {
		byStatus[item.Status]++
		switch {
		case item.Status == domain.StatusNew:
			stats.New++
		case item.Status.InProgress():
			stats.InProgress++
		case item.Status == domain.StatusCompleted:
			stats.Completed++
		}
	}
	return stats
}
