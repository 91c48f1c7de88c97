package handler

import (
	"github.com/devsolutions/intake-api/internal/core/domain"
	"github.com/devsolutions/intake-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createSubmissionRequest, idempotencyKey string) ports.CreateSubmissionInput {
	return ports.CreateSubmissionInput{
		FullName:               req.FullName,
		Email:                  req.Email,
		Phone:                  req.Phone,
		CompanyName:            req.CompanyName,
		ProjectTitle:           req.ProjectTitle,
		ProjectDescription:     req.ProjectDescription,
		Domain:                 req.Domain,
		BudgetRange:            req.BudgetRange,
		Timeline:               req.Timeline,
		AdditionalRequirements: req.AdditionalRequirements,
		IdempotencyKey:         idempotencyKey,
	}
}

// --- Service result → HTTP response ---

func toCreateResponse(r *ports.SubmissionResult) createSubmissionResponse {
	return createSubmissionResponse{
		ID:        r.ID,
		Status:    r.Status,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	return submissionResponse{
		ID:                     s.ID,
		FullName:               s.FullName,
		Email:                  s.Email,
		Phone:                  s.Phone,
		CompanyName:            s.CompanyName,
		ProjectTitle:           s.ProjectTitle,
		ProjectDescription:     s.ProjectDescription,
		Domain:                 s.Domain,
		BudgetRange:            s.BudgetRange,
		Timeline:               s.Timeline,
		AdditionalRequirements: s.AdditionalRequirements,
		Status:                 string(s.Status),
		AdminNotes:             s.AdminNotes,
		CreatedAt:              s.CreatedAt.UTC(),
		UpdatedAt:              s.UpdatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListSubmissionsResult) listSubmissionsResponse {
	items := make([]submissionResponse, len(r.Items))
	for i, s := range r.Items {
		items[i] = toSubmissionResponse(s)
	}

	byStatus := make(map[string]int, len(r.Stats.ByStatus))
	for st, n := range r.Stats.ByStatus {
		byStatus[string(st)] = n
	}

	return listSubmissionsResponse{
		Data: items,
		Stats: statsResponse{
			Total:      r.Stats.Total,
			New:        r.Stats.New,
			InProgress: r.Stats.InProgress,
			Completed:  r.Stats.Completed,
			ByStatus:   byStatus,
		},
	}
}

func toProfileResponse(p *domain.AdminProfile) adminProfileResponse {
	return adminProfileResponse{
		ID:       p.ID,
		Email:    p.Email,
		FullName: p.FullName,
		Role:     p.Role,
	}
}
