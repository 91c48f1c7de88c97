package ports

import (
	"context"

	"github.com/devsolutions/intake-api/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// AdminProfileRepository looks up the row that authorizes a user for the
// admin area. Profiles are provisioned by the startup bootstrap, never
// through the API.
type AdminProfileRepository interface {
	// FindByUserID returns the profile for the given user identifier, or
	// domain.ErrNotAdmin when none exists.
	FindByUserID(ctx context.Context, userID string) (*domain.AdminProfile, error)

	// Upsert creates or refreshes a profile. Used only by the startup
	// bootstrap that syncs the configured admin account.
	Upsert(ctx context.Context, profile *domain.AdminProfile) error
}
