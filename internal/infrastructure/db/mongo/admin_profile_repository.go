package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devsolutions/intake-api/internal/core/domain"
)

const adminProfilesCollection = "admin_profiles"

// AdminProfileRepository reads the rows that authorize users for the admin
// area. The profile ID is the backing user's identifier, mirroring the
// original admin_profiles table keyed by the auth provider's user ID.
type AdminProfileRepository struct {
	coll *mongo.Collection
}

func NewAdminProfileRepository(db *mongo.Database) *AdminProfileRepository {
	return &AdminProfileRepository{coll: db.Collection(adminProfilesCollection)}
}

type mongoAdminProfile struct {
	ID       string `bson:"_id"`
	Email    string `bson:"email"`
	FullName string `bson:"full_name,omitempty"`
	Role     string `bson:"role"`
}

// FindByUserID returns the profile for the given user identifier. A missing
// row means the user is authenticated but not authorized: ErrNotAdmin.
func (r *AdminProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.AdminProfile, error) {
	var doc mongoAdminProfile
	if err := r.coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotAdmin
		}
		return nil, fmt.Errorf("find admin profile: %w", err)
	}

	return &domain.AdminProfile{
		ID:       doc.ID,
		Email:    doc.Email,
		FullName: doc.FullName,
		Role:     doc.Role,
	}, nil
}

// Upsert creates or refreshes a profile row. Only the startup bootstrap
// calls this.
func (r *AdminProfileRepository) Upsert(ctx context.Context, profile *domain.AdminProfile) error {
	doc := mongoAdminProfile{
		ID:       profile.ID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Role:     profile.Role,
	}

	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": profile.ID},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert admin profile: %w", err)
	}
	return nil
}
