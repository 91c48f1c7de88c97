package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devsolutions/intake-api/internal/core/domain"
)

// collectionClients mirrors the table name used by the original site.
const collectionClients = "clients"

type SubmissionRepository struct {
	col *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{col: db.Collection(collectionClients)}
}

// mongoSubmission is the persistence shape; kept separate from the domain
// type so the stored document is not coupled to JSON contract changes.
type mongoSubmission struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty"`
	FullName               string             `bson:"full_name"`
	Email                  string             `bson:"email"`
	Phone                  string             `bson:"phone,omitempty"`
	CompanyName            string             `bson:"company_name,omitempty"`
	ProjectTitle           string             `bson:"project_title"`
	ProjectDescription     string             `bson:"project_description"`
	Domain                 []string           `bson:"domain"`
	BudgetRange            string             `bson:"budget_range,omitempty"`
	Timeline               string             `bson:"timeline,omitempty"`
	AdditionalRequirements string             `bson:"additional_requirements,omitempty"`
	Status                 string             `bson:"status"`
	AdminNotes             *string            `bson:"admin_notes,omitempty"`
	IdempotencyKey         string             `bson:"idempotency_key,omitempty"`
	CreatedAt              time.Time          `bson:"created_at"`
	UpdatedAt              time.Time          `bson:"updated_at"`
}

func toDoc(s *domain.Submission) mongoSubmission {
	return mongoSubmission{
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
		IdempotencyKey:         s.IdempotencyKey,
		CreatedAt:              s.CreatedAt.UTC(),
		UpdatedAt:              s.UpdatedAt.UTC(),
	}
}

func (d mongoSubmission) toDomain() *domain.Submission {
	return &domain.Submission{
		ID:                     d.ID.Hex(),
		FullName:               d.FullName,
		Email:                  d.Email,
		Phone:                  d.Phone,
		CompanyName:            d.CompanyName,
		ProjectTitle:           d.ProjectTitle,
		ProjectDescription:     d.ProjectDescription,
		Domain:                 d.Domain,
		BudgetRange:            d.BudgetRange,
		Timeline:               d.Timeline,
		AdditionalRequirements: d.AdditionalRequirements,
		Status:                 domain.Status(d.Status),
		AdminNotes:             d.AdminNotes,
		IdempotencyKey:         d.IdempotencyKey,
		CreatedAt:              d.CreatedAt.UTC(),
		UpdatedAt:              d.UpdatedAt.UTC(),
	}
}

// Create inserts a new submission document and returns it with the
// store-assigned identifier.
func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission) (*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toDoc(s))
	if err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert submission: unexpected inserted id type %T", res.InsertedID)
	}

	created := *s
	created.ID = id.Hex()
	return &created, nil
}

// FindByID retrieves one submission. A malformed identifier is reported as
// not found rather than an internal error.
func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (*domain.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSubmissionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoSubmission
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return doc.toDomain(), nil
}

// FindByIdempotencyKey retrieves a submission previously created with the given key.
func (r *SubmissionRepository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoSubmission
	if err := r.col.FindOne(ctx, bson.M{"idempotency_key": key}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("find submission by idempotency key: %w", err)
	}
	return doc.toDomain(), nil
}

// ListAll returns every submission ordered by created_at descending.
func (r *SubmissionRepository) ListAll(ctx context.Context) ([]*domain.Submission, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Submission
	for cur.Next(ctx) {
		var doc mongoSubmission
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode submission: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return out, nil
}

// UpdateReview sets status and admin_notes on one submission and bumps
// updated_at. A nil notes pointer removes the field so cleared notes are
// stored as absent, not as an empty string.
func (r *SubmissionRepository) UpdateReview(ctx context.Context, id string, status domain.Status, notes *string) (*domain.Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSubmissionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}
	update := bson.M{"$set": set}
	if notes != nil {
		set["admin_notes"] = *notes
	} else {
		update["$unset"] = bson.M{"admin_notes": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc mongoSubmission
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("update review: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the indexes the repository's queries rely on.
func (r *SubmissionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "idempotency_key", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
