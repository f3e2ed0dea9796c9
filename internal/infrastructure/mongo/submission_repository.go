package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studyabroadscholarships/interest-api/internal/interest/domain"
)

// SubmissionRepository persists interest-form submissions in MongoDB.
type SubmissionRepository struct {
	submissions *mongo.Collection
}

// NewSubmissionRepository binds the submission collection.
func NewSubmissionRepository(db *mongo.Database, collection string) *SubmissionRepository {
	return &SubmissionRepository{submissions: db.Collection(collection)}
}

// Create inserts a new submission record. The caller relies on the
// record being durable before any notification is attempted.
func (r *SubmissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	doc := mapSubmissionDocument(submission)
	doc.CreatedAt = time.Now().UTC()
	_, err := r.submissions.InsertOne(ctx, doc)
	return err
}

// Upsert replaces the stored record's fields with the submission's
// current state, preserving createdAt for records that already exist.
func (r *SubmissionRepository) Upsert(ctx context.Context, submission *domain.Submission) error {
	now := time.Now().UTC()
	set := bson.M{
		"interestOutbound":   submission.InterestOutbound,
		"interestHosting":    submission.InterestHosting,
		"question":           submission.Question,
		"name":               submission.Name,
		"age":                submission.Age,
		"gender":             submission.Gender,
		"email":              submission.Email,
		"phone":              submission.Phone,
		"countryOfResidence": submission.CountryOfResidence,
		"state":              submission.State,
		"city":               submission.City,
		"zipcode":            submission.Zipcode,
		"countryChoice1":     submission.CountryChoiceOne,
		"countryChoice2":     submission.CountryChoiceTwo,
		"countryChoice3":     submission.CountryChoiceThree,
		"countryChoice4":     submission.CountryChoiceFour,
		"errors":             submission.Errors,
		"updatedAt":          now,
	}
	_, err := r.submissions.UpdateOne(ctx,
		bson.M{"_id": submission.ID},
		bson.M{"$set": set, "$setOnInsert": bson.M{"createdAt": now}},
		options.Update().SetUpsert(true),
	)
	return err
}

func mapSubmissionDocument(submission *domain.Submission) SubmissionDocument {
	return SubmissionDocument{
		ID:                 submission.ID,
		InterestOutbound:   submission.InterestOutbound,
		InterestHosting:    submission.InterestHosting,
		Question:           submission.Question,
		Name:               submission.Name,
		Age:                submission.Age,
		Gender:             submission.Gender,
		Email:              submission.Email,
		Phone:              submission.Phone,
		CountryOfResidence: submission.CountryOfResidence,
		State:              submission.State,
		City:               submission.City,
		Zipcode:            submission.Zipcode,
		CountryChoiceOne:   submission.CountryChoiceOne,
		CountryChoiceTwo:   submission.CountryChoiceTwo,
		CountryChoiceThree: submission.CountryChoiceThree,
		CountryChoiceFour:  submission.CountryChoiceFour,
		Errors:             submission.Errors,
	}
}
