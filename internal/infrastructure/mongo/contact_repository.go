package mongo

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studyabroadscholarships/interest-api/internal/directory/domain"
)

// ContactRepository handles the append-only contact directory for
// districts and countries. Reads follow a most-recent-wins policy over
// the stored versions.
type ContactRepository struct {
	districts *mongo.Collection
	countries *mongo.Collection
}

// NewContactRepository binds the district and country contact
// collections.
func NewContactRepository(db *mongo.Database, districtCollection, countryCollection string) *ContactRepository {
	return &ContactRepository{
		districts: db.Collection(districtCollection),
		countries: db.Collection(countryCollection),
	}
}

// CreateDistrictContacts appends a new version of a district's contact
// list and reflects the assigned id back onto the domain record.
func (r *ContactRepository) CreateDistrictContacts(ctx context.Context, contacts *domain.ContactsForDistrict) error {
	doc := DistrictContactsDocument{
		ID:             uuid.NewString(),
		Country:        contacts.Country,
		District:       contacts.District,
		EmailAddresses: contacts.EmailAddresses,
		ZipCodes:       contacts.ZipCodes,
		CreatedAt:      time.Now().UTC(),
	}
	if _, err := r.districts.InsertOne(ctx, doc); err != nil {
		return err
	}
	contacts.ID = doc.ID
	contacts.CreatedAt = doc.CreatedAt
	return nil
}

// CreateCountryContacts appends a new version of a country's contact
// list.
func (r *ContactRepository) CreateCountryContacts(ctx context.Context, contacts *domain.ContactsForCountry) error {
	doc := CountryContactsDocument{
		ID:             uuid.NewString(),
		Country:        contacts.Country,
		EmailAddresses: contacts.EmailAddresses,
		IsCertified:    contacts.IsCertified,
		CreatedAt:      time.Now().UTC(),
	}
	if _, err := r.countries.InsertOne(ctx, doc); err != nil {
		return err
	}
	contacts.ID = doc.ID
	contacts.CreatedAt = doc.CreatedAt
	return nil
}

// LatestDistrictContacts returns the most recently written version for
// the district, or nil when no version exists. A found record with an
// empty address list is a valid outcome, not "not found".
func (r *ContactRepository) LatestDistrictContacts(ctx context.Context, district string) (*domain.ContactsForDistrict, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var doc DistrictContactsDocument
	err := r.districts.FindOne(ctx, bson.M{"district": district}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.ContactsForDistrict{
		ID:             doc.ID,
		Country:        doc.Country,
		District:       doc.District,
		EmailAddresses: doc.EmailAddresses,
		ZipCodes:       doc.ZipCodes,
		CreatedAt:      doc.CreatedAt,
	}, nil
}

// LatestCountryContacts returns the most recently written version for
// the country, or nil when no version exists.
func (r *ContactRepository) LatestCountryContacts(ctx context.Context, country string) (*domain.ContactsForCountry, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var doc CountryContactsDocument
	err := r.countries.FindOne(ctx, bson.M{"country": country}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.ContactsForCountry{
		ID:             doc.ID,
		Country:        doc.Country,
		EmailAddresses: doc.EmailAddresses,
		IsCertified:    doc.IsCertified,
		CreatedAt:      doc.CreatedAt,
	}, nil
}

// DistrictsByZip returns the distinct district ids whose zip-code sets
// contain the given code, sorted for stable output.
func (r *ContactRepository) DistrictsByZip(ctx context.Context, zip string) ([]string, error) {
	values, err := r.districts.Distinct(ctx, "district", bson.M{"zipCodes": zip})
	if err != nil {
		return nil, err
	}
	districts := make([]string, 0, len(values))
	for _, value := range values {
		if district, ok := value.(string); ok {
			districts = append(districts, district)
		}
	}
	sort.Strings(districts)
	return districts, nil
}
