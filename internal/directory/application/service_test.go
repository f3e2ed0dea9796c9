package application

import (
	"context"
	"errors"
	"testing"

	"github.com/studyabroadscholarships/interest-api/internal/directory/domain"
)

type fakeContactRepo struct {
	districtErr error
	districts   []*domain.ContactsForDistrict
	countries   []*domain.ContactsForCountry
}

func (f *fakeContactRepo) CreateDistrictContacts(_ context.Context, contacts *domain.ContactsForDistrict) error {
	if f.districtErr != nil {
		return f.districtErr
	}
	contacts.ID = "generated-id"
	f.districts = append(f.districts, contacts)
	return nil
}

func (f *fakeContactRepo) CreateCountryContacts(_ context.Context, contacts *domain.ContactsForCountry) error {
	contacts.ID = "generated-id"
	f.countries = append(f.countries, contacts)
	return nil
}

func (f *fakeContactRepo) LatestDistrictContacts(_ context.Context, district string) (*domain.ContactsForDistrict, error) {
	for i := len(f.districts) - 1; i >= 0; i-- {
		if f.districts[i].District == district {
			return f.districts[i], nil
		}
	}
	return nil, nil
}

func (f *fakeContactRepo) DistrictsByZip(_ context.Context, zip string) ([]string, error) {
	var matches []string
	for _, contacts := range f.districts {
		for _, code := range contacts.ZipCodes {
			if code == zip {
				matches = append(matches, contacts.District)
				break
			}
		}
	}
	return matches, nil
}

func TestCreateDistrictContactsAssignsIdentity(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)

	created, err := svc.CreateDistrictContacts(context.Background(), []UpsertDistrictContactsCommand{
		{Country: "usa", District: "5370", EmailAddresses: []string{"rep@example.org"}, ZipCodes: []string{"12345"}},
	})
	if err != nil {
		t.Fatalf("CreateDistrictContacts: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("created = %d, want 1", len(created))
	}
	if created[0].ID != "generated-id" {
		t.Errorf("the store-assigned id must be reflected back, got %q", created[0].ID)
	}
}

func TestCreateDistrictContactsStopsOnError(t *testing.T) {
	repo := &fakeContactRepo{districtErr: errors.New("mongo: write failed")}
	svc := NewContactService(repo)

	_, err := svc.CreateDistrictContacts(context.Background(), []UpsertDistrictContactsCommand{
		{Country: "usa", District: "5370"},
	})
	if err == nil {
		t.Fatal("expected repository error to propagate")
	}
}

func TestCreateCountryContactsKeepsCertificationFlag(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)

	created, err := svc.CreateCountryContacts(context.Background(), []UpsertCountryContactsCommand{
		{Country: "germany", EmailAddresses: []string{"de@example.org"}, IsCertified: true},
		{Country: "france", EmailAddresses: []string{"fr@example.org"}, IsCertified: false},
	})
	if err != nil {
		t.Fatalf("CreateCountryContacts: %v", err)
	}
	if !created[0].IsCertified || created[1].IsCertified {
		t.Errorf("certification flags lost: %+v", created)
	}
}

func TestLatestDistrictContactsReturnsMostRecent(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo)

	cmds := []UpsertDistrictContactsCommand{
		{Country: "usa", District: "5370", EmailAddresses: []string{"old@example.org"}},
		{Country: "usa", District: "5370", EmailAddresses: []string{"new@example.org"}},
	}
	if _, err := svc.CreateDistrictContacts(context.Background(), cmds); err != nil {
		t.Fatal(err)
	}

	latest, err := svc.LatestDistrictContacts(context.Background(), "5370")
	if err != nil {
		t.Fatal(err)
	}
	if latest == nil || latest.EmailAddresses[0] != "new@example.org" {
		t.Errorf("latest = %+v, want the most recent version", latest)
	}
}

func TestLatestDistrictContactsNotFound(t *testing.T) {
	svc := NewContactService(&fakeContactRepo{})

	latest, err := svc.LatestDistrictContacts(context.Background(), "9999")
	if err != nil {
		t.Fatal(err)
	}
	if latest != nil {
		t.Errorf("unknown district must yield nil, got %+v", latest)
	}
}
