package application

import (
	"context"

	"github.com/studyabroadscholarships/interest-api/internal/directory/domain"
)

// ContactRepository exposes maintenance operations on the contact
// directory. Writes append new versions; reads resolve the most recent
// version per target.
type ContactRepository interface {
	CreateDistrictContacts(ctx context.Context, contacts *domain.ContactsForDistrict) error
	CreateCountryContacts(ctx context.Context, contacts *domain.ContactsForCountry) error
	LatestDistrictContacts(ctx context.Context, district string) (*domain.ContactsForDistrict, error)
	DistrictsByZip(ctx context.Context, zip string) ([]string, error)
}

// UpsertDistrictContactsCommand contains inputs for one district
// contact version.
type UpsertDistrictContactsCommand struct {
	Country        string
	District       string
	EmailAddresses []string
	ZipCodes       []string
}

// UpsertCountryContactsCommand contains inputs for one country contact
// version.
type UpsertCountryContactsCommand struct {
	Country        string
	EmailAddresses []string
	IsCertified    bool
}

// ContactService describes contact-directory maintenance use-cases.
type ContactService interface {
	CreateDistrictContacts(ctx context.Context, cmds []UpsertDistrictContactsCommand) ([]domain.ContactsForDistrict, error)
	CreateCountryContacts(ctx context.Context, cmds []UpsertCountryContactsCommand) ([]domain.ContactsForCountry, error)
	LatestDistrictContacts(ctx context.Context, district string) (*domain.ContactsForDistrict, error)
	DistrictsByZip(ctx context.Context, zip string) ([]string, error)
}

// contactService implements ContactService.
type contactService struct {
	repo ContactRepository
}

func NewContactService(repo ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) CreateDistrictContacts(ctx context.Context, cmds []UpsertDistrictContactsCommand) ([]domain.ContactsForDistrict, error) {
	created := make([]domain.ContactsForDistrict, 0, len(cmds))
	for _, cmd := range cmds {
		contacts := &domain.ContactsForDistrict{
			Country:        cmd.Country,
			District:       cmd.District,
			EmailAddresses: append([]string{}, cmd.EmailAddresses...),
			ZipCodes:       append([]string{}, cmd.ZipCodes...),
		}
		if err := s.repo.CreateDistrictContacts(ctx, contacts); err != nil {
			return nil, err
		}
		created = append(created, *contacts)
	}
	return created, nil
}

func (s *contactService) CreateCountryContacts(ctx context.Context, cmds []UpsertCountryContactsCommand) ([]domain.ContactsForCountry, error) {
	created := make([]domain.ContactsForCountry, 0, len(cmds))
	for _, cmd := range cmds {
		contacts := &domain.ContactsForCountry{
			Country:        cmd.Country,
			EmailAddresses: append([]string{}, cmd.EmailAddresses...),
			IsCertified:    cmd.IsCertified,
		}
		if err := s.repo.CreateCountryContacts(ctx, contacts); err != nil {
			return nil, err
		}
		created = append(created, *contacts)
	}
	return created, nil
}

func (s *contactService) LatestDistrictContacts(ctx context.Context, district string) (*domain.ContactsForDistrict, error) {
	return s.repo.LatestDistrictContacts(ctx, district)
}

func (s *contactService) DistrictsByZip(ctx context.Context, zip string) ([]string, error) {
	return s.repo.DistrictsByZip(ctx, zip)
}
