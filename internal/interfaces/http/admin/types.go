package admin

import (
	"time"

	directoryapp "github.com/studyabroadscholarships/interest-api/internal/directory/application"
	"github.com/studyabroadscholarships/interest-api/internal/directory/domain"
)

// districtContactsPayload is one district contact version in a create
// request.
type districtContactsPayload struct {
	Country        string   `json:"country"`
	District       string   `json:"district"`
	EmailAddresses []string `json:"emailAddresses"`
	ZipCodes       []string `json:"zipCodes"`
}

// countryContactsPayload is one country contact version in a create
// request.
type countryContactsPayload struct {
	Country        string   `json:"country"`
	EmailAddresses []string `json:"emailAddresses"`
	IsCertified    bool     `json:"isCertified"`
}

type districtContactsResponse struct {
	ID             string    `json:"id"`
	Country        string    `json:"country"`
	District       string    `json:"district"`
	EmailAddresses []string  `json:"emailAddresses"`
	ZipCodes       []string  `json:"zipCodes"`
	CreatedAt      time.Time `json:"createdAt"`
}

type countryContactsResponse struct {
	ID             string    `json:"id"`
	Country        string    `json:"country"`
	EmailAddresses []string  `json:"emailAddresses"`
	IsCertified    bool      `json:"isCertified"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (p districtContactsPayload) toCommand() directoryapp.UpsertDistrictContactsCommand {
	return directoryapp.UpsertDistrictContactsCommand{
		Country:        p.Country,
		District:       p.District,
		EmailAddresses: p.EmailAddresses,
		ZipCodes:       p.ZipCodes,
	}
}

func (p countryContactsPayload) toCommand() directoryapp.UpsertCountryContactsCommand {
	return directoryapp.UpsertCountryContactsCommand{
		Country:        p.Country,
		EmailAddresses: p.EmailAddresses,
		IsCertified:    p.IsCertified,
	}
}

func toDistrictCommands(payloads []districtContactsPayload) []directoryapp.UpsertDistrictContactsCommand {
	cmds := make([]directoryapp.UpsertDistrictContactsCommand, 0, len(payloads))
	for _, payload := range payloads {
		cmds = append(cmds, payload.toCommand())
	}
	return cmds
}

func toCountryCommands(payloads []countryContactsPayload) []directoryapp.UpsertCountryContactsCommand {
	cmds := make([]directoryapp.UpsertCountryContactsCommand, 0, len(payloads))
	for _, payload := range payloads {
		cmds = append(cmds, payload.toCommand())
	}
	return cmds
}

func buildDistrictContactsResponse(contacts domain.ContactsForDistrict) districtContactsResponse {
	return districtContactsResponse{
		ID:             contacts.ID,
		Country:        contacts.Country,
		District:       contacts.District,
		EmailAddresses: contacts.EmailAddresses,
		ZipCodes:       contacts.ZipCodes,
		CreatedAt:      contacts.CreatedAt,
	}
}

func buildCountryContactsResponse(contacts domain.ContactsForCountry) countryContactsResponse {
	return countryContactsResponse{
		ID:             contacts.ID,
		Country:        contacts.Country,
		EmailAddresses: contacts.EmailAddresses,
		IsCertified:    contacts.IsCertified,
		CreatedAt:      contacts.CreatedAt,
	}
}
