package domain

import "time"

// ContactsForDistrict is one version of a district's representative
// contact list. Versions are append-only; readers take the most recent.
type ContactsForDistrict struct {
	ID             string
	Country        string
	District       string
	EmailAddresses []string
	ZipCodes       []string
	CreatedAt      time.Time
}

// ContactsForCountry is one version of a country's representative
// contact list. IsCertified=false means the country accepts no routing
// and every submission is answered with a rejection notice.
type ContactsForCountry struct {
	ID             string
	Country        string
	EmailAddresses []string
	IsCertified    bool
	CreatedAt      time.Time
}
