package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Submission is the canonical interest-form record produced by
// normalization. Errors is append-only and persisted when non-empty;
// an empty Errors list is the success signal surfaced to callers.
type Submission struct {
	ID                 string
	InterestOutbound   bool
	InterestHosting    bool
	Question           string
	Name               string
	Age                string
	Gender             string
	Email              string
	Phone              string
	CountryOfResidence string
	State              string
	City               string
	Zipcode            string
	CountryChoiceOne   string
	CountryChoiceTwo   string
	CountryChoiceThree string
	CountryChoiceFour  string
	Errors             []string
}

// RawSubmission carries submitter-supplied input before normalization.
// Free-text fields are pointers so that an absent JSON field is
// distinguishable from an empty one.
type RawSubmission struct {
	InterestOutbound   bool    `json:"interestOutbound"`
	InterestHosting    bool    `json:"interestHosting"`
	Question           *string `json:"question"`
	Name               *string `json:"name"`
	Age                *string `json:"age"`
	Gender             *string `json:"gender"`
	Email              *string `json:"email"`
	Phone              *string `json:"phone"`
	CountryOfResidence *string `json:"countryOfResidence"`
	State              *string `json:"state"`
	City               *string `json:"city"`
	Zipcode            *string `json:"zipcode"`
	CountryChoiceOne   *string `json:"countryChoice1"`
	CountryChoiceTwo   *string `json:"countryChoice2"`
	CountryChoiceThree *string `json:"countryChoice3"`
	CountryChoiceFour  *string `json:"countryChoice4"`
}

// ValidationError reports the required fields missing from a raw
// submission.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// countryAliases maps normalized spellings to the canonical country
// token. Adding an alias is a data change, not a code change.
var countryAliases = map[string]string{
	"unitedstatesofamerica": "usa",
	"us":                    "usa",
	"unitedstates":          "usa",
	"america":               "usa",
	"britian":               "uk",
	"unitedkingdom":         "uk",
	"england":               "uk",
}

// CountryTraits describes routing behavior per canonical country.
type CountryTraits struct {
	// UsesDistricts marks postal systems with sub-national Rotary
	// districts; submissions route by zip code instead of country.
	UsesDistricts bool
	// ZipLength bounds the significant prefix of a postal code.
	// Zero means the code is kept whole.
	ZipLength int
}

var countryTraits = map[string]CountryTraits{
	"usa":    {UsesDistricts: true, ZipLength: 5},
	"canada": {UsesDistricts: true, ZipLength: 3},
}

// TraitsFor returns the routing traits for a canonical country token.
// Unknown countries get the zero value: no districts, unbounded zip.
func TraitsFor(country string) CountryTraits {
	return countryTraits[country]
}

// CanonicalCountry lowercases the input, strips "the " and "." and all
// spaces, then resolves known aliases. The result is stable under
// re-application so records stay searchable in the store.
func CanonicalCountry(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, "the ", "")
	name = strings.ReplaceAll(name, ".", "")
	name = strings.ReplaceAll(name, " ", "")
	if canonical, ok := countryAliases[name]; ok {
		return canonical
	}
	return name
}

// TruncateZip upper-cases the trimmed postal code and keeps at most the
// country's significant prefix. Idempotent: truncating an already
// truncated code returns it unchanged.
func TruncateZip(country, raw string) string {
	zip := strings.ToUpper(strings.TrimSpace(raw))
	if limit := TraitsFor(country).ZipLength; limit > 0 && len(zip) > limit {
		zip = zip[:limit]
	}
	return zip
}

// NewSubmission normalizes raw input into a canonical Submission or
// fails with a ValidationError when any required field is absent. It
// never returns a partially constructed record.
func NewSubmission(raw RawSubmission) (*Submission, error) {
	missing := missingFields(raw)
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	country := CanonicalCountry(*raw.CountryOfResidence)
	return &Submission{
		ID:                 uuid.NewString(),
		InterestOutbound:   raw.InterestOutbound,
		InterestHosting:    raw.InterestHosting,
		Question:           strings.TrimSpace(*raw.Question),
		Name:               strings.TrimSpace(*raw.Name),
		Age:                strings.TrimSpace(*raw.Age),
		Gender:             strings.TrimSpace(*raw.Gender),
		Email:              strings.TrimSpace(*raw.Email),
		Phone:              strings.TrimSpace(*raw.Phone),
		CountryOfResidence: country,
		State:              strings.TrimSpace(*raw.State),
		City:               strings.TrimSpace(*raw.City),
		Zipcode:            TruncateZip(country, *raw.Zipcode),
		CountryChoiceOne:   strings.TrimSpace(*raw.CountryChoiceOne),
		CountryChoiceTwo:   strings.TrimSpace(*raw.CountryChoiceTwo),
		CountryChoiceThree: strings.TrimSpace(*raw.CountryChoiceThree),
		CountryChoiceFour:  strings.TrimSpace(*raw.CountryChoiceFour),
		Errors:             []string{},
	}, nil
}

func missingFields(raw RawSubmission) []string {
	var missing []string
	check := func(name string, value *string) {
		if value == nil {
			missing = append(missing, name)
		}
	}
	check("question", raw.Question)
	check("name", raw.Name)
	check("age", raw.Age)
	check("gender", raw.Gender)
	check("email", raw.Email)
	check("phone", raw.Phone)
	check("countryOfResidence", raw.CountryOfResidence)
	check("state", raw.State)
	check("city", raw.City)
	check("zipcode", raw.Zipcode)
	check("countryChoice1", raw.CountryChoiceOne)
	check("countryChoice2", raw.CountryChoiceTwo)
	check("countryChoice3", raw.CountryChoiceThree)
	check("countryChoice4", raw.CountryChoiceFour)
	return missing
}

// AddError appends a single failure reason to the submission.
func (s *Submission) AddError(message string) {
	s.Errors = append(s.Errors, message)
}

// AddErrors appends every failure reason in order.
func (s *Submission) AddErrors(messages []string) {
	s.Errors = append(s.Errors, messages...)
}
