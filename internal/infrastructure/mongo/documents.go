package mongo

import "time"

// SubmissionDocument is the MongoDB schema for an interest-form
// submission record.
type SubmissionDocument struct {
	ID                 string     `bson:"_id"`
	InterestOutbound   bool       `bson:"interestOutbound"`
	InterestHosting    bool       `bson:"interestHosting"`
	Question           string     `bson:"question"`
	Name               string     `bson:"name"`
	Age                string     `bson:"age"`
	Gender             string     `bson:"gender"`
	Email              string     `bson:"email"`
	Phone              string     `bson:"phone"`
	CountryOfResidence string     `bson:"countryOfResidence"`
	State              string     `bson:"state"`
	City               string     `bson:"city"`
	Zipcode            string     `bson:"zipcode"`
	CountryChoiceOne   string     `bson:"countryChoice1"`
	CountryChoiceTwo   string     `bson:"countryChoice2"`
	CountryChoiceThree string     `bson:"countryChoice3"`
	CountryChoiceFour  string     `bson:"countryChoice4"`
	Errors             []string   `bson:"errors,omitempty"`
	CreatedAt          time.Time  `bson:"createdAt"`
	UpdatedAt          *time.Time `bson:"updatedAt,omitempty"`
}

// DistrictContactsDocument is one append-only version of a district's
// contact list. Readers resolve the latest version by createdAt.
type DistrictContactsDocument struct {
	ID             string    `bson:"_id"`
	Country        string    `bson:"country"`
	District       string    `bson:"district"`
	EmailAddresses []string  `bson:"emailAddresses"`
	ZipCodes       []string  `bson:"zipCodes"`
	CreatedAt      time.Time `bson:"createdAt"`
}

// CountryContactsDocument is one append-only version of a country's
// contact list.
type CountryContactsDocument struct {
	ID             string    `bson:"_id"`
	Country        string    `bson:"country"`
	EmailAddresses []string  `bson:"emailAddresses"`
	IsCertified    bool      `bson:"isCertified"`
	CreatedAt      time.Time `bson:"createdAt"`
}

// RequestLogDocument is the write-once audit copy of a raw request
// body, retained independent of downstream processing outcome.
type RequestLogDocument struct {
	ID          string    `bson:"_id"`
	RequestBody string    `bson:"requestBody"`
	ReceivedAt  time.Time `bson:"receivedAt"`
}
