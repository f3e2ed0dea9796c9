package public

import (
	interestapp "github.com/studyabroadscholarships/interest-api/internal/interest/application"
	"github.com/studyabroadscholarships/interest-api/internal/interest/domain"
)

// submissionResponse echoes the canonical submission on success.
type submissionResponse struct {
	ID                 string   `json:"id"`
	InterestOutbound   bool     `json:"interestOutbound"`
	InterestHosting    bool     `json:"interestHosting"`
	Question           string   `json:"question"`
	Name               string   `json:"name"`
	Age                string   `json:"age"`
	Gender             string   `json:"gender"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	CountryOfResidence string   `json:"countryOfResidence"`
	State              string   `json:"state"`
	City               string   `json:"city"`
	Zipcode            string   `json:"zipcode"`
	CountryChoiceOne   string   `json:"countryChoice1"`
	CountryChoiceTwo   string   `json:"countryChoice2"`
	CountryChoiceThree string   `json:"countryChoice3"`
	CountryChoiceFour  string   `json:"countryChoice4"`
	Errors             []string `json:"errors,omitempty"`
}

// submissionErrorResponse reports a degraded or failed submission. It
// carries the submission id so a human can look the record up later.
type submissionErrorResponse struct {
	SubmissionID string   `json:"submissionId"`
	Errors       []string `json:"errors"`
}

// batchResponse aggregates a batch run for the caller.
type batchResponse struct {
	SuccessCount     int                       `json:"successCount"`
	ErrorCount       int                       `json:"errorCount"`
	ErrorSubmissions []submissionErrorResponse `json:"errorSubmissions"`
}

func buildSubmissionResponse(submission *domain.Submission) submissionResponse {
	return submissionResponse{
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

func buildBatchResponse(result interestapp.BatchResult) batchResponse {
	errorSubmissions := make([]submissionErrorResponse, 0, len(result.ErrorSubmissions))
	for _, item := range result.ErrorSubmissions {
		errorSubmissions = append(errorSubmissions, submissionErrorResponse{
			SubmissionID: item.ID,
			Errors:       item.Errors,
		})
	}
	return batchResponse{
		SuccessCount:     result.SuccessCount,
		ErrorCount:       result.ErrorCount,
		ErrorSubmissions: errorSubmissions,
	}
}
