package public

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	interestapp "github.com/studyabroadscholarships/interest-api/internal/interest/application"
	"github.com/studyabroadscholarships/interest-api/internal/interest/domain"
)

type stubIntake struct {
	recordErr      error
	recordedBodies []string
	reported       []string
	processOneFn   func(domain.RawSubmission) (*domain.Submission, error)
	processBatchFn func([]domain.RawSubmission) interestapp.BatchResult
}

func (s *stubIntake) RecordRaw(_ context.Context, rawBody string) error {
	if s.recordErr != nil {
		return s.recordErr
	}
	s.recordedBodies = append(s.recordedBodies, rawBody)
	return nil
}

func (s *stubIntake) ReportIntakeFailure(_ context.Context, subject string, _ error, _ string) {
	s.reported = append(s.reported, subject)
}

func (s *stubIntake) ProcessOne(_ context.Context, raw domain.RawSubmission) (*domain.Submission, error) {
	return s.processOneFn(raw)
}

func (s *stubIntake) ProcessBatch(_ context.Context, raws []domain.RawSubmission) interestapp.BatchResult {
	return s.processBatchFn(raws)
}

func newTestRouter(intake *stubIntake) http.Handler {
	handler := NewHandler(Config{
		Logger: log.New(io.Discard, "", 0),
		Intake: intake,
	})
	router := chi.NewRouter()
	handler.Register(router)
	return router
}

func singleBody() string {
	return `{
		"interestOutbound": true,
		"interestHosting": false,
		"question": "none",
		"name": "Jamie Rivera",
		"age": "16",
		"gender": "female",
		"email": "jamie@example.com",
		"phone": "555-0100",
		"countryOfResidence": "The United States.",
		"state": "NY",
		"city": "Albany",
		"zipcode": "12345-6789",
		"countryChoice1": "Japan",
		"countryChoice2": "Germany",
		"countryChoice3": "Brazil",
		"countryChoice4": "France"
	}`
}

func TestSubmissionCreateSuccess(t *testing.T) {
	intake := &stubIntake{
		processOneFn: func(raw domain.RawSubmission) (*domain.Submission, error) {
			sub, err := domain.NewSubmission(raw)
			if err != nil {
				t.Fatalf("fixture should be valid: %v", err)
			}
			return sub, nil
		},
	}
	router := newTestRouter(intake)

	req := httptest.NewRequest(http.MethodPost, "/interest-form-entry", strings.NewReader(singleBody()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(intake.recordedBodies) != 1 {
		t.Fatalf("raw body should be audited exactly once, got %d", len(intake.recordedBodies))
	}

	var resp submissionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID == "" {
		t.Error("response must carry the submission id")
	}
	if resp.CountryOfResidence != "usa" || resp.Zipcode != "12345" {
		t.Errorf("response should echo the canonical record: %+v", resp)
	}
}

func TestSubmissionCreateDegraded(t *testing.T) {
	intake := &stubIntake{
		processOneFn: func(raw domain.RawSubmission) (*domain.Submission, error) {
			sub, _ := domain.NewSubmission(raw)
			sub.AddError("district not found by zip code")
			return sub, nil
		},
	}
	router := newTestRouter(intake)

	req := httptest.NewRequest(http.MethodPost, "/interest-form-entry", strings.NewReader(singleBody()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var resp submissionErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.SubmissionID == "" {
		t.Error("degraded response must carry the submission id")
	}
	if len(resp.Errors) != 1 || resp.Errors[0] != "district not found by zip code" {
		t.Errorf("Errors = %v", resp.Errors)
	}
}

func TestSubmissionCreateAuditFailureIsFatal(t *testing.T) {
	intake := &stubIntake{
		recordErr: errors.New("mongo: server selection timeout"),
		processOneFn: func(domain.RawSubmission) (*domain.Submission, error) {
			t.Fatal("pipeline must not run when the audit write fails")
			return nil, nil
		},
	}
	router := newTestRouter(intake)

	req := httptest.NewRequest(http.MethodPost, "/interest-form-entry", strings.NewReader(singleBody()))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if len(intake.reported) != 1 || intake.reported[0] != "submission unable to be logged to database" {
		t.Errorf("reported = %v", intake.reported)
	}
}

func TestSubmissionCreateMalformedBody(t *testing.T) {
	intake := &stubIntake{
		processOneFn: func(domain.RawSubmission) (*domain.Submission, error) {
			t.Fatal("pipeline must not run for an unparseable body")
			return nil, nil
		},
	}
	router := newTestRouter(intake)

	req := httptest.NewRequest(http.MethodPost, "/interest-form-entry", strings.NewReader(`{"name": `))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	// The malformed body is still audited before parsing is attempted.
	if len(intake.recordedBodies) != 1 {
		t.Errorf("audited bodies = %d, want 1", len(intake.recordedBodies))
	}
	if len(intake.reported) != 1 || intake.reported[0] != "Failure to process submission or send email" {
		t.Errorf("reported = %v", intake.reported)
	}
}

func TestSubmissionCreateValidationFailure(t *testing.T) {
	intake := &stubIntake{
		processOneFn: func(domain.RawSubmission) (*domain.Submission, error) {
			return nil, &domain.ValidationError{Missing: []string{"email"}}
		},
	}
	router := newTestRouter(intake)

	req := httptest.NewRequest(http.MethodPost, "/interest-form-entry", strings.NewReader(`{"name": "Jamie"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing required fields") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestSubmissionBatch(t *testing.T) {
	intake := &stubIntake{
		processBatchFn: func(raws []domain.RawSubmission) interestapp.BatchResult {
			if len(raws) != 2 {
				t.Fatalf("batch size = %d, want 2", len(raws))
			}
			return interestapp.BatchResult{
				SuccessCount: 1,
				ErrorCount:   1,
				ErrorSubmissions: []interestapp.ErrorSubmission{
					{ID: "abc-123", Errors: []string{"country not found"}},
				},
			}
		},
	}
	router := newTestRouter(intake)

	body := "[" + singleBody() + "," + singleBody() + "]"
	req := httptest.NewRequest(http.MethodPost, "/interest-form-entries", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp batchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.SuccessCount != 1 || resp.ErrorCount != 1 {
		t.Errorf("counts = %d/%d", resp.SuccessCount, resp.ErrorCount)
	}
	if len(resp.ErrorSubmissions) != 1 || resp.ErrorSubmissions[0].SubmissionID != "abc-123" {
		t.Errorf("ErrorSubmissions = %v", resp.ErrorSubmissions)
	}
}

func TestSubmissionBatchMalformedBody(t *testing.T) {
	intake := &stubIntake{
		processBatchFn: func([]domain.RawSubmission) interestapp.BatchResult {
			t.Fatal("pipeline must not run for an unparseable body")
			return interestapp.BatchResult{}
		},
	}
	router := newTestRouter(intake)

	req := httptest.NewRequest(http.MethodPost, "/interest-form-entries", strings.NewReader(`{"not": "an array"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if len(intake.reported) != 1 {
		t.Errorf("reported = %v", intake.reported)
	}
}
