package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyabroadscholarships/interest-api/internal/interest/domain"
	"github.com/studyabroadscholarships/interest-api/internal/logging"
)

const (
	errDistrictNotFound = "district not found by zip code"
	errCountryNotFound  = "country not found"
)

// NewIntakeService builds the submission pipeline service.
func NewIntakeService(
	submissions SubmissionRepository,
	audit AuditLogRepository,
	directory ContactDirectory,
	notifier Notifier,
	logs *logging.Service,
	operatorEmail string,
) IntakeService {
	return &intakeService{
		submissions:   submissions,
		audit:         audit,
		directory:     directory,
		notifier:      notifier,
		logs:          logs,
		operatorEmail: operatorEmail,
	}
}

type intakeService struct {
	submissions   SubmissionRepository
	audit         AuditLogRepository
	directory     ContactDirectory
	notifier      Notifier
	logs          *logging.Service
	operatorEmail string
}

func (s *intakeService) RecordRaw(ctx context.Context, rawBody string) error {
	return s.audit.Record(ctx, rawBody)
}

func (s *intakeService) ReportIntakeFailure(ctx context.Context, subject string, err error, rawBody string) {
	s.logs.LogException(err, rawBody)
	body := fmt.Sprintf("error message: %s. Submission: %s", err.Error(), rawBody)
	if sendErrs := s.notifier.Send(ctx, []string{s.operatorEmail}, subject, body); len(sendErrs) > 0 {
		s.logs.LogError(sendErrs, "operator-notice")
	}
}

func (s *intakeService) ProcessOne(ctx context.Context, raw domain.RawSubmission) (*domain.Submission, error) {
	submission, err := domain.NewSubmission(raw)
	if err != nil {
		payload, _ := json.Marshal(raw)
		s.ReportIntakeFailure(ctx, "Failure to process submission or send email", err, string(payload))
		return nil, err
	}

	s.process(ctx, submission)
	return submission, nil
}

func (s *intakeService) ProcessBatch(ctx context.Context, raws []domain.RawSubmission) BatchResult {
	result := BatchResult{ErrorSubmissions: []ErrorSubmission{}}
	for _, raw := range raws {
		submission, err := domain.NewSubmission(raw)
		if err != nil {
			// The raw payload stays recoverable through the audit log;
			// the minted id lets the report entry be traced in logs.
			id := uuid.NewString()
			s.logs.LogError([]string{err.Error()}, id)
			result.ErrorCount++
			result.ErrorSubmissions = append(result.ErrorSubmissions, ErrorSubmission{
				ID:     id,
				Errors: []string{err.Error()},
			})
			continue
		}

		s.processGuarded(ctx, submission)
		if len(submission.Errors) == 0 {
			result.SuccessCount++
			continue
		}
		result.ErrorCount++
		result.ErrorSubmissions = append(result.ErrorSubmissions, ErrorSubmission{
			ID:     submission.ID,
			Errors: submission.Errors,
		})
	}
	return result
}

// processGuarded isolates one batch item: a panic becomes an error on
// that submission instead of aborting the remaining items.
func (s *intakeService) processGuarded(ctx context.Context, submission *domain.Submission) {
	defer func() {
		if r := recover(); r != nil {
			submission.AddError(fmt.Sprintf("unexpected failure: %v", r))
		}
	}()
	s.process(ctx, submission)
}

// process runs the pipeline for an already-normalized submission. The
// record is durably created before any notification is attempted, so a
// crash mid-dispatch never loses the original data.
func (s *intakeService) process(ctx context.Context, submission *domain.Submission) {
	if err := s.submissions.Create(ctx, submission); err != nil {
		s.recordInfraFailure(ctx, submission, fmt.Errorf("storing submission: %w", err))
		return
	}

	s.dispatch(ctx, submission)

	if len(submission.Errors) > 0 {
		s.logs.LogError(submission.Errors, submission.ID)
		if err := s.submissions.Upsert(ctx, submission); err != nil {
			s.recordInfraFailure(ctx, submission, fmt.Errorf("updating submission errors: %w", err))
		}
	}
}

// dispatch resolves the routing target and runs exactly one of the four
// notification branches: district found, country found and certified,
// country not certified, or nothing found.
func (s *intakeService) dispatch(ctx context.Context, submission *domain.Submission) {
	if domain.TraitsFor(submission.CountryOfResidence).UsesDistricts {
		s.dispatchByDistrict(ctx, submission)
		return
	}
	s.dispatchByCountry(ctx, submission)
}

func (s *intakeService) dispatchByDistrict(ctx context.Context, submission *domain.Submission) {
	districts, err := s.directory.DistrictsByZip(ctx, submission.Zipcode)
	if err != nil {
		s.recordInfraFailure(ctx, submission, fmt.Errorf("resolving districts for zip %s: %w", submission.Zipcode, err))
		return
	}
	if len(districts) == 0 {
		submission.AddError(errDistrictNotFound)
		submission.AddErrors(s.sendNotFoundNotifications(ctx, submission))
		return
	}

	target := domain.ByDistrict(districts)
	// Duplicate addresses across districts are preserved on purpose; a
	// representative listed in two matching districts is notified per
	// district.
	var addresses []string
	for _, district := range target.Districts {
		contacts, err := s.directory.LatestDistrictContacts(ctx, district)
		if err != nil {
			submission.AddError(fmt.Sprintf("looking up contacts for district %s: %s", district, err.Error()))
			continue
		}
		if contacts != nil {
			addresses = append(addresses, contacts.EmailAddresses...)
		}
	}

	submission.AddErrors(s.sendDistrictNotifications(ctx, addresses, target.Districts, submission))
}

func (s *intakeService) dispatchByCountry(ctx context.Context, submission *domain.Submission) {
	target := domain.ByCountry(submission.CountryOfResidence)
	contacts, err := s.directory.LatestCountryContacts(ctx, target.Country)
	if err != nil {
		s.recordInfraFailure(ctx, submission, fmt.Errorf("looking up contacts for country %s: %w", target.Country, err))
		return
	}
	if contacts == nil {
		submission.AddError(errCountryNotFound)
		submission.AddErrors(s.sendNotFoundNotifications(ctx, submission))
		return
	}
	if !contacts.IsCertified {
		submission.AddErrors(s.sendNotCertifiedNotification(ctx, submission))
		return
	}

	submission.AddErrors(s.sendCountryNotifications(ctx, contacts.EmailAddresses, submission))
}

// recordInfraFailure appends a transient infrastructure failure, logs
// its cause chain, and attempts an operator notice. A failure of that
// notice is itself appended so nothing is silently lost.
func (s *intakeService) recordInfraFailure(ctx context.Context, submission *domain.Submission, err error) {
	submission.AddError(err.Error())
	payload, _ := json.Marshal(submission)
	s.logs.LogException(err, string(payload))

	body := fmt.Sprintf("error message: %s. Submission: %s", err.Error(), string(payload))
	sendErrs := s.notifier.Send(ctx, []string{s.operatorEmail}, "Failure to send to database or process submission", body)
	for _, sendErr := range sendErrs {
		submission.AddError("failed to send email to notify of failure: " + sendErr)
	}
}
