package application

import (
	"context"

	directorydomain "github.com/studyabroadscholarships/interest-api/internal/directory/domain"
	"github.com/studyabroadscholarships/interest-api/internal/interest/domain"
)

// SubmissionRepository persists interest-form submissions.
// SubmissionRepository abstracts the durable store for the pipeline.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.Submission) error
	Upsert(ctx context.Context, submission *domain.Submission) error
}

// AuditLogRepository records the unparsed body of every inbound request
// before any processing is attempted.
type AuditLogRepository interface {
	Record(ctx context.Context, rawBody string) error
}

// ContactDirectory resolves routing targets to the current recipient
// sets. Lookups follow a most-recent-wins policy over append-only
// contact versions; a nil record means "not found", which is distinct
// from a found record with an empty address list.
type ContactDirectory interface {
	DistrictsByZip(ctx context.Context, zip string) ([]string, error)
	LatestDistrictContacts(ctx context.Context, district string) (*directorydomain.ContactsForDistrict, error)
	LatestCountryContacts(ctx context.Context, country string) (*directorydomain.ContactsForCountry, error)
}

// Notifier delivers one outbound notification. Failures are returned as
// messages, never raised; an empty list means success.
type Notifier interface {
	Send(ctx context.Context, recipients []string, subject, htmlBody string) []string
}

// ErrorSubmission pairs a submission id with its accumulated errors for
// the batch report.
type ErrorSubmission struct {
	ID     string
	Errors []string
}

// BatchResult aggregates a batch run. ErrorSubmissions keeps input
// order so batch output stays deterministic.
type BatchResult struct {
	SuccessCount     int
	ErrorCount       int
	ErrorSubmissions []ErrorSubmission
}

// IntakeService runs the submission processing pipeline: normalization,
// location resolution, notification dispatch and error aggregation.
type IntakeService interface {
	// RecordRaw durably stores the raw request body. Callers must treat
	// a failure as fatal for the whole request.
	RecordRaw(ctx context.Context, rawBody string) error
	// ReportIntakeFailure logs a pre-pipeline failure and notifies the
	// operator so the raw payload can be recovered by hand.
	ReportIntakeFailure(ctx context.Context, subject string, err error, rawBody string)
	// ProcessOne runs the pipeline for a single raw submission. A
	// non-nil error means normalization failed; otherwise the returned
	// submission's Errors list tells success from degraded outcomes.
	ProcessOne(ctx context.Context, raw domain.RawSubmission) (*domain.Submission, error)
	// ProcessBatch processes every submission independently; one item's
	// failure never aborts the rest.
	ProcessBatch(ctx context.Context, raws []domain.RawSubmission) BatchResult
}
