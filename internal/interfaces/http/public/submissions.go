package public

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/studyabroadscholarships/interest-api/internal/interest/domain"
	"github.com/studyabroadscholarships/interest-api/internal/interfaces/http/common"
)

const (
	auditFailureSubject = "submission unable to be logged to database"
	parseFailureSubject = "Failure to process submission or send email"
)

// submissionCreateHandler accepts a single raw submission, audits the
// raw body before parsing, runs the pipeline, and reports either the
// canonical record or the accumulated errors.
func (h *Handler) submissionCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		body, err := io.ReadAll(io.LimitReader(r.Body, common.MaxRequestBody))
		if err != nil {
			h.logger.Printf("reading request body failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to read request body"})
			return
		}
		rawBody := string(body)

		// Losing the raw input is unacceptable even though losing a
		// notification is tolerable, so an audit failure is fatal.
		if err := h.intake.RecordRaw(ctx, rawBody); err != nil {
			h.intake.ReportIntakeFailure(ctx, auditFailureSubject, err, rawBody)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to log submission"})
			return
		}

		var raw domain.RawSubmission
		if err := json.Unmarshal(body, &raw); err != nil {
			h.intake.ReportIntakeFailure(ctx, parseFailureSubject, err, rawBody)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to parse submission"})
			return
		}

		submission, err := h.intake.ProcessOne(ctx, raw)
		if err != nil {
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		if len(submission.Errors) > 0 {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, submissionErrorResponse{
				SubmissionID: submission.ID,
				Errors:       submission.Errors,
			})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildSubmissionResponse(submission))
	}
}

// submissionBatchHandler accepts an array of raw submissions and always
// answers with per-submission counts; business failures never surface
// as transport failures.
func (h *Handler) submissionBatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		body, err := io.ReadAll(io.LimitReader(r.Body, common.MaxRequestBody))
		if err != nil {
			h.logger.Printf("reading request body failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to read request body"})
			return
		}
		rawBody := string(body)

		if err := h.intake.RecordRaw(ctx, rawBody); err != nil {
			h.intake.ReportIntakeFailure(ctx, auditFailureSubject, err, rawBody)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to log submission"})
			return
		}

		var raws []domain.RawSubmission
		if err := json.Unmarshal(body, &raws); err != nil {
			h.intake.ReportIntakeFailure(ctx, parseFailureSubject, err, rawBody)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to parse submissions"})
			return
		}

		result := h.intake.ProcessBatch(ctx, raws)
		common.WriteJSON(h.logger, w, http.StatusOK, buildBatchResponse(result))
	}
}
