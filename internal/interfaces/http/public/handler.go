package public

import (
	"log"

	"github.com/go-chi/chi/v5"

	interestapp "github.com/studyabroadscholarships/interest-api/internal/interest/application"
)

// Handler wires public HTTP endpoints to the submission pipeline.
type Handler struct {
	logger *log.Logger
	intake interestapp.IntakeService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger *log.Logger
	Intake interestapp.IntakeService
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger: cfg.Logger,
		intake: cfg.Intake,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/interest-form-entry", h.submissionCreateHandler())
	r.Post("/interest-form-entries", h.submissionBatchHandler())
}
