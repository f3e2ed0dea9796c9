package admin

import (
	"log"

	"github.com/go-chi/chi/v5"

	directoryapp "github.com/studyabroadscholarships/interest-api/internal/directory/application"
	"github.com/studyabroadscholarships/interest-api/internal/logging"
)

// Handler wires admin HTTP endpoints to the contact-directory service.
type Handler struct {
	logger   *log.Logger
	logs     *logging.Service
	contacts directoryapp.ContactService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger   *log.Logger
	Logs     *logging.Service
	Contacts directoryapp.ContactService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:   cfg.Logger,
		logs:     cfg.Logs,
		contacts: cfg.Contacts,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/contacts-for-districts", h.districtContactsCreateHandler())
	r.Post("/contacts-for-countries", h.countryContactsCreateHandler())
	r.Get("/contacts-for-districts/{id}", h.districtContactsGetHandler())
	r.Get("/zipcodes/{zip}", h.zipDistrictsHandler())
}
