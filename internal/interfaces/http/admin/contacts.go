package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/studyabroadscholarships/interest-api/internal/interfaces/http/common"
)

// districtContactsCreateHandler appends new district contact versions.
// The body is an array so a maintainer can roll out a whole region in
// one request.
func (h *Handler) districtContactsCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payloads []districtContactsPayload
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody)).Decode(&payloads); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		created, err := h.contacts.CreateDistrictContacts(r.Context(), toDistrictCommands(payloads))
		if err != nil {
			h.logs.LogException(err, "creating district contacts")
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to store contacts"})
			return
		}

		if user, ok := common.UserFromContext(r.Context()); ok {
			h.logger.Printf("maintainer %s added %d district contact versions", user.ID, len(created))
		}

		responses := make([]districtContactsResponse, 0, len(created))
		for _, contacts := range created {
			responses = append(responses, buildDistrictContactsResponse(contacts))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, responses)
	}
}

// countryContactsCreateHandler appends new country contact versions,
// including the certification flag that gates routing eligibility.
func (h *Handler) countryContactsCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payloads []countryContactsPayload
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, common.MaxRequestBody)).Decode(&payloads); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		created, err := h.contacts.CreateCountryContacts(r.Context(), toCountryCommands(payloads))
		if err != nil {
			h.logs.LogException(err, "creating country contacts")
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to store contacts"})
			return
		}

		if user, ok := common.UserFromContext(r.Context()); ok {
			h.logger.Printf("maintainer %s added %d country contact versions", user.ID, len(created))
		}

		responses := make([]countryContactsResponse, 0, len(created))
		for _, contacts := range created {
			responses = append(responses, buildCountryContactsResponse(contacts))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, responses)
	}
}

// districtContactsGetHandler returns the most recent contact version
// for a district, or 404 when the district has never been registered.
func (h *Handler) districtContactsGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		district := chi.URLParam(r, "id")

		contacts, err := h.contacts.LatestDistrictContacts(r.Context(), district)
		if err != nil {
			h.logs.LogException(err, district)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to load contacts"})
			return
		}
		if contacts == nil {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "district not found"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildDistrictContactsResponse(*contacts))
	}
}

// zipDistrictsHandler lists the districts whose zip-code sets contain
// the given code. Used to verify directory data after an update.
func (h *Handler) zipDistrictsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		zip := chi.URLParam(r, "zip")

		districts, err := h.contacts.DistrictsByZip(r.Context(), zip)
		if err != nil {
			h.logs.LogException(err, zip)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to resolve districts"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, districts)
	}
}
