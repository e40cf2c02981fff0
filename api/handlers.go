/*
handlers.go - HTTP handlers for the dataset preview API

PURPOSE:
  Exposes a generated dataset for inspection. All endpoints are read-only;
  the dataset is loaded into the store once at startup and never mutated.

ENDPOINTS:
  GET /api/summary     row counts per table, open/filled/exception split
  GET /api/employees   roster browse       ?org=&limit=
  GET /api/schedule    shift browse        ?date=&org=&open=true&limit=
  GET /api/timecards   punch browse        ?date=&paycode=&limit=
  GET /api/healthz     liveness

QUERY CONVENTIONS:
  date        "2006-01-02"
  limit       positive integer, default 200 (0 < limit <= 5000)
  open=true   restrict the schedule to open shifts

ERROR HANDLING:
  Errors are returned as {"error": "..."} with an appropriate status:
  - 400: malformed query parameters
  - 500: store failures

SEE ALSO:
  - dto.go: response shapes
  - server.go: router setup and middleware
  - store/sqlite: query implementation
*/
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/warp/workforce-engine/store/sqlite"
)

const (
	defaultListLimit = 200
	maxListLimit     = 5000
)

// Handler holds the preview API dependencies.
type Handler struct {
	store *sqlite.Store
}

// NewHandler creates a handler over a loaded store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{store: store}
}

// =============================================================================
// HANDLERS
// =============================================================================

// GetSummary returns dataset row counts.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.store.GetSummary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// ListEmployees returns roster rows, optionally filtered by org path.
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	employees, err := h.store.ListEmployees(r.Context(), sqlite.EmployeeFilter{
		OrgPath: r.URL.Query().Get("org"),
		Limit:   limit,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		dtos = append(dtos, toEmployeeDTO(e))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ListSchedule returns shift rows with optional date/org/open filters.
func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	date, err := parseDateParam(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	shifts, err := h.store.ListShifts(r.Context(), sqlite.ShiftFilter{
		Date:     date,
		OrgPath:  r.URL.Query().Get("org"),
		OpenOnly: r.URL.Query().Get("open") == "true",
		Limit:    limit,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]ShiftDTO, 0, len(shifts))
	for _, s := range shifts {
		dtos = append(dtos, toShiftDTO(s))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ListTimecards returns punch rows with optional date/paycode filters.
func (h *Handler) ListTimecards(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	date, err := parseDateParam(r, "date")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	timecards, err := h.store.ListTimecards(r.Context(), sqlite.TimecardFilter{
		Date:    date,
		Paycode: r.URL.Query().Get("paycode"),
		Limit:   limit,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]TimecardDTO, 0, len(timecards))
	for _, tc := range timecards {
		dtos = append(dtos, toTimecardDTO(tc))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Healthz reports liveness.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthDTO{Status: "ok", Time: time.Now().UTC()})
}

// =============================================================================
// HELPERS
// =============================================================================

func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > maxListLimit {
		return 0, &badParamError{param: "limit", value: raw}
	}
	return limit, nil
}

func parseDateParam(r *http.Request, param string) (string, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return "", &badParamError{param: param, value: raw}
	}
	return raw, nil
}

type badParamError struct {
	param string
	value string
}

func (e *badParamError) Error() string {
	return "invalid " + e.param + " parameter: " + e.value
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
