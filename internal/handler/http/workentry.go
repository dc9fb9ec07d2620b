package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/workforcehq/workforce-backend-go/internal/domain/workentry"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
	workentryservice "github.com/workforcehq/workforce-backend-go/internal/service/workentry"
)

type WorkEntryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListByEmployeeMonth(w http.ResponseWriter, r *http.Request)
}

type workEntryHandlerImpl struct {
	workEntryService workentryservice.Service
}

func NewWorkEntryHandler(workEntryService workentryservice.Service) WorkEntryHandler {
	return &workEntryHandlerImpl{workEntryService: workEntryService}
}

// Create implements WorkEntryHandler.
func (h *workEntryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req workentry.CreateWorkEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.workEntryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// Delete implements WorkEntryHandler.
func (h *workEntryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid work entry id")
		return
	}

	if err := h.workEntryService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Work entry deleted"})
}

// ListByEmployeeMonth implements WorkEntryHandler.
func (h *workEntryHandlerImpl) ListByEmployeeMonth(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := parseID(r, "employeeId")
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	month := chi.URLParam(r, "month")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.Error(w, http.StatusBadRequest, "month must be in YYYY-MM format")
		return
	}

	entries, err := h.workEntryService.ListByEmployeeMonth(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, entries)
}
