package http

import (
	"encoding/json"
	"net/http"

	"github.com/workforcehq/workforce-backend-go/internal/domain/reminder"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
	reminderservice "github.com/workforcehq/workforce-backend-go/internal/service/reminder"
)

type ReminderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	MarkDone(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListUpcoming(w http.ResponseWriter, r *http.Request)
}

type reminderHandlerImpl struct {
	reminderService reminderservice.Service
}

func NewReminderHandler(reminderService reminderservice.Service) ReminderHandler {
	return &reminderHandlerImpl{reminderService: reminderService}
}

// Create implements ReminderHandler.
func (h *reminderHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req reminder.CreateReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.reminderService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// MarkDone implements ReminderHandler.
func (h *reminderHandlerImpl) MarkDone(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid reminder id")
		return
	}

	if err := h.reminderService.MarkDone(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Reminder marked done"})
}

// Delete implements ReminderHandler.
func (h *reminderHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid reminder id")
		return
	}

	if err := h.reminderService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"message": "Reminder deleted"})
}

// ListUpcoming implements ReminderHandler.
func (h *reminderHandlerImpl) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := parseID(r, "employeeId")
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	reminders, err := h.reminderService.ListUpcoming(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, reminders)
}
