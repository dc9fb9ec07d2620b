package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/workforcehq/workforce-backend-go/internal/domain/attendance"
	"github.com/workforcehq/workforce-backend-go/internal/handler/http/response"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/validator"
	attendanceservice "github.com/workforcehq/workforce-backend-go/internal/service/attendance"
	reportservice "github.com/workforcehq/workforce-backend-go/internal/service/report"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	My(w http.ResponseWriter, r *http.Request)
	AdminToday(w http.ResponseWriter, r *http.Request)
	AdminByDate(w http.ResponseWriter, r *http.Request)
	AdminMonthly(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendanceservice.Service
	reportService     reportservice.Service
}

func NewAttendanceHandler(attendanceService attendanceservice.Service, reportService reportservice.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

func parseID(r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	return id, err == nil && id > 0
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Today implements AttendanceHandler. Responds with the resolved day status,
// or a JSON null when the day is not yet marked.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := parseID(r, "employeeId")
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	day, err := h.attendanceService.TodayStatus(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if day == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
		return
	}
	response.JSON(w, http.StatusOK, day)
}

// My implements AttendanceHandler.
func (h *attendanceHandlerImpl) My(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := parseID(r, "employeeId")
	if !ok {
		response.Error(w, http.StatusBadRequest, "invalid employee id")
		return
	}

	history, err := h.attendanceService.History(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, history)
}

// AdminToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) AdminToday(w http.ResponseWriter, r *http.Request) {
	counts, err := h.attendanceService.AdminTodayCounts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, counts)
}

// AdminByDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) AdminByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, ok := validator.IsValidDate(date); !ok {
		response.Error(w, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
		return
	}

	rows, err := h.attendanceService.AdminByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, rows)
}

// AdminMonthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) AdminMonthly(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	if _, ok := validator.IsValidMonth(month); !ok {
		response.Error(w, http.StatusBadRequest, "month must be in YYYY-MM format")
		return
	}

	summaries, err := h.reportService.MonthlySummary(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, summaries)
}
