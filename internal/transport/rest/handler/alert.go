package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"kisanmitra/internal/model"
	"kisanmitra/internal/service"
	"kisanmitra/internal/transport/rest/middleware"
	"kisanmitra/internal/transport/rest/response"
)

// AlertHandler handles the counselor-facing alert endpoints
type AlertHandler struct {
	alertSvc *service.AlertService
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertSvc *service.AlertService) *AlertHandler {
	return &AlertHandler{alertSvc: alertSvc}
}

// List handles GET /v1/admin/alerts. Counselors only see alerts routed to
// them; admins see everything.
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	status := model.AlertStatus(r.URL.Query().Get("status"))
	switch status {
	case "", model.AlertPending, model.AlertAcknowledged, model.AlertResolved, model.AlertEscalated:
	default:
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "unknown status")
		return
	}

	assignedTo := ""
	if middleware.GetAdminRole(r.Context()) == model.RoleCounselor {
		assignedTo = middleware.GetAdminID(r.Context())
	}

	alerts, err := h.alertSvc.List(r.Context(), status, assignedTo)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, response.CodeInternal, "could not load alerts")
		return
	}
	if alerts == nil {
		alerts = []*model.Alert{}
	}

	response.JSON(w, r, http.StatusOK, alerts)
}

// Acknowledge handles POST /v1/admin/alerts/{alertId}/acknowledge
func (h *AlertHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	alert, err := h.alertSvc.Acknowledge(r.Context(), mux.Vars(r)["alertId"])
	if err != nil {
		writeAlertError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, alert)
}

// Resolve handles POST /v1/admin/alerts/{alertId}/resolve
func (h *AlertHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Resolution string `json:"resolution"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "invalid request body")
		return
	}
	if req.Resolution == "" {
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "resolution is required")
		return
	}

	alert, err := h.alertSvc.Resolve(r.Context(), mux.Vars(r)["alertId"], req.Resolution)
	if err != nil {
		writeAlertError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, alert)
}

// Escalate handles POST /v1/admin/alerts/{alertId}/escalate
func (h *AlertHandler) Escalate(w http.ResponseWriter, r *http.Request) {
	alert, err := h.alertSvc.Escalate(r.Context(), mux.Vars(r)["alertId"])
	if err != nil {
		writeAlertError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, alert)
}

// Assign handles POST /v1/admin/alerts/{alertId}/assign
func (h *AlertHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CounselorID string `json:"counselorId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "invalid request body")
		return
	}
	if req.CounselorID == "" {
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "counselorId is required")
		return
	}

	alert, err := h.alertSvc.Assign(r.Context(), mux.Vars(r)["alertId"], req.CounselorID)
	if err != nil {
		writeAlertError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, alert)
}

func writeAlertError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Error(w, r, http.StatusNotFound, response.CodeNotFound, "alert not found")
	case errors.Is(err, service.ErrInvalidTransition):
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "invalid alert status transition")
	default:
		response.Error(w, r, http.StatusInternalServerError, response.CodeInternal, "alert update failed")
	}
}
