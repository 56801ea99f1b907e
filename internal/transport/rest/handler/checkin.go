package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"kisanmitra/internal/model"
	"kisanmitra/internal/service"
	"kisanmitra/internal/transport/rest/middleware"
	"kisanmitra/internal/transport/rest/response"
)

const defaultHistoryLimit = 30

// CheckInHandler handles farmer check-in endpoints
type CheckInHandler struct {
	checkInSvc *service.CheckInService
}

// NewCheckInHandler creates a new check-in handler
func NewCheckInHandler(checkInSvc *service.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkInSvc: checkInSvc}
}

// Submit handles POST /v1/checkins
func (h *CheckInHandler) Submit(w http.ResponseWriter, r *http.Request) {
	farmerID := middleware.GetFarmerID(r.Context())

	var input model.CheckInInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "invalid request body")
		return
	}

	result, err := h.checkInSvc.Submit(r.Context(), farmerID, input)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			response.ErrorDetails(w, r, http.StatusBadRequest, response.CodeValidation, verr.Message,
				map[string]string{"field": verr.Field})
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, response.CodeNotFound, "farmer not found")
			return
		}
		response.Error(w, r, http.StatusInternalServerError, response.CodeInternal, "check-in failed")
		return
	}

	response.JSON(w, r, http.StatusCreated, result)
}

// History handles GET /v1/checkins
func (h *CheckInHandler) History(w http.ResponseWriter, r *http.Request) {
	farmerID := middleware.GetFarmerID(r.Context())

	limit := int64(defaultHistoryLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "invalid limit")
			return
		}
		limit = parsed
	}

	checkIns, err := h.checkInSvc.History(r.Context(), farmerID, limit)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, response.CodeInternal, "could not load history")
		return
	}
	if checkIns == nil {
		checkIns = []*model.CheckIn{}
	}

	response.JSON(w, r, http.StatusOK, checkIns)
}

// Get handles GET /v1/checkins/{checkinId}
func (h *CheckInHandler) Get(w http.ResponseWriter, r *http.Request) {
	farmerID := middleware.GetFarmerID(r.Context())
	checkInID := mux.Vars(r)["checkinId"]

	checkIn, err := h.checkInSvc.Get(r.Context(), farmerID, checkInID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, response.CodeNotFound, "check-in not found")
			return
		}
		response.Error(w, r, http.StatusInternalServerError, response.CodeInternal, "could not load check-in")
		return
	}

	response.JSON(w, r, http.StatusOK, checkIn)
}
