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

// FarmerHandler handles farmer profile and admin roster endpoints
type FarmerHandler struct {
	farmerSvc *service.FarmerService
}

// NewFarmerHandler creates a new farmer handler
func NewFarmerHandler(farmerSvc *service.FarmerService) *FarmerHandler {
	return &FarmerHandler{farmerSvc: farmerSvc}
}

// Profile handles GET /v1/profile
func (h *FarmerHandler) Profile(w http.ResponseWriter, r *http.Request) {
	farmerID := middleware.GetFarmerID(r.Context())

	farmer, err := h.farmerSvc.Get(r.Context(), farmerID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, response.CodeNotFound, "farmer not found")
			return
		}
		response.Error(w, r, http.StatusInternalServerError, response.CodeInternal, "could not load profile")
		return
	}

	response.JSON(w, r, http.StatusOK, farmer)
}

// List handles GET /v1/admin/farmers
func (h *FarmerHandler) List(w http.ResponseWriter, r *http.Request) {
	farmers, err := h.farmerSvc.List(r.Context(), r.URL.Query().Get("district"))
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, response.CodeInternal, "could not load farmers")
		return
	}
	if farmers == nil {
		farmers = []*model.Farmer{}
	}

	response.JSON(w, r, http.StatusOK, farmers)
}

// AssignCounselor handles POST /v1/admin/farmers/{farmerId}/counselor
func (h *FarmerHandler) AssignCounselor(w http.ResponseWriter, r *http.Request) {
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

	if err := h.farmerSvc.AssignCounselor(r.Context(), mux.Vars(r)["farmerId"], req.CounselorID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, response.CodeNotFound, "farmer or counselor not found")
			return
		}
		response.Error(w, r, http.StatusInternalServerError, response.CodeInternal, "assignment failed")
		return
	}

	response.JSON(w, r, http.StatusOK, map[string]string{"status": "assigned"})
}

// Remind handles POST /v1/admin/farmers/{farmerId}/remind
func (h *FarmerHandler) Remind(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
		Channel string `json:"channel"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "invalid request body")
		return
	}
	if req.Message == "" {
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "message is required")
		return
	}

	if err := h.farmerSvc.Remind(r.Context(), mux.Vars(r)["farmerId"], req.Message, req.Channel); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.Error(w, r, http.StatusNotFound, response.CodeNotFound, "farmer not found")
			return
		}
		response.Error(w, r, http.StatusInternalServerError, response.CodeInternal, "reminder failed")
		return
	}

	response.JSON(w, r, http.StatusOK, map[string]string{"status": "sent"})
}
