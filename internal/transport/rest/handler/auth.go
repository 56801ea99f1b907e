package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"kisanmitra/internal/model"
	"kisanmitra/internal/service"
	"kisanmitra/internal/transport/rest/response"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register handles POST /v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "invalid request body")
		return
	}
	if req.Phone == "" || req.Name == "" {
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "phone and name are required")
		return
	}

	resp, err := h.authSvc.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrPhoneRegistered) {
			response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "phone already registered")
			return
		}
		response.Error(w, r, http.StatusInternalServerError, response.CodeInternal, "registration failed")
		return
	}

	response.JSON(w, r, http.StatusCreated, resp)
}

// Login handles POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "invalid request body")
		return
	}

	resp, err := h.authSvc.Login(r.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(w, r, http.StatusUnauthorized, response.CodeUnauthorized, "invalid phone or password")
			return
		}
		response.Error(w, r, http.StatusInternalServerError, response.CodeInternal, "login failed")
		return
	}

	response.JSON(w, r, http.StatusOK, resp)
}

// RequestOTP handles POST /v1/auth/otp/request
func (h *AuthHandler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req model.OTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "invalid request body")
		return
	}
	if req.Phone == "" {
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "phone is required")
		return
	}

	if err := h.authSvc.RequestOTP(r.Context(), req.Phone); err != nil {
		if errors.Is(err, service.ErrRateLimited) {
			response.Error(w, r, http.StatusTooManyRequests, response.CodeRateLimited, "too many code requests")
			return
		}
		response.Error(w, r, http.StatusInternalServerError, response.CodeInternal, "could not send code")
		return
	}

	response.JSON(w, r, http.StatusOK, map[string]string{"status": "sent"})
}

// VerifyOTP handles POST /v1/auth/otp/verify
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req model.OTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "invalid request body")
		return
	}

	resp, err := h.authSvc.VerifyOTP(r.Context(), req.Phone, req.Code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOTP) {
			response.Error(w, r, http.StatusUnauthorized, response.CodeUnauthorized, "invalid or expired code")
			return
		}
		response.Error(w, r, http.StatusInternalServerError, response.CodeInternal, "verification failed")
		return
	}

	response.JSON(w, r, http.StatusOK, resp)
}

// AdminLogin handles POST /v1/auth/admin/login
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req model.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, r, http.StatusBadRequest, response.CodeValidation, "invalid request body")
		return
	}

	resp, err := h.authSvc.AdminLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(w, r, http.StatusUnauthorized, response.CodeUnauthorized, "invalid credentials")
			return
		}
		response.Error(w, r, http.StatusInternalServerError, response.CodeInternal, "login failed")
		return
	}

	response.JSON(w, r, http.StatusOK, resp)
}
