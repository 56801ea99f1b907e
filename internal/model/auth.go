package model

import "github.com/golang-jwt/jwt/v5"

// FarmerClaims are JWT claims for farmer sessions
type FarmerClaims struct {
	FarmerID string `json:"farmerId"`
	Phone    string `json:"phone"`
	jwt.RegisteredClaims
}

// AdminClaims are JWT claims for admin and counselor sessions
type AdminClaims struct {
	AdminID string    `json:"adminId"`
	Role    AdminRole `json:"role"`
	jwt.RegisteredClaims
}

// RegisterRequest is the request body for farmer registration
type RegisterRequest struct {
	Phone    string `json:"phone"`
	Name     string `json:"name"`
	District string `json:"district"`
	Language string `json:"language"`
	Password string `json:"password,omitempty"`
}

// LoginRequest is the request body for phone+password login
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AdminLoginRequest is the request body for admin/counselor login
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// OTPRequest asks for a one-time code to be sent to a phone
type OTPRequest struct {
	Phone string `json:"phone"`
}

// OTPVerifyRequest exchanges a delivered code for a token
type OTPVerifyRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// LoginResponse is returned after any successful authentication
type LoginResponse struct {
	Token    string `json:"token"`
	FarmerID string `json:"farmerId,omitempty"`
	AdminID  string `json:"adminId,omitempty"`
	Role     string `json:"role,omitempty"`
}
