package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"kisanmitra/internal/cache"
	"kisanmitra/internal/model"
	"kisanmitra/internal/notify"
	"kisanmitra/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrPhoneRegistered    = errors.New("phone already registered")
	ErrInvalidOTP         = errors.New("invalid or expired code")
	ErrRateLimited        = errors.New("too many requests")
)

const farmerTokenTTL = 7 * 24 * time.Hour

// AuthService handles farmer and admin authentication: password login,
// OTP login, and JWT issuance/validation.
type AuthService struct {
	farmerRepo repository.FarmerRepo
	adminRepo  repository.AdminRepo
	otpCache   cache.OTPCache
	otpLimiter cache.RateLimiter
	notifier   notify.Notifier
	jwtSecret  []byte
	logger     *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	farmerRepo repository.FarmerRepo,
	adminRepo repository.AdminRepo,
	otpCache cache.OTPCache,
	otpLimiter cache.RateLimiter,
	notifier notify.Notifier,
	jwtSecret string,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		farmerRepo: farmerRepo,
		adminRepo:  adminRepo,
		otpCache:   otpCache,
		otpLimiter: otpLimiter,
		notifier:   notifier,
		jwtSecret:  []byte(jwtSecret),
		logger:     logger,
	}
}

// Register creates a farmer account. The password is optional; OTP-only
// accounts carry no hash.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.LoginResponse, error) {
	existing, err := s.farmerRepo.GetByPhone(ctx, req.Phone)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPhoneRegistered
	}

	farmer := &model.Farmer{
		Phone:    req.Phone,
		Name:     req.Name,
		District: req.District,
		Language: req.Language,
		Status:   model.FarmerStatusActive,
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		farmer.PasswordHash = string(hash)
	}

	id, err := s.farmerRepo.Create(ctx, farmer)
	if err != nil {
		return nil, err
	}

	return s.farmerLoginResponse(id, req.Phone)
}

// Login validates phone+password credentials and returns a token.
func (s *AuthService) Login(ctx context.Context, phone, password string) (*model.LoginResponse, error) {
	farmer, err := s.farmerRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if farmer.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(farmer.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.farmerLoginResponse(farmer.ID, farmer.Phone)
}

// RequestOTP generates a one-time code for a registered phone and hands it
// to the notifier. Rate limited per phone.
func (s *AuthService) RequestOTP(ctx context.Context, phone string) error {
	allowed, err := s.otpLimiter.Allow(ctx, "otp:"+phone)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrRateLimited
	}

	farmer, err := s.farmerRepo.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Do not reveal whether a phone is registered.
			return nil
		}
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	if err := s.otpCache.Store(ctx, phone, code); err != nil {
		return err
	}

	go func() {
		msg := fmt.Sprintf("Kisan Mitra login code: %s", code)
		if err := s.notifier.SendReminder(context.Background(), farmer.ID, msg, notify.ChannelSMS); err != nil {
			s.logger.Warn("otp delivery failed", zap.String("farmer_id", farmer.ID), zap.Error(err))
		}
	}()
	return nil
}

// VerifyOTP exchanges a delivered code for a token.
func (s *AuthService) VerifyOTP(ctx context.Context, phone, code string) (*model.LoginResponse, error) {
	ok, err := s.otpCache.Verify(ctx, phone, code)
	if err != nil {
		if errors.Is(err, cache.ErrOTPNotFound) || errors.Is(err, cache.ErrOTPAttemptsExceeded) {
			return nil, ErrInvalidOTP
		}
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidOTP
	}

	farmer, err := s.farmerRepo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, ErrInvalidOTP
	}

	return s.farmerLoginResponse(farmer.ID, farmer.Phone)
}

// AdminLogin validates admin/counselor credentials and returns a token.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	claims := &model.AdminClaims{
		AdminID: admin.ID,
		Role:    admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{Token: signed, AdminID: admin.ID, Role: string(admin.Role)}, nil
}

// ValidateFarmerToken validates a farmer JWT and returns its claims.
func (s *AuthService) ValidateFarmerToken(tokenString string) (*model.FarmerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.FarmerClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.FarmerClaims)
	if !ok || !token.Valid || claims.FarmerID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateAdminToken validates an admin JWT and returns its claims.
func (s *AuthService) ValidateAdminToken(tokenString string) (*model.AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AdminClaims)
	if !ok || !token.Valid || claims.AdminID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) farmerLoginResponse(farmerID, phone string) (*model.LoginResponse, error) {
	claims := &model.FarmerClaims{
		FarmerID: farmerID,
		Phone:    phone,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(farmerTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &model.LoginResponse{Token: signed, FarmerID: farmerID}, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
