package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"kisanmitra/internal/cache"
	"kisanmitra/internal/model"
)

type authFixture struct {
	svc     *AuthService
	farmers *fakeFarmerRepo
	admins  *fakeAdminRepo
	notify  *fakeNotifier
	mr      *miniredis.Miniredis
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	f := &authFixture{
		farmers: newFakeFarmerRepo(),
		admins:  newFakeAdminRepo(),
		notify:  &fakeNotifier{},
		mr:      mr,
	}
	otpCache := cache.NewOTPCache(client, 5*time.Minute, 3)
	limiter := cache.NewMemoryRateLimiter(time.Minute, 3)
	f.svc = NewAuthService(f.farmers, f.admins, otpCache, limiter, f.notify, "test-secret", zap.NewNop())
	return f
}

func TestRegisterAndLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Register(ctx, model.RegisterRequest{
		Phone:    "+919800000001",
		Name:     "Ramesh",
		District: "Yavatmal",
		Language: "mr",
		Password: "sugarcane42",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.FarmerID)

	claims, err := f.svc.ValidateFarmerToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.FarmerID, claims.FarmerID)
	assert.Equal(t, "+919800000001", claims.Phone)

	login, err := f.svc.Login(ctx, "+919800000001", "sugarcane42")
	require.NoError(t, err)
	assert.Equal(t, resp.FarmerID, login.FarmerID)

	_, err = f.svc.Login(ctx, "+919800000001", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_DuplicatePhone(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	req := model.RegisterRequest{Phone: "+919800000001", Name: "Ramesh", District: "Yavatmal", Language: "mr"}
	_, err := f.svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrPhoneRegistered)
}

func TestLogin_OTPOnlyAccountHasNoPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, model.RegisterRequest{Phone: "+919800000001", Name: "Ramesh", District: "Yavatmal", Language: "mr"})
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, "+919800000001", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestOTPFlow(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Register(ctx, model.RegisterRequest{Phone: "+919800000001", Name: "Ramesh", District: "Yavatmal", Language: "mr"})
	require.NoError(t, err)

	require.NoError(t, f.svc.RequestOTP(ctx, "+919800000001"))

	// The code is delivered out of band; read it from the store.
	code, err := f.mr.Get("otp:+919800000001:code")
	require.NoError(t, err)
	require.Len(t, code, 6)

	login, err := f.svc.VerifyOTP(ctx, "+919800000001", code)
	require.NoError(t, err)
	assert.Equal(t, resp.FarmerID, login.FarmerID)

	// Single use.
	_, err = f.svc.VerifyOTP(ctx, "+919800000001", code)
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestOTP_WrongCode(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, model.RegisterRequest{Phone: "+919800000001", Name: "Ramesh", District: "Yavatmal", Language: "mr"})
	require.NoError(t, err)
	require.NoError(t, f.svc.RequestOTP(ctx, "+919800000001"))

	_, err = f.svc.VerifyOTP(ctx, "+919800000001", "000000")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestOTP_UnregisteredPhoneIsSilent(t *testing.T) {
	f := newAuthFixture(t)

	// No error and no stored code, so callers cannot probe registration.
	require.NoError(t, f.svc.RequestOTP(context.Background(), "+919800009999"))
	assert.False(t, f.mr.Exists("otp:+919800009999:code"))
}

func TestOTP_RateLimited(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, model.RegisterRequest{Phone: "+919800000001", Name: "Ramesh", District: "Yavatmal", Language: "mr"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.svc.RequestOTP(ctx, "+919800000001"))
	}
	err = f.svc.RequestOTP(ctx, "+919800000001")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestAdminLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("counselor-pw"), bcrypt.MinCost)
	require.NoError(t, err)
	id, err := f.admins.Create(ctx, &model.AdminUser{
		Username:     "patil",
		PasswordHash: string(hash),
		Role:         model.RoleCounselor,
		Name:         "Dr. Patil",
	})
	require.NoError(t, err)

	resp, err := f.svc.AdminLogin(ctx, "patil", "counselor-pw")
	require.NoError(t, err)
	assert.Equal(t, id, resp.AdminID)
	assert.Equal(t, string(model.RoleCounselor), resp.Role)

	claims, err := f.svc.ValidateAdminToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.AdminID)
	assert.Equal(t, model.RoleCounselor, claims.Role)

	_, err = f.svc.AdminLogin(ctx, "patil", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.svc.AdminLogin(ctx, "ghost", "counselor-pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_Garbage(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.ValidateFarmerToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = f.svc.ValidateAdminToken(strings.Repeat("x", 64))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestFarmerTokenRejectedAsAdmin(t *testing.T) {
	f := newAuthFixture(t)

	resp, err := f.svc.Register(context.Background(), model.RegisterRequest{Phone: "+919800000001", Name: "Ramesh", District: "Yavatmal", Language: "mr"})
	require.NoError(t, err)

	// Farmer claims decode to empty admin claims.
	_, err = f.svc.ValidateAdminToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
