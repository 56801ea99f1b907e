package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kisanmitra/internal/model"
	"kisanmitra/internal/notify"
)

func newFarmerFixture() (*FarmerService, *fakeFarmerRepo, *fakeAdminRepo, *fakeNotifier) {
	farmers := newFakeFarmerRepo()
	admins := newFakeAdminRepo()
	notifier := &fakeNotifier{}
	return NewFarmerService(farmers, admins, notifier, zap.NewNop()), farmers, admins, notifier
}

func TestAssignCounselor(t *testing.T) {
	svc, farmers, admins, _ := newFarmerFixture()
	ctx := context.Background()

	farmerID, err := farmers.Create(ctx, &model.Farmer{Phone: "+919800000001", Name: "Ramesh", District: "Yavatmal", Language: "mr"})
	require.NoError(t, err)
	counselorID, err := admins.Create(ctx, &model.AdminUser{Username: "patil", Role: model.RoleCounselor})
	require.NoError(t, err)
	adminID, err := admins.Create(ctx, &model.AdminUser{Username: "boss", Role: model.RoleAdmin})
	require.NoError(t, err)

	require.NoError(t, svc.AssignCounselor(ctx, farmerID, counselorID))
	farmer, err := svc.Get(ctx, farmerID)
	require.NoError(t, err)
	assert.Equal(t, counselorID, farmer.AssignedCounselorID)

	// Only accounts with the counselor role can receive routing.
	err = svc.AssignCounselor(ctx, farmerID, adminID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.AssignCounselor(ctx, farmerID, "admin-999")
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.AssignCounselor(ctx, "farmer-999", counselorID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemind(t *testing.T) {
	svc, farmers, _, notifier := newFarmerFixture()
	ctx := context.Background()

	farmerID, err := farmers.Create(ctx, &model.Farmer{Phone: "+919800000001", Name: "Ramesh", District: "Yavatmal", Language: "mr"})
	require.NoError(t, err)

	require.NoError(t, svc.Remind(ctx, farmerID, "time for your weekly check-in", ""))
	require.Len(t, notifier.reminders, 1)
	assert.Equal(t, farmerID, notifier.reminders[0].farmerID)
	assert.Equal(t, notify.ChannelSMS, notifier.reminders[0].channel)

	err = svc.Remind(ctx, "farmer-999", "hello", notify.ChannelApp)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFarmerList_DistrictFilter(t *testing.T) {
	svc, farmers, _, _ := newFarmerFixture()
	ctx := context.Background()

	_, err := farmers.Create(ctx, &model.Farmer{Phone: "+911", Name: "A", District: "Yavatmal", Language: "mr"})
	require.NoError(t, err)
	_, err = farmers.Create(ctx, &model.Farmer{Phone: "+912", Name: "B", District: "Wardha", Language: "mr"})
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	yavatmal, err := svc.List(ctx, "Yavatmal")
	require.NoError(t, err)
	require.Len(t, yavatmal, 1)
	assert.Equal(t, "A", yavatmal[0].Name)
}
