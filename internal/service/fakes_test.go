package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"kisanmitra/internal/model"
)

// In-memory repository fakes for service tests. IDs are sequential so tests
// can predict them.

type fakeFarmerRepo struct {
	mu      sync.Mutex
	farmers map[string]*model.Farmer
	nextID  int

	statusErr error
}

func newFakeFarmerRepo() *fakeFarmerRepo {
	return &fakeFarmerRepo{farmers: make(map[string]*model.Farmer)}
}

func (r *fakeFarmerRepo) Create(_ context.Context, farmer *model.Farmer) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	farmer.ID = fmt.Sprintf("farmer-%d", r.nextID)
	farmer.CreatedAt = time.Now()
	cp := *farmer
	r.farmers[farmer.ID] = &cp
	return farmer.ID, nil
}

func (r *fakeFarmerRepo) GetByID(_ context.Context, id string) (*model.Farmer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	farmer, ok := r.farmers[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *farmer
	return &cp, nil
}

func (r *fakeFarmerRepo) GetByPhone(_ context.Context, phone string) (*model.Farmer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, farmer := range r.farmers {
		if farmer.Phone == phone {
			cp := *farmer
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeFarmerRepo) UpdateStatus(_ context.Context, id string, status model.FarmerStatus) error {
	if r.statusErr != nil {
		return r.statusErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	farmer, ok := r.farmers[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	farmer.Status = status
	return nil
}

func (r *fakeFarmerRepo) AssignCounselor(_ context.Context, id, counselorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	farmer, ok := r.farmers[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	farmer.AssignedCounselorID = counselorID
	return nil
}

func (r *fakeFarmerRepo) List(_ context.Context, district string) ([]*model.Farmer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Farmer
	for _, farmer := range r.farmers {
		if district != "" && farmer.District != district {
			continue
		}
		cp := *farmer
		out = append(out, &cp)
	}
	return out, nil
}

type fakeCheckInRepo struct {
	mu       sync.Mutex
	checkIns map[string]*model.CheckIn
	nextID   int

	createErr error
	flagsErr  error
}

func newFakeCheckInRepo() *fakeCheckInRepo {
	return &fakeCheckInRepo{checkIns: make(map[string]*model.CheckIn)}
}

func (r *fakeCheckInRepo) Create(_ context.Context, checkIn *model.CheckIn) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	checkIn.ID = fmt.Sprintf("checkin-%d", r.nextID)
	if checkIn.CreatedAt.IsZero() {
		checkIn.CreatedAt = time.Now()
	}
	cp := *checkIn
	r.checkIns[checkIn.ID] = &cp
	return checkIn.ID, nil
}

func (r *fakeCheckInRepo) GetByID(_ context.Context, id string) (*model.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	checkIn, ok := r.checkIns[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *checkIn
	return &cp, nil
}

func (r *fakeCheckInRepo) GetByFarmerID(_ context.Context, farmerID string, limit int64) ([]*model.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.CheckIn
	for _, checkIn := range r.checkIns {
		if checkIn.FarmerID != farmerID {
			continue
		}
		cp := *checkIn
		out = append(out, &cp)
	}
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeCheckInRepo) UpdateFlags(_ context.Context, id string, alertTriggered, counselorNotified bool) error {
	if r.flagsErr != nil {
		return r.flagsErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	checkIn, ok := r.checkIns[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	checkIn.AlertTriggered = alertTriggered
	checkIn.CounselorNotified = counselorNotified
	return nil
}

func (r *fakeCheckInRepo) FindTriggeredSince(_ context.Context, since time.Time) ([]*model.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.CheckIn
	for _, checkIn := range r.checkIns {
		if checkIn.AlertTriggered && !checkIn.CreatedAt.Before(since) {
			cp := *checkIn
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeAlertRepo struct {
	mu     sync.Mutex
	alerts map[string]*model.Alert
	nextID int

	createErr error
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{alerts: make(map[string]*model.Alert)}
}

func (r *fakeAlertRepo) Create(_ context.Context, alert *model.Alert) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	alert.ID = fmt.Sprintf("alert-%d", r.nextID)
	if alert.Status == "" {
		alert.Status = model.AlertPending
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	cp := *alert
	r.alerts[alert.ID] = &cp
	return alert.ID, nil
}

func (r *fakeAlertRepo) GetByID(_ context.Context, id string) (*model.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	alert, ok := r.alerts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *alert
	return &cp, nil
}

func (r *fakeAlertRepo) List(_ context.Context, status model.AlertStatus, assignedToID string) ([]*model.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Alert
	for _, alert := range r.alerts {
		if status != "" && alert.Status != status {
			continue
		}
		if assignedToID != "" && alert.AssignedToID != assignedToID {
			continue
		}
		cp := *alert
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAlertRepo) ExistsForCheckIn(_ context.Context, checkInID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, alert := range r.alerts {
		if alert.CheckInID == checkInID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAlertRepo) SetStatus(_ context.Context, id string, status model.AlertStatus, resolution string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	alert, ok := r.alerts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	alert.Status = status
	now := time.Now()
	switch status {
	case model.AlertAcknowledged:
		alert.AcknowledgedAt = &now
	case model.AlertResolved:
		alert.ResolvedAt = &now
		if resolution != "" {
			alert.Resolution = resolution
		}
	}
	return nil
}

func (r *fakeAlertRepo) Assign(_ context.Context, id, counselorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	alert, ok := r.alerts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	alert.AssignedToID = counselorID
	return nil
}

type fakeAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*model.AdminUser
	nextID int
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*model.AdminUser)}
}

func (r *fakeAdminRepo) Create(_ context.Context, admin *model.AdminUser) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	admin.ID = fmt.Sprintf("admin-%d", r.nextID)
	cp := *admin
	r.admins[admin.ID] = &cp
	return admin.ID, nil
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id string) (*model.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *admin
	return &cp, nil
}

func (r *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*model.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, admin := range r.admins {
		if admin.Username == username {
			cp := *admin
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type sentReminder struct {
	farmerID string
	message  string
	channel  string
}

type sentAlert struct {
	counselorContact string
	farmerName       string
	riskLevel        model.RiskLevel
	district         string
}

type fakeNotifier struct {
	mu        sync.Mutex
	reminders []sentReminder
	alerts    []sentAlert

	alertErr error
}

func (n *fakeNotifier) SendReminder(_ context.Context, farmerID, message, channel string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reminders = append(n.reminders, sentReminder{farmerID, message, channel})
	return nil
}

func (n *fakeNotifier) SendAlert(_ context.Context, counselorContact, farmerName string, riskLevel model.RiskLevel, district string) error {
	if n.alertErr != nil {
		return n.alertErr
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, sentAlert{counselorContact, farmerName, riskLevel, district})
	return nil
}

type broadcastEvent struct {
	alert  *model.Alert
	farmer *model.Farmer
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []broadcastEvent
}

func (b *fakeBroadcaster) BroadcastAlert(alert *model.Alert, farmer *model.Farmer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, broadcastEvent{alert: alert, farmer: farmer})
}

var errBoom = errors.New("boom")
