package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kisanmitra/internal/model"
)

type AlertRepo interface {
	Create(ctx context.Context, alert *model.Alert) (string, error)
	GetByID(ctx context.Context, id string) (*model.Alert, error)
	List(ctx context.Context, status model.AlertStatus, assignedToID string) ([]*model.Alert, error)
	ExistsForCheckIn(ctx context.Context, checkInID string) (bool, error)
	// SetStatus updates the status and stamps the transition timestamp
	// when one applies.
	SetStatus(ctx context.Context, id string, status model.AlertStatus, resolution string) error
	Assign(ctx context.Context, id, counselorID string) error
}

type alertRepo struct {
	collection *mongo.Collection
}

// NewAlertRepo creates a new alert repository
func NewAlertRepo(db *mongo.Database) AlertRepo {
	return &alertRepo{collection: db.Collection("alerts")}
}

func (r *alertRepo) Create(ctx context.Context, alert *model.Alert) (string, error) {
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	if alert.Status == "" {
		alert.Status = model.AlertPending
	}

	result, err := r.collection.InsertOne(ctx, alert)
	if err != nil {
		return "", err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		alert.ID = oid.Hex()
	}
	return alert.ID, nil
}

func (r *alertRepo) GetByID(ctx context.Context, id string) (*model.Alert, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var alert model.Alert
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&alert); err != nil {
		return nil, err
	}
	alert.ID = id
	return &alert, nil
}

func (r *alertRepo) List(ctx context.Context, status model.AlertStatus, assignedToID string) ([]*model.Alert, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if assignedToID != "" {
		filter["assignedToId"] = assignedToID
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var alerts []*model.Alert
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepo) ExistsForCheckIn(ctx context.Context, checkInID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"checkInId": checkInID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *alertRepo) SetStatus(ctx context.Context, id string, status model.AlertStatus, resolution string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	set := bson.M{"status": status}
	now := time.Now()
	switch status {
	case model.AlertAcknowledged:
		set["acknowledgedAt"] = now
	case model.AlertResolved:
		set["resolvedAt"] = now
		if resolution != "" {
			set["resolution"] = resolution
		}
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	return err
}

func (r *alertRepo) Assign(ctx context.Context, id, counselorID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"assignedToId": counselorID}})
	return err
}
