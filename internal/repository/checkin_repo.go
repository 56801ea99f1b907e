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

type CheckInRepo interface {
	Create(ctx context.Context, checkIn *model.CheckIn) (string, error)
	GetByID(ctx context.Context, id string) (*model.CheckIn, error)
	GetByFarmerID(ctx context.Context, farmerID string, limit int64) ([]*model.CheckIn, error)
	// UpdateFlags sets the only two mutable fields of a check-in.
	UpdateFlags(ctx context.Context, id string, alertTriggered, counselorNotified bool) error
	// FindTriggeredSince returns check-ins with alertTriggered=true created
	// after the cutoff, for alert reconciliation.
	FindTriggeredSince(ctx context.Context, since time.Time) ([]*model.CheckIn, error)
}

type checkInRepo struct {
	collection *mongo.Collection
}

// NewCheckInRepo creates a new check-in repository
func NewCheckInRepo(db *mongo.Database) CheckInRepo {
	return &checkInRepo{collection: db.Collection("checkins")}
}

func (r *checkInRepo) Create(ctx context.Context, checkIn *model.CheckIn) (string, error) {
	if checkIn.CreatedAt.IsZero() {
		checkIn.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, checkIn)
	if err != nil {
		return "", err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		checkIn.ID = oid.Hex()
	}
	return checkIn.ID, nil
}

func (r *checkInRepo) GetByID(ctx context.Context, id string) (*model.CheckIn, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var checkIn model.CheckIn
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&checkIn); err != nil {
		return nil, err
	}
	checkIn.ID = id
	return &checkIn, nil
}

func (r *checkInRepo) GetByFarmerID(ctx context.Context, farmerID string, limit int64) ([]*model.CheckIn, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"farmerId": farmerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checkIns []*model.CheckIn
	if err := cursor.All(ctx, &checkIns); err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *checkInRepo) UpdateFlags(ctx context.Context, id string, alertTriggered, counselorNotified bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"alertTriggered":    alertTriggered,
		"counselorNotified": counselorNotified,
	}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *checkInRepo) FindTriggeredSince(ctx context.Context, since time.Time) ([]*model.CheckIn, error) {
	filter := bson.M{
		"alertTriggered": true,
		"createdAt":      bson.M{"$gte": since},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checkIns []*model.CheckIn
	if err := cursor.All(ctx, &checkIns); err != nil {
		return nil, err
	}
	return checkIns, nil
}
