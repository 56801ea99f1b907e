package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"kisanmitra/internal/model"
)

type FarmerRepo interface {
	Create(ctx context.Context, farmer *model.Farmer) (string, error)
	GetByID(ctx context.Context, id string) (*model.Farmer, error)
	GetByPhone(ctx context.Context, phone string) (*model.Farmer, error)
	UpdateStatus(ctx context.Context, id string, status model.FarmerStatus) error
	AssignCounselor(ctx context.Context, id, counselorID string) error
	List(ctx context.Context, district string) ([]*model.Farmer, error)
}

type farmerRepo struct {
	collection *mongo.Collection
}

// NewFarmerRepo creates a new farmer repository
func NewFarmerRepo(db *mongo.Database) FarmerRepo {
	return &farmerRepo{collection: db.Collection("farmers")}
}

func (r *farmerRepo) Create(ctx context.Context, farmer *model.Farmer) (string, error) {
	now := time.Now()
	farmer.CreatedAt = now
	farmer.UpdatedAt = now
	if farmer.Status == "" {
		farmer.Status = model.FarmerStatusActive
	}

	result, err := r.collection.InsertOne(ctx, farmer)
	if err != nil {
		return "", err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		farmer.ID = oid.Hex()
	}
	return farmer.ID, nil
}

func (r *farmerRepo) GetByID(ctx context.Context, id string) (*model.Farmer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var farmer model.Farmer
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&farmer); err != nil {
		return nil, err
	}
	farmer.ID = id
	return &farmer, nil
}

func (r *farmerRepo) GetByPhone(ctx context.Context, phone string) (*model.Farmer, error) {
	var farmer model.Farmer
	if err := r.collection.FindOne(ctx, bson.M{"phone": phone}).Decode(&farmer); err != nil {
		return nil, err
	}
	return &farmer, nil
}

func (r *farmerRepo) UpdateStatus(ctx context.Context, id string, status model.FarmerStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *farmerRepo) AssignCounselor(ctx context.Context, id, counselorID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"assignedCounselorId": counselorID, "updatedAt": time.Now()}}
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *farmerRepo) List(ctx context.Context, district string) ([]*model.Farmer, error) {
	filter := bson.M{}
	if district != "" {
		filter["district"] = district
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var farmers []*model.Farmer
	if err := cursor.All(ctx, &farmers); err != nil {
		return nil, err
	}
	return farmers, nil
}
