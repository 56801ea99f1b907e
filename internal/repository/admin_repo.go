package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"kisanmitra/internal/model"
)

type AdminRepo interface {
	Create(ctx context.Context, admin *model.AdminUser) (string, error)
	GetByID(ctx context.Context, id string) (*model.AdminUser, error)
	GetByUsername(ctx context.Context, username string) (*model.AdminUser, error)
}

type adminRepo struct {
	collection *mongo.Collection
}

// NewAdminRepo creates a new admin-user repository
func NewAdminRepo(db *mongo.Database) AdminRepo {
	return &adminRepo{collection: db.Collection("admin_users")}
}

func (r *adminRepo) Create(ctx context.Context, admin *model.AdminUser) (string, error) {
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, admin)
	if err != nil {
		return "", err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		admin.ID = oid.Hex()
	}
	return admin.ID, nil
}

func (r *adminRepo) GetByID(ctx context.Context, id string) (*model.AdminUser, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var admin model.AdminUser
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&admin); err != nil {
		return nil, err
	}
	admin.ID = id
	return &admin, nil
}

func (r *adminRepo) GetByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var admin model.AdminUser
	if err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&admin); err != nil {
		return nil, err
	}
	return &admin, nil
}
