package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"kisanmitra/internal/config"
	"kisanmitra/internal/model"
)

// Seeds a default admin and a counselor account so the dashboard is usable
// on a fresh database. Idempotent on username.
func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)
	admins := db.Collection("admin_users")

	accounts := []struct {
		username string
		password string
		role     model.AdminRole
		name     string
		phone    string
		district string
	}{
		{"admin", "admin123", model.RoleAdmin, "Platform Admin", "+919800000000", ""},
		{"counselor.yavatmal", "counselor123", model.RoleCounselor, "Dr. Patil", "+919800000099", "Yavatmal"},
	}

	for _, acc := range accounts {
		count, err := admins.CountDocuments(ctx, bson.M{"username": acc.username})
		if err != nil {
			log.Fatalf("Failed to query admin_users: %v", err)
		}
		if count > 0 {
			fmt.Printf("Account '%s' already exists, skipping\n", acc.username)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		admin := model.AdminUser{
			Username:     acc.username,
			PasswordHash: string(hash),
			Role:         acc.role,
			Name:         acc.name,
			Phone:        acc.phone,
			District:     acc.district,
			CreatedAt:    time.Now(),
		}
		if _, err := admins.InsertOne(ctx, admin); err != nil {
			log.Fatalf("Failed to insert account '%s': %v", acc.username, err)
		}
		fmt.Printf("Created %s account '%s'\n", acc.role, acc.username)
	}
}
