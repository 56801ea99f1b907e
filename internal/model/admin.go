package model

import "time"

// AdminRole distinguishes platform admins from counselors
type AdminRole string

const (
	RoleAdmin     AdminRole = "admin"
	RoleCounselor AdminRole = "counselor"
)

// AdminUser is an admin or counselor account
type AdminUser struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Username     string    `json:"username" bson:"username"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	Role         AdminRole `json:"role" bson:"role"`
	Name         string    `json:"name" bson:"name"`
	Phone        string    `json:"phone" bson:"phone"`
	District     string    `json:"district" bson:"district"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
