package models

import "time"

// Role constants
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Profile maps an authenticated subject to its application role
type Profile struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Role      string `gorm:"not null;default:'user'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
