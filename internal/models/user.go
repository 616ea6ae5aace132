package models

import (
	"time"

	"github.com/lib/pq"
)

// Experience levels accepted on registration and profile updates.
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
)

type User struct {
	ID              string         `gorm:"type:uuid;primaryKey" json:"id"`
	Email           string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string         `gorm:"not null" json:"-"`
	FullName        string         `gorm:"not null" json:"full_name"`
	Skills          pq.StringArray `gorm:"type:text[]" json:"skills"`
	Interests       pq.StringArray `gorm:"type:text[]" json:"interests"`
	ExperienceLevel string         `gorm:"default:beginner" json:"experience_level"`
	ReputationScore int            `gorm:"default:0" json:"reputation_score"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time      `json:"created_at"`
}

type RegisterRequest struct {
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=8"`
	FullName        string   `json:"full_name" binding:"required"`
	Skills          []string `json:"skills"`
	Interests       []string `json:"interests"`
	ExperienceLevel string   `json:"experience_level" binding:"omitempty,oneof=beginner intermediate advanced"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the allow-listed profile fields. Pointers
// distinguish "omitted" from "set to empty".
type UpdateProfileRequest struct {
	FullName        *string   `json:"full_name"`
	Skills          *[]string `json:"skills"`
	Interests       *[]string `json:"interests"`
	ExperienceLevel *string   `json:"experience_level" binding:"omitempty,oneof=beginner intermediate advanced"`
}
