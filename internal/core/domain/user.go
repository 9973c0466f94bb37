package domain

import "time"

const (
	RoleCandidate = "candidate"
	RoleEmployer  = "employer"
)

// Profile holds optional candidate-facing details.
type Profile struct {
	Title    string `json:"title,omitempty" bson:"title,omitempty"`
	Bio      string `json:"bio,omitempty" bson:"bio,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// EmailNotifications are per-user opt-in flags, one per event type.
type EmailNotifications struct {
	ApplicationReceived bool `json:"application_received" bson:"application_received"`
	StatusChanged       bool `json:"status_changed" bson:"status_changed"`
}

// User models an account on the board. Email is unique across all users.
// Company is required when the role is employer.
type User struct {
	ID                 string             `json:"id" bson:"_id,omitempty"`
	Name               string             `json:"name" bson:"name"`
	Email              string             `json:"email" bson:"email"`
	PasswordHash       string             `json:"-" bson:"password_hash"`
	Role               string             `json:"role" bson:"role"`
	Company            string             `json:"company,omitempty" bson:"company,omitempty"`
	Profile            Profile            `json:"profile" bson:"profile"`
	ResumeURL          string             `json:"resume_url,omitempty" bson:"resume_url,omitempty"`
	EmailNotifications EmailNotifications `json:"email_notifications" bson:"email_notifications"`
	CreatedAt          time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" bson:"updated_at"`
}
