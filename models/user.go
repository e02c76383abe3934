// models/user.go
package models

import "time"

// User represents a salon customer.
type User struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Phone         string    `bson:"phone" json:"phone"`
	Email         string    `bson:"email" json:"email"`
	Gender        string    `bson:"gender" json:"gender"`
	CreditBalance float64   `bson:"creditBalance" json:"creditBalance"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RegistrationInput is the payload accepted when a verified identity
// completes registration. Only non-empty checks are applied to the required
// fields; deeper identity validation belongs to the external provider.
type RegistrationInput struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required"`
	Gender string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
}

// ProfileUpdate carries the editable profile fields; empty fields are left
// unchanged. Phone changes go through the verified phone-change flow.
type ProfileUpdate struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
	Gender string `json:"gender,omitempty"`
}
