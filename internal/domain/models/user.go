// internal/domain/models/user.go
package models

import "time"

// User is a registered account. The bcrypt hash lives on the same
// document but never leaves the store layer in JSON.
type User struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	Role      Role      `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	IsActive  bool      `bson:"is_active" json:"is_active"`

	PasswordHash string `bson:"password" json:"-"`
}

// UserCreate is the registration payload.
type UserCreate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// UserLogin is the login payload.
type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
