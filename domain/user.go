package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         UserName
	Email        Email
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user without credentials, the legacy non-auth path.
func NewUser(name UserName, email Email) User {
	return User{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
	}
}

// RegisterUser creates a user with a password hash attached.
func RegisterUser(name UserName, email Email, passwordHash string) User {
	user := NewUser(name, email)
	user.PasswordHash = passwordHash
	return user
}

// UserFromPrimitives reconstructs a user from storage without re-validating.
func UserFromPrimitives(id uuid.UUID, name, email, passwordHash string, createdAt, updatedAt time.Time) User {
	return User{
		ID:           id,
		Name:         UserName(name),
		Email:        Email(email),
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

func (u *User) UpdateName(name UserName) {
	u.Name = name
}

func (u *User) UpdateEmail(email Email) {
	u.Email = email
}

func (u *User) DisplayName() string {
	return string(u.Name) + " <" + string(u.Email) + ">"
}
