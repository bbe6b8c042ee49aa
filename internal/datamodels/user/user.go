package user

import (
	"context"
	"time"
)

// Roles understood by the dashboard auth check.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is an account. Passwords are stored salted and hashed, never raw.
type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:128;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Salt      string    `gorm:"size:64" json:"-"`
	Role      string    `gorm:"size:16;not null" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// Repository is the user persistence contract.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	Count(ctx context.Context) (int64, error)
}
