package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id string) (User, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a registered user. ID is supplied by the client and is
// distinct from any storage-internal key.
type User struct {
	ID            string
	FirstName     string
	LastName      string
	Birthday      time.Time
	MaritalStatus string
}

// CreateUserParams contains parameters to register a user.
type CreateUserParams struct {
	ID            string
	FirstName     string
	LastName      string
	Birthday      time.Time
	MaritalStatus string
}

// UserSummary is a user together with the lifetime sum of their costs.
type UserSummary struct {
	ID        string
	FirstName string
	LastName  string
	Total     float64
}
