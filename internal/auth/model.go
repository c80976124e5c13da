// Package auth contains sign-up and sign-in for the recruiter account.
package auth

import "context"

// User is a stored recruiter account. PasswordHash never leaves this package.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

// Store is the persistence surface the service needs.
type Store interface {
	// InsertUser persists a new account; faults.ErrConflict when the email
	// is already registered.
	InsertUser(ctx context.Context, u User) (User, error)
	// GetUserByEmail returns faults.ErrNotFound when absent.
	GetUserByEmail(ctx context.Context, email string) (User, error)
}
