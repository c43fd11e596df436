// Package repository defines the storage interfaces the service layer
// depends on. Concrete implementations live in subpackages (sqlite).
package repository

import (
	"context"

	"github.com/hireorbit/backend/internal/model"
)

// ListOptions controls pagination for list queries.
type ListOptions struct {
	Limit  int
	Offset int
}

// UserRepository persists accounts.
//
// CreateUser expects the password already hashed; repositories never see a
// plaintext password. The database's unique constraints on email and
// username are the authoritative duplicate guard — CreateUser reports a
// violation as apperror.ErrConflict, which the service layer relies on when
// two registrations race past its existence check.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
}

// JobRepository persists job postings scoped to their owner.
type JobRepository interface {
	CreateJob(ctx context.Context, job *model.Job) error
	ListJobsByOwner(ctx context.Context, ownerID string, opts ListOptions) ([]model.Job, error)
}
