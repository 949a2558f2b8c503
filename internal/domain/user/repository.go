package user

import (
	"context"

	"github.com/khabelelethako4-coder/Career-Guidance-Application-Backend/internal/common"
)

type Repository interface {
	Create(ctx context.Context, u User) (*User, error)
	GetByID(ctx context.Context, id common.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	SetEmailVerified(ctx context.Context, id common.UUID, verified bool) error
}
