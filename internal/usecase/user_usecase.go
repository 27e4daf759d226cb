package usecase

import (
	"context"

	"inventory/internal/domain/entity"
)

// SignupInput registers an account. Only Customer and Seller may sign up.
type SignupInput struct {
	Username string
	Password string
	Role     entity.Role // Empty means Customer.
}

// LoginInput carries login credentials.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is the issued access token and the authenticated account.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase covers self-service account operations.
type UserUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
