package usecase

import (
	"context"

	"sokoo/internal/domain/entity"
)

// SignUpInput defines the data required to create an account. The confirm
// field must equal the primary password and the terms checkbox must be true.
type SignUpInput struct {
	FullName        string `json:"full_name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	TermsAccepted   bool   `json:"terms_accepted" validate:"eq=true"`
	Role            string `json:"role" validate:"omitempty,oneof=shop-owner customer"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput returns the access token issued on a successful login.
type LoginOutput struct {
	AccessToken string       `json:"access_token"`
	User        *entity.User `json:"user"`
}

// AccountUsecase covers account creation, login, and the admin user listing.
type AccountUsecase interface {
	// SignUp validates and creates a new account. New accounts default to the
	// customer role unless they sign up as a shop owner.
	SignUp(ctx context.Context, input *SignUpInput) (*entity.User, error)

	// Login verifies credentials and issues a role-carrying access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ListUsers returns users matching the query (admin only).
	ListUsers(ctx context.Context, actor Actor, term, role, status string) ([]*entity.User, error)
}
