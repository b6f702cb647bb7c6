package impl

import (
	"context"
	"log/slog"
	"time"

	"sokoo/internal/domain/entity"
	domainerrors "sokoo/internal/domain/errors"
	"sokoo/internal/domain/repository"
	"sokoo/internal/domain/service"
	"sokoo/internal/usecase"
	"sokoo/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// SignUp validates and creates a new account.
func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.User, error) {
	// A JSON null body binds to a nil input.
	if input == nil {
		return nil, domainerrors.NewValidationError(map[string]string{"body": "Request body is required"})
	}

	srv.logger.Info("Signing up user", "email", input.Email)

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	role := entity.RoleCustomer
	if input.Role != "" {
		role = entity.Role(input.Role)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New(),
		Name:         input.FullName,
		Email:        input.Email,
		Role:         role,
		Status:       entity.UserStatusActive,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a role-carrying access token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.NewValidationError(map[string]string{"body": "Request body is required"})
	}

	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}
	if user.Status != entity.UserStatusActive {
		return nil, errors.Wrapf(domainerrors.ErrForbidden, "account is %s", user.Status)
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.logger.Info("User logged in", "userID", user.ID, "role", user.Role)

	return &usecase.LoginOutput{
		AccessToken: token,
		User:        user,
	}, nil
}

// ListUsers returns users matching the query (admin only).
func (srv *accountService) ListUsers(ctx context.Context, actor usecase.Actor, term, role, status string) ([]*entity.User, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only admins can list users")
	}

	var users []*entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().List(ctx, repository.UserQuery{
			Term:   term,
			Role:   role,
			Status: status,
		})
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		users = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}
