package memory

import (
	"context"
	"strings"

	"sokoo/internal/domain/entity"
	"sokoo/internal/domain/filter"
	"sokoo/internal/domain/repository"

	"github.com/google/uuid"
)

// userRepository implements repository.UserRepository over the shared store.
type userRepository struct {
	store *Store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, user := range repo.store.users {
		if user.ID == id {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, user := range repo.store.users {
		if strings.EqualFold(user.Email, email) {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// List retrieves users matching the query, preserving insertion order.
func (repo *userRepository) List(_ context.Context, query repository.UserQuery) ([]*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	matched := filter.Apply(repo.store.users,
		filter.Text(query.Term,
			func(u *entity.User) string { return u.Name },
			func(u *entity.User) string { return u.Email },
		),
		filter.Category(query.Role, func(u *entity.User) string { return u.Role.String() }),
		filter.Category(query.Status, func(u *entity.User) string { return u.Status.String() }),
	)

	users := make([]*entity.User, 0, len(matched))
	for _, user := range matched {
		users = append(users, cloneUser(user))
	}

	return users, nil
}

// Create persists a new user. Emails are unique, case-insensitively.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for _, existing := range repo.store.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return repository.ErrEmailTaken
		}
	}

	repo.store.users = append(repo.store.users, cloneUser(user))

	return nil
}

// Update modifies an existing user in place.
func (repo *userRepository) Update(_ context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for i, existing := range repo.store.users {
		if existing.ID == user.ID {
			repo.store.users[i] = cloneUser(user)

			return nil
		}
	}

	return repository.ErrUserNotFound
}
