package user

import (
	"context"
	"strings"
	"sync"

	"github.com/lingua-launchpad/academy-server/internal/infrastructure/uuid"
)

// UserRepositoryImpl in-memory user registry. Accounts only live for the
// lifetime of the process, there is no persistence boundary in this system.
type UserRepositoryImpl struct {
	UUIDGenerator uuid.Generator

	mu    sync.RWMutex
	users map[string]*UserModel // keyed by id
}

var _ UserRepository = &UserRepositoryImpl{}

func NewUserRepository(UUIDGenerator uuid.Generator) *UserRepositoryImpl {
	return &UserRepositoryImpl{
		UUIDGenerator: UUIDGenerator,
		users:         make(map[string]*UserModel),
	}
}

// FindByCredential look up a user by username or email
func (repo *UserRepositoryImpl) FindByCredential(ctx context.Context, post *UserModel) (*UserModel, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, u := range repo.users {
		if strings.EqualFold(u.Username, post.Username) || strings.EqualFold(u.Email, post.Username) ||
			strings.EqualFold(u.Email, post.Email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (repo *UserRepositoryImpl) SaveUser(ctx context.Context, post *UserModel) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, u := range repo.users {
		if strings.EqualFold(u.Username, post.Username) || strings.EqualFold(u.Email, post.Email) {
			return ErrDuplicatedUser
		}
	}
	id, err := repo.UUIDGenerator.Generate()
	if err != nil {
		return err
	}
	post.ID = id

	clone := *post
	repo.users[id] = &clone
	return nil
}

func (repo *UserRepositoryImpl) UpdateUser(ctx context.Context, post *UserModel) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.users[post.ID]; !ok {
		return ErrNoSuchUser
	}
	clone := *post
	repo.users[post.ID] = &clone
	return nil
}
