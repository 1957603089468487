package user

import (
	"context"
	"testing"

	"github.com/lingua-launchpad/academy-server/internal/infrastructure/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *UserRepositoryImpl {
	t.Helper()
	return NewUserRepository(uuid.NewNanoIDGenerator(12))
}

func TestUserRepositorySaveAndFind(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveUser(ctx, &UserModel{
		Username: "maria",
		Email:    "maria@example.com",
		Password: "hashed",
	}))

	found, err := repo.FindByCredential(ctx, &UserModel{Username: "MARIA"})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.NotEmpty(t, found.ID)
	assert.Equal(t, "maria", found.Username)

	byEmail, err := repo.FindByCredential(ctx, &UserModel{Email: "Maria@Example.com"})
	require.NoError(t, err)
	require.NotNil(t, byEmail)

	missing, err := repo.FindByCredential(ctx, &UserModel{Username: "nobody"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryReturnsCopies(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveUser(ctx, &UserModel{Username: "maria", Email: "maria@example.com"}))

	found, err := repo.FindByCredential(ctx, &UserModel{Username: "maria"})
	require.NoError(t, err)
	found.Username = "scribbled"

	fresh, err := repo.FindByCredential(ctx, &UserModel{Username: "maria"})
	require.NoError(t, err)
	require.NotNil(t, fresh)
	assert.Equal(t, "maria", fresh.Username)
}

func TestUserUseCaseSignUpRejectsDuplicates(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	_, err := uc.SignUp(ctx, &UserModel{Username: "maria", Email: "maria@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = uc.SignUp(ctx, &UserModel{Username: "maria", Email: "other@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrDuplicatedUser)
}

func TestUserUseCaseExists(t *testing.T) {
	repo := newTestRepo(t)
	uc := NewUserUseCase(repo)
	ctx := context.Background()

	existing, err := uc.Exists(ctx, &UserModel{Username: "maria"})
	require.NoError(t, err)
	assert.False(t, existing)

	_, err = uc.SignUp(ctx, &UserModel{Username: "maria", Email: "maria@example.com", Password: "secret1"})
	require.NoError(t, err)

	existing, err = uc.Exists(ctx, &UserModel{Username: "maria"})
	require.NoError(t, err)
	assert.True(t, existing)
}
