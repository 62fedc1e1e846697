package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"herbtrack/internal/server/models"
	"herbtrack/internal/shared"
)

type fakeUsersRepo struct {
	byUsername map[string]*models.User
	byEmail    map[string]*models.User

	created   []*models.User
	createErr error
	lookupErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = int64(len(f.created) + 1)
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, shared.ErrorNotFound
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, shared.ErrorNotFound
}

func TestRegister_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := NewUserService(repo)

	user, err := s.Register(context.Background(), "alice", "a@b.c", "secret")
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)
	require.Equal(t, "alice", user.Username)

	// password is stored hashed, never verbatim
	require.NotEqual(t, "secret", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := &fakeUsersRepo{
		byUsername: map[string]*models.User{"alice": {ID: 1, Username: "alice"}},
	}
	s := NewUserService(repo)

	_, err := s.Register(context.Background(), "alice", "other@b.c", "secret")
	require.True(t, errors.Is(err, shared.ErrorUsernameAlreadyExists), "got %v", err)
	require.Empty(t, repo.created)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUsersRepo{
		byEmail: map[string]*models.User{"a@b.c": {ID: 1, Email: "a@b.c"}},
	}
	s := NewUserService(repo)

	_, err := s.Register(context.Background(), "bob", "a@b.c", "secret")
	require.True(t, errors.Is(err, shared.ErrorEmailAlreadyExists), "got %v", err)
	require.Empty(t, repo.created)
}

func TestRegister_LookupError(t *testing.T) {
	repo := &fakeUsersRepo{lookupErr: errors.New("db down")}
	s := NewUserService(repo)

	_, err := s.Register(context.Background(), "alice", "a@b.c", "secret")
	require.Error(t, err)
	require.False(t, errors.Is(err, shared.ErrorUsernameAlreadyExists))
}

func TestLogin_Flows(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUsersRepo{
		byUsername: map[string]*models.User{
			"alice": {ID: 1, Username: "alice", PasswordHash: string(hash)},
		},
	}
	s := NewUserService(repo)
	ctx := context.Background()

	user, err := s.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)

	_, err = s.Login(ctx, "alice", "wrong")
	require.True(t, errors.Is(err, shared.ErrorInvalidLoginPassword), "got %v", err)

	// unknown user is indistinguishable from a bad password
	_, err = s.Login(ctx, "ghost", "secret")
	require.True(t, errors.Is(err, shared.ErrorInvalidLoginPassword), "got %v", err)
}
