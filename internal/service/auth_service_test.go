package service_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"testing"

	"interview-prep-service/internal/jwt"
	"interview-prep-service/internal/model"
	"interview-prep-service/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]*model.User
	byID    map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*model.User{},
		byID:    map[uuid.UUID]*model.User{},
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) (uuid.UUID, error) {
	id := uuid.New()
	stored := *user
	stored.ID = id
	f.byEmail[stored.Email] = &stored
	f.byID[id] = &stored
	return id, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := service.NewAuthService(repo)

	user, token, err := svc.RegisterUser(context.Background(), "Alice", "Alice@Example.com", "correct horse", nil)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// email is normalized to lowercase
	require.Equal(t, "alice@example.com", user.Email)

	// stored hash verifies against the plaintext but never equals it
	require.NotEqual(t, "correct horse", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))

	// the hash must never appear in a serialized user
	b, err := json.Marshal(user)
	require.NoError(t, err)
	require.NotContains(t, string(b), user.PasswordHash)
	require.NotContains(t, strings.ToLower(string(b)), "password")
}

func TestAuthService_LoginUser_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := service.NewAuthService(repo)

	_, _, err := svc.RegisterUser(context.Background(), "Alice", "alice@example.com", "correct horse", nil)
	require.NoError(t, err)

	_, _, err = svc.LoginUser(context.Background(), "alice@example.com", "battery staple")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_LoginUser_UnknownEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := service.NewAuthService(newFakeUserRepo())

	_, _, err := svc.LoginUser(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthService_LoginUser_TokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	repo := newFakeUserRepo()
	svc := service.NewAuthService(repo)

	registered, _, err := svc.RegisterUser(context.Background(), "Alice", "alice@example.com", "correct horse", nil)
	require.NoError(t, err)

	_, token, err := svc.LoginUser(context.Background(), "alice@example.com", "correct horse")
	require.NoError(t, err)

	claims, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, registered.ID.String(), claims["sub"])
}

func TestAuthService_GetUserProfile_NotFound(t *testing.T) {
	svc := service.NewAuthService(newFakeUserRepo())

	_, err := svc.GetUserProfile(context.Background(), uuid.New())
	require.ErrorIs(t, err, sql.ErrNoRows)
}
