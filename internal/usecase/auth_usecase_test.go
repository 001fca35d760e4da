package usecase

import (
	"context"
	"testing"

	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUC(userRepo *fakeUserRepo) *AuthUseCase {
	return NewAuthUC(userRepo, fakeHasher{}, fakeTokenManager{}, nil, nopLogger{})
}

func TestAuthUseCase_Login(t *testing.T) {
	user := &domain.User{
		ID:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed:secret123",
	}
	uc := newAuthUC(newFakeUserRepo(user))

	res, err := uc.Login(context.Background(), &LoginReq{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, user, res.User)
	assert.NotEmpty(t, res.Token)
}

func TestAuthUseCase_Login_UnknownUser(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Login(context.Background(), &LoginReq{Username: "ghost", Password: "whatever1"})
	require.ErrorIs(t, err, e.ErrInvalidCredentials)
}

func TestAuthUseCase_Login_WrongPassword(t *testing.T) {
	user := &domain.User{ID: 1, Username: "alice", PasswordHash: "hashed:secret123"}
	uc := newAuthUC(newFakeUserRepo(user))

	_, err := uc.Login(context.Background(), &LoginReq{Username: "alice", Password: "wrong"})
	// Неверный пароль неотличим от неизвестного пользователя
	require.ErrorIs(t, err, e.ErrInvalidCredentials)
}

func TestAuthUseCase_Signup(t *testing.T) {
	userRepo := newFakeUserRepo()
	db := &fakeDB{}
	uc := NewAuthUC(userRepo, fakeHasher{}, fakeTokenManager{}, db, nopLogger{})

	res, err := uc.Signup(context.Background(), &SignupReq{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "hashed:secret123", res.User.PasswordHash)
	assert.NotEmpty(t, res.Token)

	// Пользователь создан в транзакции, и она закоммичена
	created, err := userRepo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, created.ID)
	assert.Equal(t, 1, db.tx.commits)
	assert.Equal(t, 0, db.tx.rollbacks)
}

func TestAuthUseCase_Signup_DuplicateRollsBack(t *testing.T) {
	existing := &domain.User{ID: 1, Username: "alice", Email: "alice@example.com"}
	db := &fakeDB{}
	uc := NewAuthUC(newFakeUserRepo(existing), fakeHasher{}, fakeTokenManager{}, db, nopLogger{})

	_, err := uc.Signup(context.Background(), &SignupReq{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})
	require.ErrorIs(t, err, e.ErrUserAlreadyExists)
	assert.Equal(t, 0, db.tx.commits)
	assert.Equal(t, 1, db.tx.rollbacks)
}

func TestAuthUseCase_Signup_Validation(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Signup(context.Background(), &SignupReq{
		Username: "  ",
		Email:    "a@b.c",
		Password: "longenough",
	})
	require.ErrorIs(t, err, e.ErrMissingFields)

	_, err = uc.Signup(context.Background(), &SignupReq{
		Username: "alice",
		Email:    "a@b.c",
		Password: "short",
	})
	require.ErrorIs(t, err, e.ErrStatusBadRequest)
}

func TestAuthUseCase_UserByID(t *testing.T) {
	user := &domain.User{ID: 7, Username: "bob", Email: "bob@example.com", IsStaff: true}
	uc := newAuthUC(newFakeUserRepo(user))

	info, err := uc.UserByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "bob", info.Username)
	assert.True(t, info.IsStaff)

	_, err = uc.UserByID(context.Background(), 99)
	require.ErrorIs(t, err, e.ErrUserNotFound)
}
