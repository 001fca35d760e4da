package usecase

import (
	"context"
	"errors"
	"strings"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/logger"
)

// AuthUseCase реализует регистрацию и вход пользователей.
type AuthUseCase struct {
	userRepo UserRepository
	hasher   PasswordHasher
	tokens   TokenManager
	dbPool   transaction.Transactional
	logger   logger.Logger
}

func NewAuthUC(
	userRepo UserRepository,
	hasher PasswordHasher,
	tokens TokenManager,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		dbPool:   dbPool,
		logger:   logger,
	}
}

// Signup создает пользователя с захэшированным паролем и сразу выпускает
// токен сессии: после регистрации покупатель уже залогинен.
func (a *AuthUseCase) Signup(ctx context.Context, req *SignupReq) (*AuthRes, error) {
	const op = "AuthUseCase.Signup"

	if err := validateSignup(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	user, err := a.userRepo.Create(ctx, domain.NewUser(req.Username, req.Email, hash, req.FullName))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	token, err := a.tokens.Issue(user.ID, user.IsStaff)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &AuthRes{User: user, Token: token}, nil
}

// Login проверяет пару логин/пароль и выпускает токен сессии.
// Неизвестный пользователь и неверный пароль неразличимы для клиента.
func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*AuthRes, error) {
	const op = "AuthUseCase.Login"

	user, err := a.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			return nil, e.Wrap(op, e.ErrInvalidCredentials)
		}
		return nil, e.Wrap(op, err)
	}

	if !a.hasher.Check(req.Password, user.PasswordHash) {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	token, err := a.tokens.Issue(user.ID, user.IsStaff)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &AuthRes{User: user, Token: token}, nil
}

// UserByID возвращает публичные данные пользователя.
func (a *AuthUseCase) UserByID(ctx context.Context, id int64) (*UserInfo, error) {
	const op = "AuthUseCase.UserByID"

	user, err := a.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewUserInfo(user), nil
}

// validateSignup проверяет обязательные поля регистрационной формы.
func validateSignup(req *SignupReq) error {
	const minPasswordLen = 8

	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
		return e.ErrMissingFields
	}

	if len(req.Password) < minPasswordLen {
		return e.ErrStatusBadRequest
	}

	return nil
}
