package usecase

import "context"

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// PasswordHasher хэширует и проверяет пароли пользователей.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// TokenManager выпускает и проверяет токены сессии пользователя.
type TokenManager interface {
	Issue(userID int64, isStaff bool) (string, error)
	Parse(token string) (*TokenClaims, error)
}

// TokenClaims — данные, зашитые в токен сессии.
type TokenClaims struct {
	UserID  int64
	IsStaff bool
}
