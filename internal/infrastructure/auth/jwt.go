package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jimlawless/whereami"
	"github.com/rexonmold/shop-backend/internal/cfg"
	"github.com/rexonmold/shop-backend/internal/usecase"
	"github.com/rexonmold/shop-backend/pkg/e"
)

// JWTManager выпускает и проверяет HS256-токены сессии пользователя.
type JWTManager struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewJWTManager(cfg *cfg.AuthCfg) *JWTManager {
	return &JWTManager{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
	}
}

// Issue выпускает токен с ID пользователя и признаком staff.
func (m *JWTManager) Issue(userID int64, isStaff bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"staff": isStaff,
		"iat":   now.Unix(),
		"exp":   now.Add(m.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return token, nil
}

// Parse проверяет подпись и срок токена и возвращает его данные.
// Любая невалидность токена — e.ErrLoginRequired.
func (m *JWTManager) Parse(tokenString string) (*usecase.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrLoginRequired)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrLoginRequired)
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrLoginRequired)
	}

	isStaff, _ := claims["staff"].(bool)

	return &usecase.TokenClaims{
		UserID:  int64(sub),
		IsStaff: isStaff,
	}, nil
}
