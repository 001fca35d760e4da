package auth

import (
	"github.com/jimlawless/whereami"
	"github.com/rexonmold/shop-backend/internal/cfg"
	"github.com/rexonmold/shop-backend/pkg/e"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher хэширует пароли пользователей через bcrypt.
// Соль генерируется самим bcrypt и зашита в хэш.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cfg *cfg.AuthCfg) *BcryptHasher {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return string(bytes), nil
}

func (h *BcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
