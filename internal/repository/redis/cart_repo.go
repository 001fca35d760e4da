package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
	"github.com/rexonmold/shop-backend/internal/cfg"
	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/internal/repository/redis/converter"
	"github.com/rexonmold/shop-backend/pkg/clients"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/logger"
)

// CartRepo хранит корзины сессий в Redis одним JSON-снимком на сессию.
// TTL продлевается при каждом сохранении, брошенные корзины истекают сами.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// Get возвращает корзину сессии. Отсутствие ключа — пустая корзина, не ошибка.
func (c *CartRepo) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	data, err := c.client.Client.Get(ctx, c.cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return domain.Cart{}, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.CartRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		// Битый снимок восстановлению не подлежит: сбрасываем корзину
		c.logger.Warnf("Corrupted cart snapshot, resetting. session: %s, error: %v", sessionID, err)
		if err := c.client.Client.Del(context.WithoutCancel(ctx), c.cartKey(sessionID)).Err(); err != nil {
			c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}

		return domain.Cart{}, nil
	}

	cart, err := c.conv.ToEntity(model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return cart, nil
}

// Save перезаписывает снимок корзины и продлевает TTL сессии.
func (c *CartRepo) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	data, err := json.Marshal(c.conv.ToRedisModel(cart))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.cartKey(sessionID), data, c.cfg.CartTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Delete удаляет корзину сессии.
func (c *CartRepo) Delete(ctx context.Context, sessionID string) error {
	if err := c.client.Client.Del(ctx, c.cartKey(sessionID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// cartKey возвращает Redis-ключ корзины для токена сессии.
func (c *CartRepo) cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
