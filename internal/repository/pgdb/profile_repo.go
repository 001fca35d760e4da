package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/tr"
)

// ProfileRepo реализует репозиторий адресных профилей поверх PostgreSQL.
type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

// GetByUserID возвращает профиль пользователя.
func (p *ProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CustomerProfile, error) {
	query := `
		SELECT id, user_id, phone, address_line1, address_line2, city, state,
		       postal_code, country, created_at, updated_at
		FROM customer_profiles
		WHERE user_id = $1;
	`

	var profile domain.CustomerProfile
	if err := p.pool.QueryRow(ctx, query, userID).Scan(
		&profile.ID, &profile.UserID, &profile.Phone,
		&profile.AddressLine1, &profile.AddressLine2,
		&profile.City, &profile.State, &profile.PostalCode, &profile.Country,
		&profile.CreatedAt, &profile.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProfileNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &profile, nil
}

// Upsert создаёт профиль пользователя или обновляет его адресные поля.
func (p *ProfileRepo) Upsert(ctx context.Context, profile *domain.CustomerProfile) (*domain.CustomerProfile, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO customer_profiles (
			user_id, phone, address_line1, address_line2, city, state, postal_code, country
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id)
		DO UPDATE SET
			phone = EXCLUDED.phone,
			address_line1 = EXCLUDED.address_line1,
			address_line2 = EXCLUDED.address_line2,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			postal_code = EXCLUDED.postal_code,
			country = EXCLUDED.country,
			updated_at = NOW()
		RETURNING id, created_at, updated_at;
	`

	if err := tx.QueryRow(ctx, query,
		profile.UserID, profile.Phone,
		profile.AddressLine1, profile.AddressLine2,
		profile.City, profile.State, profile.PostalCode, profile.Country,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return profile, nil
}
