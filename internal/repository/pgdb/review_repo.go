package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/internal/usecase"
	"github.com/rexonmold/shop-backend/pkg/e"
)

// ReviewRepo реализует репозиторий отзывов поверх PostgreSQL.
type ReviewRepo struct {
	pool *pgxpool.Pool
}

func NewReviewRepo(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

// Create сохраняет отзыв. Повторный отзыв того же пользователя на тот же товар
// нарушает уникальный индекс и возвращается как e.ErrAlreadyReviewed.
func (r *ReviewRepo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	query := `
		INSERT INTO reviews (product_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;
	`

	if err := r.pool.QueryRow(ctx, query,
		review.ProductID, review.UserID, review.Rating, review.Comment,
	).Scan(&review.ID, &review.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrAlreadyReviewed)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return review, nil
}

// ListByProduct возвращает отзывы товара с именами авторов, новые первыми.
func (r *ReviewRepo) ListByProduct(ctx context.Context, productID int64) ([]usecase.ReviewInfo, error) {
	query := `
		SELECT rv.id, rv.rating, rv.comment, us.username, rv.created_at
		FROM reviews rv
		JOIN users us ON rv.user_id = us.id
		WHERE rv.product_id = $1
		ORDER BY rv.created_at DESC;
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ReviewInfo, 0)
	for rows.Next() {
		var review usecase.ReviewInfo
		if err := rows.Scan(
			&review.ID, &review.Rating, &review.Comment, &review.Username, &review.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, review)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
