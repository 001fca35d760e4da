package usecase

import (
	"context"
	"strings"

	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/logger"
)

// ReviewUseCase реализует публикацию отзывов о товарах.
type ReviewUseCase struct {
	reviewRepo  ReviewRepository
	productRepo ProductRepository
	logger      logger.Logger
}

func NewReviewUC(reviewRepo ReviewRepository, productRepo ProductRepository, logger logger.Logger) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// SubmitReview публикует отзыв аутентифицированного пользователя об активном товаре.
// Повторный отзыв той же пары (товар, пользователь) возвращается как
// e.ErrAlreadyReviewed; прочие ошибки сохранения не маскируются.
func (r *ReviewUseCase) SubmitReview(ctx context.Context, req *SubmitReviewReq) error {
	const op = "ReviewUseCase.SubmitReview"

	if err := validateReview(req); err != nil {
		return e.Wrap(op, err)
	}

	product, err := r.productRepo.GetActiveBySlug(ctx, req.ProductSlug)
	if err != nil {
		return e.Wrap(op, err)
	}

	if _, err := r.reviewRepo.Create(ctx, domain.NewReview(product.ID, req.UserID, req.Rating, req.Comment)); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// validateReview проверяет диапазон оценки и непустой комментарий.
func validateReview(req *SubmitReviewReq) error {
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return e.ErrInvalidRating
	}

	if strings.TrimSpace(req.Comment) == "" {
		return e.ErrCommentRequired
	}

	return nil
}
