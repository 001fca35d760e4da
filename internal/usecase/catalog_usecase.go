package usecase

import (
	"context"

	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/logger"
)

// CatalogUseCase реализует просмотр каталога: листинг и карточку товара.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	reviewRepo   ReviewRepository
	logger       logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	reviewRepo ReviewRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
		logger:       logger,
	}
}

// ListProducts возвращает активные товары по необязательным фильтрам
// (slug категории, подстрока имени) и полный список категорий для навигации.
// Без пагинации и ранжирования.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error) {
	const op = "CatalogUseCase.ListProducts"

	// Неизвестный slug категории — не ошибка, а пустой листинг с навигацией
	products, err := c.productRepo.ListActive(ctx, &ProductFilter{
		CategorySlug: req.CategorySlug,
		NameQuery:    req.Query,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &ListProductsRes{
		Products:   products,
		Categories: categories,
		ActiveSlug: req.CategorySlug,
		Query:      req.Query,
	}, nil
}

// GetProductDetail возвращает активный товар по slug вместе с отзывами и изображениями.
func (c *CatalogUseCase) GetProductDetail(ctx context.Context, slug string) (*ProductDetailRes, error) {
	const op = "CatalogUseCase.GetProductDetail"

	product, err := c.productRepo.GetActiveBySlug(ctx, slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	reviews, err := c.reviewRepo.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	images, err := c.productRepo.ListImages(ctx, product.ID)
	if err != nil {
		// Карточка товара важнее галереи: при ошибке показываем товар без изображений
		c.logger.Warnf("failed to list product images: %v", e.Wrap(op, err))
		images = nil
	}

	return &ProductDetailRes{
		Product: product,
		Images:  images,
		Reviews: reviews,
	}, nil
}
