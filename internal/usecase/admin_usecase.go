package usecase

import (
	"context"
	"strings"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/logger"
)

// AdminUseCase реализует административное наполнение каталога.
type AdminUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	dbPool       transaction.Transactional
	imagesInfra  ImagesInfra
	logger       logger.Logger
}

func NewAdminUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	dbPool transaction.Transactional,
	imagesInfra ImagesInfra,
	logger logger.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		dbPool:       dbPool,
		imagesInfra:  imagesInfra,
		logger:       logger,
	}
}

// CreateCategory идемпотентно создает категорию каталога.
func (a *AdminUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (*CategoryInfo, error) {
	const op = "AdminUseCase.CreateCategory"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
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

	category, err := a.categoryRepo.Create(ctx, domain.NewCategory(req.Name, "", req.Description))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCategoryInfo(category), nil
}

// RegisterNewProduct обрабатывает добавление нового товара с изображениями,
// категорией и сохранением в хранилища.
func (a *AdminUseCase) RegisterNewProduct(ctx context.Context, req *AddNewProductReq) (*ProductInfo, error) {
	const op = "AdminUseCase.RegisterNewProduct"

	// Валидация данных
	var err error
	err = a.validateProduct(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		imagesRes *UploadImagesRes
		uploaded  bool
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка загруженных изображений
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if uploaded && imagesRes != nil {
				a.logger.Warnf(
					"Cleaning up orphaned images after transaction failure. product_name: %s, error: %v",
					req.Name,
					e.Wrap(op, err),
				)

				a.imagesInfra.CleanupImages(imagesRes.ImagesKeys)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// идемпотентное создание категории
	category, err := a.categoryRepo.Create(ctx, domain.NewCategory(req.CategoryName, "", ""))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// идемпотентное создание товара по SKU
	product, err := a.productRepo.Upsert(ctx, domain.NewProduct(
		req.Name, "", req.SKU, req.Price, req.Stock, category.ID, req.ShortDescription, req.Description,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Сохранение изображений в MinIO и привязка ключей к товару
	if len(req.Images) > 0 {
		imagesRes, err = a.imagesInfra.UploadImages(ctx, NewUploadImagesReq(product.Slug, req.Images))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		uploaded = true

		if err = a.productRepo.InsertImages(ctx, product.ID, imagesRes.ImagesKeys); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	// Коммит изменений в бд
	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewProductInfo(product), nil
}

// validateProduct проверяет корректность входных данных запроса на добавление товара.
func (a *AdminUseCase) validateProduct(req *AddNewProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if strings.TrimSpace(req.SKU) == "" {
		return e.ErrSkuRequired
	}

	if req.Price <= 0 {
		return e.ErrInvalidPrice
	}

	if req.Stock < 0 {
		return e.ErrInvalidQuantity
	}

	return nil
}
