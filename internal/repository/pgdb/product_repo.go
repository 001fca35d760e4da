package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/internal/repository/pgdb/converter"
	"github.com/rexonmold/shop-backend/internal/usecase"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/tr"
)

const productColumns = `
	id, category_id, name, slug, sku, price, stock,
	short_description, description, is_active, created_at, updated_at
`

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// ListActive возвращает активные товары в алфавитном порядке с необязательной
// фильтрацией по slug категории и подстроке имени.
func (p *ProductRepo) ListActive(ctx context.Context, filter *usecase.ProductFilter) ([]*domain.Product, error) {
	query := `
		SELECT pr.id, pr.category_id, pr.name, pr.slug, pr.sku, pr.price, pr.stock,
		       pr.short_description, pr.description, pr.is_active, pr.created_at, pr.updated_at
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.is_active = true
		  AND ($1 = '' OR cat.slug = $1)
		  AND ($2 = '' OR pr.name ILIKE '%' || $2 || '%')
		ORDER BY pr.name;
	`

	rows, err := p.pool.Query(ctx, query, filter.CategorySlug, filter.NameQuery)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.ProductModel
	for rows.Next() {
		var model converter.ProductModel
		if err := scanProduct(rows.Scan, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// GetActiveBySlug возвращает активный товар по slug.
func (p *ProductRepo) GetActiveBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE slug = $1 AND is_active = true;`

	var model converter.ProductModel
	if err := scanProduct(p.pool.QueryRow(ctx, query, slug).Scan, &model); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetActiveByID возвращает активный товар по идентификатору.
func (p *ProductRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND is_active = true;`

	var model converter.ProductModel
	if err := scanProduct(p.pool.QueryRow(ctx, query, id).Scan, &model); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetByID возвращает товар по идентификатору независимо от активности.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`

	var model converter.ProductModel
	if err := scanProduct(p.pool.QueryRow(ctx, query, id).Scan, &model); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetForUpdate читает товар с блокировкой строки на время транзакции,
// чтобы исключить гонку параллельных оформлений заказа.
func (p *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE;`

	var model converter.ProductModel
	if err := scanProduct(tx.QueryRow(ctx, query, id).Scan, &model); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// DecrementStock уменьшает остаток товара, не опуская его ниже нуля.
func (p *ProductRepo) DecrementStock(ctx context.Context, id int64, qty int32) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET stock = GREATEST(stock - $2, 0), updated_at = NOW()
		WHERE id = $1;
	`

	if _, err := tx.Exec(ctx, query, id, qty); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Upsert идемпотентно создаёт или обновляет товар по уникальному SKU.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (
			category_id, name, slug, sku, price, stock, short_description, description, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true)
		ON CONFLICT (sku)
		DO UPDATE SET
			category_id = EXCLUDED.category_id,
			name = EXCLUDED.name,
			slug = EXCLUDED.slug,
			price = EXCLUDED.price,
			stock = EXCLUDED.stock,
			short_description = EXCLUDED.short_description,
			description = EXCLUDED.description,
			updated_at = NOW()
		RETURNING ` + productColumns + `;
	`

	var model converter.ProductModel
	if err := scanProduct(tx.QueryRow(ctx, query,
		product.CategoryID,
		product.Name,
		product.Slug,
		product.SKU,
		product.Price,
		product.Stock,
		product.ShortDescription,
		product.Description,
	).Scan, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// InsertImages привязывает ключи объектов хранилища к товару, сохраняя порядок.
func (p *ProductRepo) InsertImages(ctx context.Context, productID int64, keys []string) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO product_images (product_id, object_key, position)
		VALUES ($1, $2, $3)
		ON CONFLICT (object_key) DO NOTHING;
	`

	for i, key := range keys {
		if _, err := tx.Exec(ctx, query, productID, key, i); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

// ListImages возвращает ключи изображений товара в порядке загрузки.
func (p *ProductRepo) ListImages(ctx context.Context, productID int64) ([]string, error) {
	query := `
		SELECT object_key
		FROM product_images
		WHERE product_id = $1
		ORDER BY position;
	`

	rows, err := p.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return keys, nil
}

// scanProduct читает строку товара в модель в порядке productColumns.
func scanProduct(scan func(dest ...any) error, model *converter.ProductModel) error {
	return scan(
		&model.ID, &model.CategoryID, &model.Name, &model.Slug, &model.SKU, &model.Price, &model.Stock,
		&model.ShortDescription, &model.Description, &model.IsActive, &model.CreatedAt, &model.UpdatedAt,
	)
}
