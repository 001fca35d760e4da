package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/internal/repository/pgdb/converter"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/rexonmold/shop-backend/pkg/tr"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет шапку заказа в рамках транзакции оформления.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := o.conv.ToModel(order)
	query := `
		INSERT INTO orders (
			user_id, email, full_name, address, city, state, postal_code, country,
			total, paid, payment_reference, payment_method
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.UserID,
		model.Email,
		model.FullName,
		model.Address,
		model.City,
		model.State,
		model.PostalCode,
		model.Country,
		model.Total,
		model.Paid,
		model.PaymentReference,
		model.PaymentMethod,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model), nil
}

// AddItem сохраняет строку заказа со снимком имени и цены товара.
func (o *OrderRepo) AddItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO order_items (order_id, product_id, name, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`

	if err := tx.QueryRow(ctx, query,
		item.OrderID, item.ProductID, item.Name, item.Quantity, item.Price,
	).Scan(&item.ID); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return item, nil
}

// GetByID возвращает заказ по идентификатору.
func (o *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT id, user_id, email, full_name, address, city, state, postal_code, country,
		       total, paid, payment_reference, payment_method, created_at, updated_at
		FROM orders
		WHERE id = $1;
	`

	var model converter.OrderModel
	if err := o.pool.QueryRow(ctx, query, id).Scan(
		&model.ID, &model.UserID, &model.Email, &model.FullName, &model.Address,
		&model.City, &model.State, &model.PostalCode, &model.Country,
		&model.Total, &model.Paid, &model.PaymentReference, &model.PaymentMethod,
		&model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model), nil
}

// ListItems возвращает строки заказа в порядке добавления.
func (o *OrderRepo) ListItems(ctx context.Context, orderID int64) ([]*domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, name, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id;
	`

	rows, err := o.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	items := make([]*domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Name, &item.Quantity, &item.Price,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return items, nil
}
