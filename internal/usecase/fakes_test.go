package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/pkg/e"
)

// Ручные фейки репозиториев для юнит-тестов usecase-слоя.

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakeCartRepo struct {
	carts   map[string]domain.Cart
	saves   int
	deleted []string
	getErr  error
	saveErr error
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]domain.Cart)}
}

func (f *fakeCartRepo) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	cart, ok := f.carts[sessionID]
	if !ok {
		return domain.Cart{}, nil
	}

	copied := make(domain.Cart, len(cart))
	for id, line := range cart {
		copied[id] = line
	}

	return copied, nil
}

func (f *fakeCartRepo) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	if f.saveErr != nil {
		return f.saveErr
	}

	f.saves++
	f.carts[sessionID] = cart
	return nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, sessionID string) error {
	f.deleted = append(f.deleted, sessionID)
	delete(f.carts, sessionID)
	return nil
}

type fakeProductRepo struct {
	products      map[int64]*domain.Product
	categorySlugs map[int64]string
	decrements    map[int64]int32
	images        map[int64][]string
	listImagesErr error
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	f := &fakeProductRepo{
		products:      make(map[int64]*domain.Product),
		categorySlugs: make(map[int64]string),
		decrements:    make(map[int64]int32),
		images:        make(map[int64][]string),
	}
	for _, product := range products {
		f.products[product.ID] = product
	}

	return f
}

func (f *fakeProductRepo) ListActive(ctx context.Context, filter *ProductFilter) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, product := range f.products {
		if !product.IsActive {
			continue
		}
		if filter.CategorySlug != "" && f.categorySlugs[product.CategoryID] != filter.CategorySlug {
			continue
		}
		if filter.NameQuery != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(filter.NameQuery)) {
			continue
		}
		out = append(out, product)
	}

	return out, nil
}

func (f *fakeProductRepo) GetActiveBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	for _, product := range f.products {
		if product.Slug == slug && product.IsActive {
			return product, nil
		}
	}

	return nil, e.ErrProductNotFound
}

func (f *fakeProductRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok || !product.IsActive {
		return nil, e.ErrProductNotFound
	}

	return product, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	return product, nil
}

func (f *fakeProductRepo) GetForUpdate(ctx context.Context, id int64) (*domain.Product, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeProductRepo) DecrementStock(ctx context.Context, id int64, qty int32) error {
	f.decrements[id] += qty

	product, ok := f.products[id]
	if ok {
		product.Stock -= qty
		if product.Stock < 0 {
			product.Stock = 0
		}
	}

	return nil
}

func (f *fakeProductRepo) Upsert(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product.ID == 0 {
		product.ID = int64(len(f.products) + 1)
	}
	f.products[product.ID] = product

	return product, nil
}

func (f *fakeProductRepo) InsertImages(ctx context.Context, productID int64, keys []string) error {
	f.images[productID] = append(f.images[productID], keys...)
	return nil
}

func (f *fakeProductRepo) ListImages(ctx context.Context, productID int64) ([]string, error) {
	if f.listImagesErr != nil {
		return nil, f.listImagesErr
	}

	return f.images[productID], nil
}

type fakeCategoryRepo struct {
	categories []*domain.Category
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]*domain.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	for _, existing := range f.categories {
		if existing.Name == category.Name {
			return existing, nil
		}
	}

	category.ID = int64(len(f.categories) + 1)
	f.categories = append(f.categories, category)

	return category, nil
}

type fakeOrderRepo struct {
	nextID int64
	orders map[int64]*domain.Order
	items  []*domain.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[int64]*domain.Order)}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	f.nextID++
	order.ID = f.nextID
	f.orders[order.ID] = order

	return order, nil
}

func (f *fakeOrderRepo) AddItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	item.ID = int64(len(f.items) + 1)
	f.items = append(f.items, item)

	return item, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, e.ErrOrderNotFound
	}

	return order, nil
}

func (f *fakeOrderRepo) ListItems(ctx context.Context, orderID int64) ([]*domain.OrderItem, error) {
	var out []*domain.OrderItem
	for _, item := range f.items {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}

	return out, nil
}

type fakeReviewRepo struct {
	created   []*domain.Review
	reviews   []ReviewInfo
	createErr error
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	review.ID = int64(len(f.created) + 1)
	f.created = append(f.created, review)

	return review, nil
}

func (f *fakeReviewRepo) ListByProduct(ctx context.Context, productID int64) ([]ReviewInfo, error) {
	return f.reviews, nil
}

type fakeUserRepo struct {
	users     map[int64]*domain.User
	createErr error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[int64]*domain.User)}
	for _, user := range users {
		f.users[user.ID] = user
	}

	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	for _, existing := range f.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, e.ErrUserAlreadyExists
		}
	}

	user.ID = int64(len(f.users) + 1)
	f.users[user.ID] = user

	return user, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}

	return nil, e.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, e.ErrUserNotFound
	}

	return user, nil
}

type fakeProfileRepo struct {
	profiles map[int64]*domain.CustomerProfile
}

func newFakeProfileRepo(profiles ...*domain.CustomerProfile) *fakeProfileRepo {
	f := &fakeProfileRepo{profiles: make(map[int64]*domain.CustomerProfile)}
	for _, profile := range profiles {
		f.profiles[profile.UserID] = profile
	}

	return f
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID int64) (*domain.CustomerProfile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, e.ErrProfileNotFound
	}

	return profile, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *domain.CustomerProfile) (*domain.CustomerProfile, error) {
	f.profiles[profile.UserID] = profile
	return profile, nil
}

type fakeOutboxRepo struct {
	events    []*OutboxEvent
	createErr error
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	event.ID = int64(len(f.events) + 1)
	f.events = append(f.events, event)

	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

// fakeTx реализует pgx.Tx, считая коммиты и откаты.
type fakeTx struct {
	commits   int
	rollbacks int
}

func (f *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return f, nil }

func (f *fakeTx) Commit(ctx context.Context) error {
	f.commits++
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rollbacks++
	return nil
}

func (f *fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}

func (f *fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }

func (f *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }

func (f *fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}

func (f *fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (f *fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }

func (f *fakeTx) Conn() *pgx.Conn { return nil }

// fakeDB подменяет пул соединений для транзакционных usecase-путей.
type fakeDB struct {
	tx       fakeTx
	beginErr error
}

func (f *fakeDB) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	if f.beginErr != nil {
		return nil, f.beginErr
	}

	return &f.tx, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenManager struct{}

func (fakeTokenManager) Issue(userID int64, isStaff bool) (string, error) {
	return fmt.Sprintf("token-%d-%t", userID, isStaff), nil
}

func (fakeTokenManager) Parse(token string) (*TokenClaims, error) {
	return nil, e.ErrLoginRequired
}
