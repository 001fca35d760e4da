package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rexonmold/shop-backend/internal/domain"
	"github.com/rexonmold/shop-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogUseCase_ListProducts(t *testing.T) {
	productRepo := newFakeProductRepo(testProduct(1, "Tea", 1000, 5))
	categoryRepo := &fakeCategoryRepo{categories: []*domain.Category{
		{ID: 1, Name: "Beverages", Slug: "beverages"},
	}}
	uc := NewCatalogUC(productRepo, categoryRepo, &fakeReviewRepo{}, nopLogger{})

	res, err := uc.ListProducts(context.Background(), NewListProductsReq("", ""))
	require.NoError(t, err)
	assert.Len(t, res.Products, 1)
	assert.Len(t, res.Categories, 1)
	assert.Empty(t, res.ActiveSlug)
}

func TestCatalogUseCase_ListProducts_CategoryFilterPassthrough(t *testing.T) {
	productRepo := newFakeProductRepo()
	categoryRepo := &fakeCategoryRepo{categories: []*domain.Category{
		{ID: 1, Name: "Beverages", Slug: "beverages"},
	}}
	uc := NewCatalogUC(productRepo, categoryRepo, &fakeReviewRepo{}, nopLogger{})

	res, err := uc.ListProducts(context.Background(), NewListProductsReq("beverages", "tea"))
	require.NoError(t, err)
	assert.Equal(t, "beverages", res.ActiveSlug)
	assert.Equal(t, "tea", res.Query)
}

func TestCatalogUseCase_ListProducts_UnknownCategoryIsEmptyListing(t *testing.T) {
	productRepo := newFakeProductRepo(testProduct(1, "Tea", 1000, 5))
	productRepo.categorySlugs[1] = "beverages"
	categoryRepo := &fakeCategoryRepo{categories: []*domain.Category{
		{ID: 1, Name: "Beverages", Slug: "beverages"},
	}}
	uc := NewCatalogUC(productRepo, categoryRepo, &fakeReviewRepo{}, nopLogger{})

	res, err := uc.ListProducts(context.Background(), NewListProductsReq("nope", ""))
	require.NoError(t, err)
	assert.Empty(t, res.Products)
	assert.Len(t, res.Categories, 1)
	assert.Equal(t, "nope", res.ActiveSlug)
}

func TestCatalogUseCase_GetProductDetail(t *testing.T) {
	product := testProduct(1, "Tea", 1000, 5)
	productRepo := newFakeProductRepo(product)
	productRepo.images[1] = []string{"products/tea/1.jpg"}

	reviewRepo := &fakeReviewRepo{reviews: []ReviewInfo{
		NewReviewInfo(1, 5, "great", "alice", time.Now()),
	}}
	uc := NewCatalogUC(productRepo, &fakeCategoryRepo{}, reviewRepo, nopLogger{})

	res, err := uc.GetProductDetail(context.Background(), product.Slug)
	require.NoError(t, err)
	assert.Equal(t, product, res.Product)
	assert.Equal(t, []string{"products/tea/1.jpg"}, res.Images)
	require.Len(t, res.Reviews, 1)
	assert.Equal(t, "alice", res.Reviews[0].Username)
}

func TestCatalogUseCase_GetProductDetail_ImagesErrorIsNotFatal(t *testing.T) {
	product := testProduct(1, "Tea", 1000, 5)
	productRepo := newFakeProductRepo(product)
	productRepo.listImagesErr = fmt.Errorf("minio down")

	uc := NewCatalogUC(productRepo, &fakeCategoryRepo{}, &fakeReviewRepo{}, nopLogger{})

	res, err := uc.GetProductDetail(context.Background(), product.Slug)
	require.NoError(t, err)
	assert.Nil(t, res.Images)
}

func TestCatalogUseCase_GetProductDetail_NotFound(t *testing.T) {
	uc := NewCatalogUC(newFakeProductRepo(), &fakeCategoryRepo{}, &fakeReviewRepo{}, nopLogger{})

	_, err := uc.GetProductDetail(context.Background(), "nope")
	require.ErrorIs(t, err, e.ErrProductNotFound)
}
