package usecase_test

import (
	"context"
	"testing"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductUsecase() (*usecase.ProductUsecase, *ProductRepoMock, *CategoryRepoMock, *InventoryRepoMock, *AuditRepoMock) {
	products := new(ProductRepoMock)
	categories := new(CategoryRepoMock)
	inventory := new(InventoryRepoMock)
	audit := new(AuditRepoMock)
	return usecase.NewProductUsecase(products, categories, inventory, audit), products, categories, inventory, audit
}

func TestListPublicProducts_InvalidSort(t *testing.T) {
	uc, _, _, _, _ := newProductUsecase()

	_, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{
		Page: 1, Limit: 12, Sort: "random",
	})
	assertErrContains(t, err, "invalid sort")
}

func TestListPublicProducts_ActiveOnly(t *testing.T) {
	uc, products, _, _, _ := newProductUsecase()

	products.On("List", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return q.ActiveOnly && q.Page == 1 && q.Limit == 12
	})).Return([]model.Product{{ID: 1}}, int64(1), nil)

	out, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 12})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)

	products.AssertExpectations(t)
}

func TestListPublicProducts_CategoryIncludesDescendants(t *testing.T) {
	uc, products, categories, _, _ := newProductUsecase()

	parent := int64(1)
	categories.On("FindByID", mock.Anything, int64(1)).Return(model.Category{ID: 1}, nil)
	categories.On("ListAll", mock.Anything).Return([]model.Category{
		{ID: 1},
		{ID: 2, ParentID: &parent},
		{ID: 3}, // 無関係
	}, nil)

	products.On("List", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		if len(q.CategoryIDs) != 2 {
			return false
		}
		seen := map[int64]bool{}
		for _, id := range q.CategoryIDs {
			seen[id] = true
		}
		return seen[1] && seen[2] && !seen[3]
	})).Return([]model.Product{}, int64(0), nil)

	_, err := uc.ListPublicProducts(context.Background(), usecase.ListProductsInput{
		Page: 1, Limit: 12, CategoryID: 1,
	})
	assert.NoError(t, err)

	products.AssertExpectations(t)
}

func TestGetProductBySlug_InactiveIsNotFound(t *testing.T) {
	uc, products, _, _, _ := newProductUsecase()

	products.On("FindBySlug", mock.Anything, "hidden-item").Return(model.Product{
		ID: 1, Slug: "hidden-item", IsActive: false,
	}, nil)

	_, err := uc.GetProductBySlug(context.Background(), "hidden-item")
	assertErrContains(t, err, "product not found")
}

func TestAdminCreateProduct_CategoryMustExist(t *testing.T) {
	uc, _, categories, _, _ := newProductUsecase()

	categories.On("FindByID", mock.Anything, int64(9)).Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.AdminCreateProduct(context.Background(), 1, usecase.AdminSaveProductInput{
		Name: "コーヒー豆", Price: decimal.RequireFromString("12.50"), Stock: 10, CategoryID: 9, IsActive: true,
	})
	assertErrContains(t, err, "category not found")
}

func TestAdminCreateProduct_NegativePrice(t *testing.T) {
	uc, _, _, _, _ := newProductUsecase()

	_, err := uc.AdminCreateProduct(context.Background(), 1, usecase.AdminSaveProductInput{
		Name: "コーヒー豆", Price: decimal.RequireFromString("-1"), Stock: 10, CategoryID: 1,
	})
	assertErrContains(t, err, "price must be >= 0")
}

func TestAdminCreateProduct_SlugFromName(t *testing.T) {
	uc, products, categories, _, _ := newProductUsecase()

	categories.On("FindByID", mock.Anything, int64(1)).Return(model.Category{ID: 1}, nil)
	products.On("SlugExists", mock.Anything, "coffee-beans").Return(false, nil)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Slug == "coffee-beans" && p.Name == "Coffee Beans"
	})).Return(model.Product{ID: 1, Slug: "coffee-beans"}, nil)

	created, err := uc.AdminCreateProduct(context.Background(), 1, usecase.AdminSaveProductInput{
		Name: "Coffee Beans", Price: decimal.RequireFromString("12.50"), Stock: 10, CategoryID: 1, IsActive: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, "coffee-beans", created.Slug)

	products.AssertExpectations(t)
}

func TestAdminCreateProduct_SlugCollision_AddsSuffix(t *testing.T) {
	uc, products, categories, _, _ := newProductUsecase()

	categories.On("FindByID", mock.Anything, int64(1)).Return(model.Category{ID: 1}, nil)
	products.On("SlugExists", mock.Anything, "coffee-beans").Return(true, nil)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		// 被ったら "coffee-beans-" + 接尾辞
		return len(p.Slug) > len("coffee-beans-") && p.Slug[:13] == "coffee-beans-"
	})).Return(model.Product{ID: 2}, nil)

	_, err := uc.AdminCreateProduct(context.Background(), 1, usecase.AdminSaveProductInput{
		Name: "Coffee Beans", Price: decimal.RequireFromString("12.50"), Stock: 10, CategoryID: 1, IsActive: true,
	})
	assert.NoError(t, err)

	products.AssertExpectations(t)
}

func TestAdminSetStock_Negative(t *testing.T) {
	uc, _, _, _, _ := newProductUsecase()

	err := uc.AdminSetStock(context.Background(), 1, 1, -1)
	assertErrContains(t, err, "stock must be >= 0")
}

func TestAdminSetStock_Success_WritesAuditLog(t *testing.T) {
	uc, products, _, inventory, audit := newProductUsecase()

	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Stock: 3}, nil)
	inventory.On("SetStock", mock.Anything, int64(1), int64(20)).Return(nil)
	audit.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionUpdateStock &&
			l.BeforeJSON == `{"stock":3}` &&
			l.AfterJSON == `{"stock":20}`
	})).Return(nil)

	err := uc.AdminSetStock(context.Background(), 7, 1, 20)
	assert.NoError(t, err)

	inventory.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestAdminListProducts_IncludesInactive(t *testing.T) {
	uc, products, _, _, _ := newProductUsecase()

	products.On("List", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return !q.ActiveOnly
	})).Return([]model.Product{{ID: 1, IsActive: false}}, int64(1), nil)

	out, err := uc.AdminListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 20})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))

	products.AssertExpectations(t)
}
