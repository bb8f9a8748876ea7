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

func TestCartAddToCart_SessionRequired(t *testing.T) {
	carts := new(CartStoreMock)
	products := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(carts, products)

	_, err := uc.AddToCart(context.Background(), "", usecase.AddCartInput{ProductID: 1, Quantity: 1})
	assertErrContains(t, err, "session required")
}

func TestCartAddToCart_InvalidQuantity(t *testing.T) {
	carts := new(CartStoreMock)
	products := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(carts, products)

	_, err := uc.AddToCart(context.Background(), "sess-1", usecase.AddCartInput{ProductID: 1, Quantity: 0})
	assertErrContains(t, err, "invalid quantity")
}

func TestCartAddToCart_ProductNotFound(t *testing.T) {
	carts := new(CartStoreMock)
	products := new(ProductRepoMock)

	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewCartUsecase(carts, products)

	_, err := uc.AddToCart(context.Background(), "sess-1", usecase.AddCartInput{ProductID: 99, Quantity: 1})
	assertErrContains(t, err, "product not found")
}

func TestCartAddToCart_InactiveProduct_NotFound(t *testing.T) {
	carts := new(CartStoreMock)
	products := new(ProductRepoMock)

	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{
		ID: 1, Name: "非公開", IsActive: false,
	}, nil)

	uc := usecase.NewCartUsecase(carts, products)

	_, err := uc.AddToCart(context.Background(), "sess-1", usecase.AddCartInput{ProductID: 1, Quantity: 1})
	assertErrContains(t, err, "product not found")
}

func TestCartAddToCart_MergesQuantity_StockCap(t *testing.T) {
	carts := new(CartStoreMock)
	products := new(ProductRepoMock)

	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{
		ID: 1, Name: "コーヒー豆", Price: decimal.RequireFromString("12.50"), Stock: 3, IsActive: true,
	}, nil)

	// 既に2個入っている。2個追加すると在庫3を超える
	carts.On("Lines", mock.Anything, "sess-1").Return([]model.CartLine{
		{ProductID: 1, Quantity: 2},
	}, nil)

	uc := usecase.NewCartUsecase(carts, products)

	_, err := uc.AddToCart(context.Background(), "sess-1", usecase.AddCartInput{ProductID: 1, Quantity: 2})
	assertErrContains(t, err, "insufficient stock for コーヒー豆")

	carts.AssertNotCalled(t, "SetLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartAddToCart_Success(t *testing.T) {
	carts := new(CartStoreMock)
	products := new(ProductRepoMock)

	p := model.Product{
		ID: 1, Name: "コーヒー豆", Slug: "coffee-beans",
		Price: decimal.RequireFromString("12.50"), Stock: 10, IsActive: true,
	}
	products.On("FindByID", mock.Anything, int64(1)).Return(p, nil)

	// 1回目のLinesは加算前、SetLine後のbuildでもう一度読む
	carts.On("Lines", mock.Anything, "sess-1").Return([]model.CartLine{}, nil).Once()
	carts.On("SetLine", mock.Anything, "sess-1", int64(1), int64(2)).Return(nil)
	carts.On("Lines", mock.Anything, "sess-1").Return([]model.CartLine{
		{ProductID: 1, Quantity: 2},
	}, nil)

	uc := usecase.NewCartUsecase(carts, products)

	out, err := uc.AddToCart(context.Background(), "sess-1", usecase.AddCartInput{ProductID: 1, Quantity: 2})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, int64(2), out.Items[0].Quantity)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("25.00")))

	carts.AssertExpectations(t)
}

func TestCartGetCart_DropsVanishedProducts(t *testing.T) {
	carts := new(CartStoreMock)
	products := new(ProductRepoMock)

	carts.On("Lines", mock.Anything, "sess-1").Return([]model.CartLine{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 3},
	}, nil)

	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{
		ID: 1, Name: "コーヒー豆", Price: decimal.RequireFromString("12.50"), Stock: 10, IsActive: true,
	}, nil)
	products.On("FindByID", mock.Anything, int64(2)).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewCartUsecase(carts, products)

	out, err := uc.GetCart(context.Background(), "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, 1, out.Dropped)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("12.50")))
}

func TestCartUpdateCartLine_NotInCart(t *testing.T) {
	carts := new(CartStoreMock)
	products := new(ProductRepoMock)

	carts.On("Lines", mock.Anything, "sess-1").Return([]model.CartLine{}, nil)

	uc := usecase.NewCartUsecase(carts, products)

	_, err := uc.UpdateCartLine(context.Background(), "sess-1", 1, usecase.UpdateCartLineInput{Quantity: 2})
	assertErrContains(t, err, "item not in cart")
}

func TestCartUpdateCartLine_StockCap(t *testing.T) {
	carts := new(CartStoreMock)
	products := new(ProductRepoMock)

	carts.On("Lines", mock.Anything, "sess-1").Return([]model.CartLine{
		{ProductID: 1, Quantity: 1},
	}, nil)
	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{
		ID: 1, Name: "コーヒー豆", Price: decimal.RequireFromString("12.50"), Stock: 3, IsActive: true,
	}, nil)

	uc := usecase.NewCartUsecase(carts, products)

	_, err := uc.UpdateCartLine(context.Background(), "sess-1", 1, usecase.UpdateCartLineInput{Quantity: 5})
	assertErrContains(t, err, "insufficient stock")
}

func TestCartRemoveFromCart_Success(t *testing.T) {
	carts := new(CartStoreMock)
	products := new(ProductRepoMock)

	carts.On("RemoveLine", mock.Anything, "sess-1", int64(1)).Return(nil)
	carts.On("Lines", mock.Anything, "sess-1").Return([]model.CartLine{}, nil)

	uc := usecase.NewCartUsecase(carts, products)

	out, err := uc.RemoveFromCart(context.Background(), "sess-1", 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))

	carts.AssertExpectations(t)
}

func TestCartClearCart_Success(t *testing.T) {
	carts := new(CartStoreMock)
	products := new(ProductRepoMock)

	carts.On("Clear", mock.Anything, "sess-1").Return(nil)

	uc := usecase.NewCartUsecase(carts, products)

	err := uc.ClearCart(context.Background(), "sess-1")
	assert.NoError(t, err)

	carts.AssertExpectations(t)
}
