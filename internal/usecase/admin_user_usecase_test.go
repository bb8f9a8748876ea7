package usecase_test

import (
	"context"
	"testing"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminUserList_InvalidPage(t *testing.T) {
	users := new(UserRepoMock)
	uc := usecase.NewAdminUserUsecase(users)

	_, err := uc.List(context.Background(), 0, 20)
	assertErrContains(t, err, "invalid page")
}

func TestAdminUserSetActive_CannotDeactivateYourself(t *testing.T) {
	users := new(UserRepoMock)
	uc := usecase.NewAdminUserUsecase(users)

	err := uc.SetActive(context.Background(), 5, 5, false)
	assertErrContains(t, err, "cannot deactivate yourself")

	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAdminUserSetActive_NotFound(t *testing.T) {
	users := new(UserRepoMock)

	users.On("FindByID", mock.Anything, int64(99)).Return((*model.User)(nil), repo.ErrUserNotFound)

	uc := usecase.NewAdminUserUsecase(users)

	err := uc.SetActive(context.Background(), 5, 99, false)
	assertErrContains(t, err, "user not found")
}

func TestAdminUserSetActive_Success(t *testing.T) {
	users := new(UserRepoMock)

	target := &model.User{ID: 2, IsActive: true}
	users.On("FindByID", mock.Anything, int64(2)).Return(target, nil)
	users.On("Update", mock.Anything, target).Return(nil)

	uc := usecase.NewAdminUserUsecase(users)

	err := uc.SetActive(context.Background(), 5, 2, false)
	assert.NoError(t, err)
	assert.False(t, target.IsActive)

	users.AssertExpectations(t)
}

func TestDashboardSummary_Aggregates(t *testing.T) {
	products := new(ProductRepoMock)
	orders := new(OrderRepoMock)
	users := new(UserRepoMock)

	products.On("CountActive", mock.Anything).Return(int64(12), nil)
	orders.On("CountAll", mock.Anything).Return(int64(30), nil)
	orders.On("CountByStatus", mock.Anything, model.OrderStatusPending).Return(int64(4), nil)
	users.On("CountAll", mock.Anything).Return(int64(8), nil)
	orders.On("ListRecent", mock.Anything, 5).Return([]model.Order{{ID: 1}}, nil)
	products.On("ListLowStock", mock.Anything, int64(5), 10).Return([]model.Product{{ID: 2, Stock: 1}}, nil)

	uc := usecase.NewDashboardUsecase(products, orders, users)

	out, err := uc.Summary(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(12), out.ProductCount)
	assert.Equal(t, int64(30), out.OrderCount)
	assert.Equal(t, int64(4), out.PendingOrderCount)
	assert.Equal(t, int64(8), out.UserCount)
	assert.Equal(t, 1, len(out.RecentOrders))
	assert.Equal(t, 1, len(out.LowStockProducts))

	products.AssertExpectations(t)
	orders.AssertExpectations(t)
}
