package usecase

import (
	"context"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

// 在庫僅少の閾値
const lowStockThreshold = 5

type DashboardUsecase struct {
	productRepo repo.ProductRepository
	orderRepo   repo.OrderRepository
	userRepo    repo.UserRepository
}

func NewDashboardUsecase(
	productRepo repo.ProductRepository,
	orderRepo repo.OrderRepository,
	userRepo repo.UserRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
	}
}

type DashboardOutput struct {
	ProductCount      int64           `json:"product_count"`
	OrderCount        int64           `json:"order_count"`
	PendingOrderCount int64           `json:"pending_order_count"`
	UserCount         int64           `json:"user_count"`
	RecentOrders      []model.Order   `json:"recent_orders"`
	LowStockProducts  []model.Product `json:"low_stock_products"`
}

// 管理画面トップの集計
func (u *DashboardUsecase) Summary(ctx context.Context) (DashboardOutput, error) {
	productCount, err := u.productRepo.CountActive(ctx)
	if err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}

	orderCount, err := u.orderRepo.CountAll(ctx)
	if err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}

	pendingCount, err := u.orderRepo.CountByStatus(ctx, model.OrderStatusPending)
	if err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}

	userCount, err := u.userRepo.CountAll(ctx)
	if err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}

	recent, err := u.orderRepo.ListRecent(ctx, 5)
	if err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}

	lowStock, err := u.productRepo.ListLowStock(ctx, lowStockThreshold, 10)
	if err != nil {
		return DashboardOutput{}, NewError(KindInternal, "db error")
	}

	return DashboardOutput{
		ProductCount:      productCount,
		OrderCount:        orderCount,
		PendingOrderCount: pendingCount,
		UserCount:         userCount,
		RecentOrders:      recent,
		LowStockProducts:  lowStock,
	}, nil
}
