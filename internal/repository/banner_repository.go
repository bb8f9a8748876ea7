package repository

import (
	"context"

	"shop/internal/domain/model"
)

type BannerRepository interface {
	// sort_order昇順で公開中のみ
	ListActive(ctx context.Context) ([]model.Banner, error)
	ListAll(ctx context.Context) ([]model.Banner, error)
	FindByID(ctx context.Context, id int64) (model.Banner, error)

	Create(ctx context.Context, b model.Banner) (model.Banner, error)
	Update(ctx context.Context, b model.Banner) error
	Delete(ctx context.Context, id int64) error
}
