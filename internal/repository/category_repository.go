package repository

import (
	"context"

	"shop/internal/domain/model"
)

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (model.Category, error)
	FindBySlug(ctx context.Context, slug string) (model.Category, error)
	SlugExists(ctx context.Context, slug string) (bool, error)

	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	Delete(ctx context.Context, id int64) error

	// 子カテゴリの有無（削除ガードで使う）
	HasChildren(ctx context.Context, id int64) (bool, error)
}
