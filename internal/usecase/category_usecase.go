package usecase

import (
	"context"
	"strings"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/gosimple/slug"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
	productRepo  repo.ProductRepository
}

func NewCategoryUsecase(categoryRepo repo.CategoryRepository, productRepo repo.ProductRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo, productRepo: productRepo}
}

// 木構造で返すためのノード
type CategoryNode struct {
	model.Category
	Children []CategoryNode `json:"children"`
}

// Tree は全カテゴリをparent_idで組み立てて木で返す。
// sort_order昇順はrepo側で保証済み
func (u *CategoryUsecase) Tree(ctx context.Context, activeOnly bool) ([]CategoryNode, error) {
	all, err := u.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, NewError(KindInternal, "db error")
	}

	byParent := map[int64][]model.Category{}
	var roots []model.Category
	for _, c := range all {
		if activeOnly && !c.IsActive {
			continue
		}
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		byParent[*c.ParentID] = append(byParent[*c.ParentID], c)
	}

	var build func(c model.Category) CategoryNode
	build = func(c model.Category) CategoryNode {
		node := CategoryNode{Category: c, Children: []CategoryNode{}}
		for _, child := range byParent[c.ID] {
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	tree := make([]CategoryNode, 0, len(roots))
	for _, r := range roots {
		tree = append(tree, build(r))
	}
	return tree, nil
}

func (u *CategoryUsecase) GetBySlug(ctx context.Context, s string) (model.Category, error) {
	if strings.TrimSpace(s) == "" {
		return model.Category{}, NewError(KindValidation, "invalid slug")
	}

	c, err := u.categoryRepo.FindBySlug(ctx, strings.TrimSpace(s))
	if err == repo.ErrNotFound {
		return model.Category{}, NewError(KindNotFound, "category not found")
	}
	if err != nil {
		return model.Category{}, NewError(KindInternal, "db error")
	}
	if !c.IsActive {
		return model.Category{}, NewError(KindNotFound, "category not found")
	}
	return c, nil
}

type AdminSaveCategoryInput struct {
	Name        string
	ParentID    *int64
	Description string
	Image       string
	SortOrder   int
	IsActive    bool
}

func (u *CategoryUsecase) AdminCreate(ctx context.Context, adminUserID int64, in AdminSaveCategoryInput) (model.Category, error) {
	if adminUserID <= 0 {
		return model.Category{}, NewError(KindUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Category{}, NewError(KindValidation, "name is required")
	}

	//親の存在チェック
	if in.ParentID != nil {
		if _, err := u.categoryRepo.FindByID(ctx, *in.ParentID); err != nil {
			if err == repo.ErrNotFound {
				return model.Category{}, NewError(KindValidation, "parent category not found")
			}
			return model.Category{}, NewError(KindInternal, "db error")
		}
	}

	s, err := u.uniqueCategorySlug(ctx, in.Name)
	if err != nil {
		return model.Category{}, err
	}

	now := time.Now()
	created, err := u.categoryRepo.Create(ctx, model.Category{
		Name:        strings.TrimSpace(in.Name),
		Slug:        s,
		ParentID:    in.ParentID,
		Description: in.Description,
		Image:       in.Image,
		SortOrder:   in.SortOrder,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return model.Category{}, NewError(KindInternal, "db error")
	}
	return created, nil
}

func (u *CategoryUsecase) AdminUpdate(ctx context.Context, adminUserID int64, categoryID int64, in AdminSaveCategoryInput) error {
	if adminUserID <= 0 {
		return NewError(KindUnauthorized, "unauthorized")
	}
	if categoryID <= 0 {
		return NewError(KindValidation, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewError(KindValidation, "name is required")
	}
	//自分自身を親にはできない
	if in.ParentID != nil && *in.ParentID == categoryID {
		return NewError(KindValidation, "category cannot be its own parent")
	}

	current, err := u.categoryRepo.FindByID(ctx, categoryID)
	if err == repo.ErrNotFound {
		return NewError(KindNotFound, "category not found")
	}
	if err != nil {
		return NewError(KindInternal, "db error")
	}

	if in.ParentID != nil {
		if _, err := u.categoryRepo.FindByID(ctx, *in.ParentID); err != nil {
			if err == repo.ErrNotFound {
				return NewError(KindValidation, "parent category not found")
			}
			return NewError(KindInternal, "db error")
		}
	}

	newSlug := current.Slug
	if strings.TrimSpace(in.Name) != current.Name {
		newSlug, err = u.uniqueCategorySlug(ctx, in.Name)
		if err != nil {
			return err
		}
	}

	err = u.categoryRepo.Update(ctx, model.Category{
		ID:          categoryID,
		Name:        strings.TrimSpace(in.Name),
		Slug:        newSlug,
		ParentID:    in.ParentID,
		Description: in.Description,
		Image:       in.Image,
		SortOrder:   in.SortOrder,
		IsActive:    in.IsActive,
		UpdatedAt:   time.Now(),
	})
	if err == repo.ErrNotFound {
		return NewError(KindNotFound, "category not found")
	}
	if err != nil {
		return NewError(KindInternal, "db error")
	}
	return nil
}

// 子カテゴリか商品が残っている場合は削除できない
func (u *CategoryUsecase) AdminDelete(ctx context.Context, adminUserID int64, categoryID int64) error {
	if adminUserID <= 0 {
		return NewError(KindUnauthorized, "unauthorized")
	}
	if categoryID <= 0 {
		return NewError(KindValidation, "invalid id")
	}

	if _, err := u.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if err == repo.ErrNotFound {
			return NewError(KindNotFound, "category not found")
		}
		return NewError(KindInternal, "db error")
	}

	hasChildren, err := u.categoryRepo.HasChildren(ctx, categoryID)
	if err != nil {
		return NewError(KindInternal, "db error")
	}
	if hasChildren {
		return NewError(KindConflict, "category has child categories")
	}

	productCount, err := u.productRepo.CountByCategory(ctx, categoryID)
	if err != nil {
		return NewError(KindInternal, "db error")
	}
	if productCount > 0 {
		return NewError(KindConflict, "category has products")
	}

	if err := u.categoryRepo.Delete(ctx, categoryID); err != nil {
		if err == repo.ErrNotFound {
			return NewError(KindNotFound, "category not found")
		}
		return NewError(KindInternal, "db error")
	}
	return nil
}

func (u *CategoryUsecase) uniqueCategorySlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(strings.TrimSpace(name))
	if base == "" {
		return "", NewError(KindValidation, "name is required")
	}

	exists, err := u.categoryRepo.SlugExists(ctx, base)
	if err != nil {
		return "", NewError(KindInternal, "db error")
	}
	if !exists {
		return base, nil
	}
	return base + "-" + slugSuffix(), nil
}
