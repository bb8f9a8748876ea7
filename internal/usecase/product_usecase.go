package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	productRepo   repo.ProductRepository
	categoryRepo  repo.CategoryRepository
	inventoryRepo repo.InventoryRepository
	auditRepo     repo.AuditLogRepository
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	inventoryRepo repo.InventoryRepository,
	auditRepo repo.AuditLogRepository,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		inventoryRepo: inventoryRepo,
		auditRepo:     auditRepo,
	}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Page       int
	Limit      int
	Q          string
	CategoryID int64
	Sort       string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ProductUsecase) ListPublicProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewError(KindValidation, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewError(KindValidation, "invalid limit")
	}
	if len(in.Q) > 100 {
		return ProductListOutput{}, NewError(KindValidation, "q too long")
	}
	switch in.Sort {
	case "", "newest", "price_asc", "price_desc", "name":
	default:
		return ProductListOutput{}, NewError(KindValidation, "invalid sort")
	}

	//カテゴリ指定は子孫カテゴリも含めて絞り込む
	var categoryIDs []int64
	if in.CategoryID > 0 {
		ids, err := u.categoryWithDescendants(ctx, in.CategoryID)
		if err != nil {
			return ProductListOutput{}, err
		}
		categoryIDs = ids
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:        in.Page,
		Limit:       in.Limit,
		Q:           strings.TrimSpace(in.Q),
		CategoryIDs: categoryIDs,
		Sort:        in.Sort,
		ActiveOnly:  true,
	})
	if err != nil {
		return ProductListOutput{}, NewError(KindInternal, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

// 公開中の商品をslugで1件
func (u *ProductUsecase) GetProductBySlug(ctx context.Context, s string) (model.Product, error) {
	if strings.TrimSpace(s) == "" {
		return model.Product{}, NewError(KindValidation, "invalid slug")
	}

	p, err := u.productRepo.FindBySlug(ctx, strings.TrimSpace(s))
	if err == repo.ErrNotFound {
		return model.Product{}, NewError(KindNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewError(KindInternal, "db error")
	}
	if !p.IsActive {
		return model.Product{}, NewError(KindNotFound, "product not found")
	}
	return p, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewError(KindValidation, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewError(KindNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewError(KindInternal, "db error")
	}
	if !p.IsActive {
		return model.Product{}, NewError(KindNotFound, "product not found")
	}
	return p, nil
}

type AdminSaveProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int64
	CategoryID  int64
	Images      []string
	IsActive    bool
}

func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, adminUserID int64, in AdminSaveProductInput) (model.Product, error) {
	if adminUserID <= 0 {
		return model.Product{}, NewError(KindUnauthorized, "unauthorized")
	}
	if err := u.validateSaveInput(ctx, in); err != nil {
		return model.Product{}, err
	}

	s, err := u.uniqueProductSlug(ctx, in.Name)
	if err != nil {
		return model.Product{}, err
	}

	now := time.Now()
	p := model.Product{
		Name:        strings.TrimSpace(in.Name),
		Slug:        s,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.SetImageList(in.Images)

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewError(KindInternal, "db error")
	}
	return created, nil
}

func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, adminUserID int64, productID int64, in AdminSaveProductInput) error {
	if adminUserID <= 0 {
		return NewError(KindUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewError(KindValidation, "invalid product id")
	}
	if err := u.validateSaveInput(ctx, in); err != nil {
		return err
	}

	current, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewError(KindNotFound, "product not found")
	}
	if err != nil {
		return NewError(KindInternal, "db error")
	}

	//名前が変わったらslugも作り直す
	newSlug := current.Slug
	if strings.TrimSpace(in.Name) != current.Name {
		newSlug, err = u.uniqueProductSlug(ctx, in.Name)
		if err != nil {
			return err
		}
	}

	p := model.Product{
		ID:          productID,
		Name:        strings.TrimSpace(in.Name),
		Slug:        newSlug,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		IsActive:    in.IsActive,
		UpdatedAt:   time.Now(),
	}
	p.SetImageList(in.Images)

	err = u.productRepo.Update(ctx, p)
	if err == repo.ErrNotFound {
		return NewError(KindNotFound, "product not found")
	}
	if err != nil {
		return NewError(KindInternal, "db error")
	}
	return nil
}

func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, adminUserID int64, productID int64) error {
	if adminUserID <= 0 {
		return NewError(KindUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewError(KindValidation, "invalid product id")
	}

	err := u.productRepo.SoftDelete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewError(KindNotFound, "product not found")
	}
	if err != nil {
		return NewError(KindInternal, "db error")
	}
	return nil
}

// 在庫の現在値を更新して監査ログを残す
func (u *ProductUsecase) AdminSetStock(ctx context.Context, adminUserID int64, productID int64, newStock int64) error {
	if adminUserID <= 0 {
		return NewError(KindUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewError(KindValidation, "invalid product id")
	}
	if newStock < 0 {
		return NewError(KindValidation, "stock must be >= 0")
	}

	//変更前の在庫（before）
	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewError(KindNotFound, "product not found")
	}
	if err != nil {
		return NewError(KindInternal, "db error")
	}

	if err := u.inventoryRepo.SetStock(ctx, productID, newStock); err != nil {
		if err == repo.ErrNotFound {
			return NewError(KindNotFound, "product not found")
		}
		return NewError(KindInternal, "db error")
	}

	beforeJSON := fmt.Sprintf(`{"stock":%d}`, p.Stock)
	afterJSON := fmt.Sprintf(`{"stock":%d}`, newStock)
	if err := u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  adminUserID,
		Action:       model.AuditActionUpdateStock,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   productID,
		BeforeJSON:   beforeJSON,
		AfterJSON:    afterJSON,
		CreatedAt:    time.Now(),
	}); err != nil {
		return NewError(KindInternal, "db error")
	}

	return nil
}

// 管理画面用一覧（非公開含む）
func (u *ProductUsecase) AdminListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewError(KindValidation, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewError(KindValidation, "invalid limit")
	}

	var categoryIDs []int64
	if in.CategoryID > 0 {
		categoryIDs = []int64{in.CategoryID}
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:        in.Page,
		Limit:       in.Limit,
		Q:           strings.TrimSpace(in.Q),
		CategoryIDs: categoryIDs,
		Sort:        in.Sort,
		ActiveOnly:  false,
	})
	if err != nil {
		return ProductListOutput{}, NewError(KindInternal, "db error")
	}

	return ProductListOutput{Items: items, Total: total, Page: in.Page, Limit: in.Limit}, nil
}

func (u *ProductUsecase) validateSaveInput(ctx context.Context, in AdminSaveProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewError(KindValidation, "name is required")
	}
	if in.Price.IsNegative() {
		return NewError(KindValidation, "price must be >= 0")
	}
	if in.Stock < 0 {
		return NewError(KindValidation, "stock must be >= 0")
	}
	if in.CategoryID <= 0 {
		return NewError(KindValidation, "category_id is required")
	}

	//カテゴリ存在チェック
	_, err := u.categoryRepo.FindByID(ctx, in.CategoryID)
	if err == repo.ErrNotFound {
		return NewError(KindValidation, "category not found")
	}
	if err != nil {
		return NewError(KindInternal, "db error")
	}
	return nil
}

// 名前からslugを作り、既存と被るならランダムな接尾辞を足す
func (u *ProductUsecase) uniqueProductSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(strings.TrimSpace(name))
	if base == "" {
		return "", NewError(KindValidation, "name is required")
	}

	exists, err := u.productRepo.SlugExists(ctx, base)
	if err != nil {
		return "", NewError(KindInternal, "db error")
	}
	if !exists {
		return base, nil
	}
	return base + "-" + slugSuffix(), nil
}

// 指定カテゴリとその子孫のID一覧
func (u *ProductUsecase) categoryWithDescendants(ctx context.Context, categoryID int64) ([]int64, error) {
	if _, err := u.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if err == repo.ErrNotFound {
			return nil, NewError(KindNotFound, "category not found")
		}
		return nil, NewError(KindInternal, "db error")
	}

	all, err := u.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, NewError(KindInternal, "db error")
	}

	children := map[int64][]int64{}
	for _, c := range all {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}

	ids := []int64{categoryID}
	queue := []int64{categoryID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range children[cur] {
			ids = append(ids, child)
			queue = append(queue, child)
		}
	}
	return ids, nil
}
