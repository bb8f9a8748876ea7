package usecase

import (
	"context"
	"strings"

	repo "shop/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase はセッションカートの業務ロジック。
// カート自体はRedisの一時データで、在庫の最終チェックは注文確定時に行う。
type CartUsecase struct {
	carts       repo.CartStore
	productRepo repo.ProductRepository
}

func NewCartUsecase(carts repo.CartStore, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{carts: carts, productRepo: productRepo}
}

type CartItemResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Droppedは消えた/非公開になった商品で落とした明細数。
// 黙って落とす仕様だが、呼び出し側が警告を出せるように数だけ返す
type CartResponse struct {
	Items   []CartItemResponse `json:"items"`
	Total   decimal.Decimal    `json:"total"`
	Dropped int                `json:"dropped,omitempty"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

type UpdateCartLineInput struct {
	Quantity int64
}

// GetCart はカートを現在の商品情報で引き直して返す。
// 小計は現在価格×数量（在庫の再チェックはしない）
func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return CartResponse{}, NewError(KindValidation, "session required")
	}
	return u.buildCartResponse(ctx, sessionID)
}

// AddToCart はカートに追加（同一商品は数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, in AddCartInput) (CartResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return CartResponse{}, NewError(KindValidation, "session required")
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewError(KindValidation, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewError(KindValidation, "invalid quantity")
	}

	p, err := u.productRepo.FindByID(ctx, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewError(KindNotFound, "product not found")
	}
	if err != nil {
		return CartResponse{}, NewError(KindInternal, "db error")
	}
	if !p.IsActive {
		return CartResponse{}, NewError(KindNotFound, "product not found")
	}

	//既存数量と合算してから在庫上限を見る
	lines, err := u.carts.Lines(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewError(KindInternal, "cart store error")
	}

	var existingQty int64 = 0
	for _, ln := range lines {
		if ln.ProductID == in.ProductID {
			existingQty = ln.Quantity
			break
		}
	}

	newQty := existingQty + in.Quantity
	if newQty > p.Stock {
		return CartResponse{}, NewError(KindInsufficientStock, "insufficient stock for "+p.Name)
	}

	if err := u.carts.SetLine(ctx, sessionID, in.ProductID, newQty); err != nil {
		return CartResponse{}, NewError(KindInternal, "cart store error")
	}

	return u.buildCartResponse(ctx, sessionID)
}

// 数量変更（在庫上限チェック付き）
func (u *CartUsecase) UpdateCartLine(ctx context.Context, sessionID string, productID int64, in UpdateCartLineInput) (CartResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return CartResponse{}, NewError(KindValidation, "session required")
	}
	if productID <= 0 {
		return CartResponse{}, NewError(KindValidation, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewError(KindValidation, "invalid quantity")
	}

	lines, err := u.carts.Lines(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewError(KindInternal, "cart store error")
	}

	found := false
	for _, ln := range lines {
		if ln.ProductID == productID {
			found = true
			break
		}
	}
	if !found {
		return CartResponse{}, NewError(KindNotFound, "item not in cart")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewError(KindNotFound, "product not found")
	}
	if err != nil {
		return CartResponse{}, NewError(KindInternal, "db error")
	}
	if !p.IsActive {
		return CartResponse{}, NewError(KindNotFound, "product not found")
	}
	if in.Quantity > p.Stock {
		return CartResponse{}, NewError(KindInsufficientStock, "insufficient stock for "+p.Name)
	}

	if err := u.carts.SetLine(ctx, sessionID, productID, in.Quantity); err != nil {
		return CartResponse{}, NewError(KindInternal, "cart store error")
	}

	return u.buildCartResponse(ctx, sessionID)
}

// 明細削除
func (u *CartUsecase) RemoveFromCart(ctx context.Context, sessionID string, productID int64) (CartResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return CartResponse{}, NewError(KindValidation, "session required")
	}
	if productID <= 0 {
		return CartResponse{}, NewError(KindValidation, "invalid product_id")
	}

	if err := u.carts.RemoveLine(ctx, sessionID, productID); err != nil {
		return CartResponse{}, NewError(KindInternal, "cart store error")
	}

	return u.buildCartResponse(ctx, sessionID)
}

// カートを空にする
func (u *CartUsecase) ClearCart(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return NewError(KindValidation, "session required")
	}
	if err := u.carts.Clear(ctx, sessionID); err != nil {
		return NewError(KindInternal, "cart store error")
	}
	return nil
}

// 保存中の明細を商品情報と突き合わせてCartResponseを作る。
// 商品が消えていたり非公開になっていたら黙って落とす
func (u *CartUsecase) buildCartResponse(ctx context.Context, sessionID string) (CartResponse, error) {
	lines, err := u.carts.Lines(ctx, sessionID)
	if err != nil {
		return CartResponse{}, NewError(KindInternal, "cart store error")
	}

	items := make([]CartItemResponse, 0, len(lines))
	total := decimal.Zero
	dropped := 0

	for _, ln := range lines {
		p, err := u.productRepo.FindByID(ctx, ln.ProductID)
		if err == repo.ErrNotFound {
			dropped++
			continue
		}
		if err != nil {
			return CartResponse{}, NewError(KindInternal, "db error")
		}
		if !p.IsActive {
			dropped++
			continue
		}

		subtotal := p.Price.Mul(decimal.NewFromInt(ln.Quantity))
		items = append(items, CartItemResponse{
			ProductID: p.ID,
			Name:      p.Name,
			Slug:      p.Slug,
			Image:     p.MainImage(),
			Price:     p.Price,
			Quantity:  ln.Quantity,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	return CartResponse{Items: items, Total: total, Dropped: dropped}, nil
}
