package repository

import (
	"context"

	"shop/internal/domain/model"
)

// セッション単位のカート保存。
// 1セッション=1ユーザーなので書き込み競合は考えない。
type CartStore interface {
	// 保存中の明細（product_id→数量）。無ければ空を返す
	Lines(ctx context.Context, sessionID string) ([]model.CartLine, error)
	// 数量を上書き（0以下は不可、呼び出し側で弾く）
	SetLine(ctx context.Context, sessionID string, productID int64, qty int64) error
	RemoveLine(ctx context.Context, sessionID string, productID int64) error
	Clear(ctx context.Context, sessionID string) error
}
