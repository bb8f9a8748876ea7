package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/validator"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderUsecase はチェックアウト（カート→注文）の業務ロジック。
// 在庫チェック・合計計算・注文作成・在庫減算を1トランザクションで行う。
type OrderUsecase struct {
	tx    repo.TransactionManager
	carts repo.CartStore
}

func NewOrderUsecase(tx repo.TransactionManager, carts repo.CartStore) *OrderUsecase {
	return &OrderUsecase{tx: tx, carts: carts}
}

type PlaceOrderInput struct {
	ShippingName    string
	ShippingPhone   string
	ShippingAddress string
	ShippingEmail   string
	Notes           string
}

type OrderItemOutput struct {
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type OrderOutput struct {
	ID              int64             `json:"id"`
	OrderNumber     string            `json:"order_number"`
	Status          string            `json:"status"`
	TotalAmount     decimal.Decimal   `json:"total_amount"`
	ShippingName    string            `json:"shipping_name"`
	ShippingPhone   string            `json:"shipping_phone"`
	ShippingEmail   string            `json:"shipping_email"`
	ShippingAddress string            `json:"shipping_address"`
	Notes           string            `json:"notes"`
	CreatedAt       time.Time         `json:"created_at"`
	Items           []OrderItemOutput `json:"items"`
}

// PlaceOrder はセッションのカートから注文を作る。
// 途中で失敗したら注文も明細も在庫減算も全部ロールバックされる。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, sessionID string, in PlaceOrderInput) (OrderOutput, error) {
	if strings.TrimSpace(sessionID) == "" {
		return OrderOutput{}, NewError(KindValidation, "session required")
	}

	//必須の配送先チェック
	name := strings.TrimSpace(in.ShippingName)
	phone := strings.TrimSpace(in.ShippingPhone)
	address := strings.TrimSpace(in.ShippingAddress)
	email := strings.TrimSpace(in.ShippingEmail)

	if name == "" {
		return OrderOutput{}, NewError(KindValidation, "shipping_name is required")
	}
	if phone == "" {
		return OrderOutput{}, NewError(KindValidation, "shipping_phone is required")
	}
	if address == "" {
		return OrderOutput{}, NewError(KindValidation, "shipping_address is required")
	}
	if !validator.IsPhoneLike(phone) {
		return OrderOutput{}, NewError(KindValidation, "invalid shipping_phone")
	}
	//emailは任意（入っていれば形式チェック）
	if email != "" && !validator.IsEmailLike(email) {
		return OrderOutput{}, NewError(KindValidation, "invalid shipping_email")
	}

	lines, err := u.carts.Lines(ctx, sessionID)
	if err != nil {
		return OrderOutput{}, NewError(KindInternal, "cart store error")
	}
	if len(lines) == 0 {
		return OrderOutput{}, NewError(KindEmptyCart, "cart is empty")
	}

	var out OrderOutput

	//注文処理はトランザクション
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		now := time.Now()

		orderItems := make([]model.OrderItem, 0, len(lines))
		total := decimal.Zero

		for _, ln := range lines {
			p, perr := r.Products().FindByID(ctx, ln.ProductID)
			if perr == repo.ErrNotFound {
				//カート表示と同じく、消えた商品は黙って落とす
				continue
			}
			if perr != nil {
				return NewError(KindInternal, "db error")
			}
			if !p.IsActive {
				continue
			}

			//在庫チェックと減算は条件付きUPDATE一発。
			//同時チェックアウトでも在庫がマイナスにならない
			ok, derr := r.Inventory().DecreaseStockIfEnough(ctx, ln.ProductID, ln.Quantity)
			if derr != nil {
				return NewError(KindInternal, "db error")
			}
			if !ok {
				return NewError(KindInsufficientStock, "insufficient stock for "+p.Name)
			}

			//注文時点の単価スナップショット
			orderItems = append(orderItems, model.OrderItem{
				ProductID: ln.ProductID,
				Quantity:  ln.Quantity,
				Price:     p.Price,
				CreatedAt: now,
			})
			total = total.Add(p.Price.Mul(decimal.NewFromInt(ln.Quantity)))
		}

		if len(orderItems) == 0 {
			return NewError(KindEmptyCart, "cart is empty")
		}

		order := model.Order{
			Status:          model.OrderStatusPending,
			TotalAmount:     total,
			ShippingName:    name,
			ShippingPhone:   phone,
			ShippingEmail:   email,
			ShippingAddress: address,
			Notes:           strings.TrimSpace(in.Notes),
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		//注文番号の衝突だけリトライ
		var orderID int64
		for attempt := 0; ; attempt++ {
			order.OrderNumber = generateOrderNumber()
			var cerr error
			orderID, cerr = r.Orders().Create(ctx, order)
			if cerr == nil {
				break
			}
			if errors.Is(cerr, gorm.ErrDuplicatedKey) && attempt < 2 {
				continue
			}
			return NewError(KindInternal, "db error")
		}

		//注文明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewError(KindInternal, "db error")
		}

		order.ID = orderID
		out = toOrderOutput(order, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}

	//コミット済みなのでカートを空にする。
	//ここで失敗しても注文は成立している
	_ = u.carts.Clear(ctx, sessionID)

	return out, nil
}

// 注文番号で1件取得（注文完了ページ用）
func (u *OrderUsecase) GetByOrderNumber(ctx context.Context, orderNumber string) (OrderOutput, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return OrderOutput{}, NewError(KindValidation, "order_number required")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByOrderNumber(ctx, strings.TrimSpace(orderNumber))
		if err == repo.ErrNotFound {
			return NewError(KindNotFound, "order not found")
		}
		if err != nil {
			return NewError(KindInternal, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return NewError(KindInternal, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Subtotal:  it.Subtotal(),
		})
	}

	return OrderOutput{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		ShippingName:    o.ShippingName,
		ShippingPhone:   o.ShippingPhone,
		ShippingEmail:   o.ShippingEmail,
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		Items:           outItems,
	}
}
