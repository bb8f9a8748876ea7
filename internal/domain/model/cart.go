package model

// カート明細はセッション単位の一時データ。
// 商品参照と数量だけを持ち、DBには保存しない。
type CartLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}
