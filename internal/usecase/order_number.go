package usecase

import "crypto/rand"

const orderNumberChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ORD-XXXXXXXX形式の注文番号を作る。
// 一意性はorder_numberのunique indexが最終的に保証する。
func generateOrderNumber() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// crypto/randが失敗する環境は想定しない
		panic(err)
	}
	for i := range b {
		b[i] = orderNumberChars[int(b[i])%len(orderNumberChars)]
	}
	return "ORD-" + string(b)
}
