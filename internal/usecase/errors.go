package usecase

import (
	"errors"
	"fmt"
)

// エラー種別。handlerがHTTPステータスに変換する
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindEmptyCart         ErrorKind = "empty_cart"
	KindInsufficientStock ErrorKind = "insufficient_stock"
	KindNotFound          ErrorKind = "not_found"
	KindInvalidStatus     ErrorKind = "invalid_status"
	KindConflict          ErrorKind = "conflict"
	KindUnauthorized      ErrorKind = "unauthorized"
	KindForbidden         ErrorKind = "forbidden"
	KindInternal          ErrorKind = "internal"
)

// 業務エラーは全部これで返す。未処理のpanicにはしない
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewError(kind ErrorKind, message string) error {
	return &Error{Kind: kind, Message: message}
}

func AsError(err error) (*Error, bool) {
	var ue *Error
	ok := errors.As(err, &ue)
	return ue, ok
}
