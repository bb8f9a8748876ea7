package usecase

import "github.com/google/uuid"

// slug衝突時に足す短い接尾辞
func slugSuffix() string {
	return uuid.NewString()[:8]
}
