package usecase

import (
	"context"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

type AdminUserUsecase struct {
	users repo.UserRepository
}

func NewAdminUserUsecase(users repo.UserRepository) *AdminUserUsecase {
	return &AdminUserUsecase{users: users}
}

type AdminUserListOutput struct {
	Items []model.User `json:"items"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

func (u *AdminUserUsecase) List(ctx context.Context, page int, limit int) (AdminUserListOutput, error) {
	if page < 1 {
		return AdminUserListOutput{}, NewError(KindValidation, "invalid page")
	}
	if limit < 1 || limit > 100 {
		return AdminUserListOutput{}, NewError(KindValidation, "invalid limit")
	}

	users, total, err := u.users.List(ctx, page, limit)
	if err != nil {
		return AdminUserListOutput{}, NewError(KindInternal, "db error")
	}

	return AdminUserListOutput{Items: users, Total: total, Page: page, Limit: limit}, nil
}

// 有効/無効の切り替え。自分自身は無効化できない
func (u *AdminUserUsecase) SetActive(ctx context.Context, actorAdminUserID int64, targetUserID int64, active bool) error {
	if actorAdminUserID <= 0 {
		return NewError(KindUnauthorized, "unauthorized")
	}
	if targetUserID <= 0 {
		return NewError(KindValidation, "invalid id")
	}
	if targetUserID == actorAdminUserID && !active {
		return NewError(KindValidation, "cannot deactivate yourself")
	}

	user, err := u.users.FindByID(ctx, targetUserID)
	if err == repo.ErrUserNotFound {
		return NewError(KindNotFound, "user not found")
	}
	if err != nil {
		return NewError(KindInternal, "db error")
	}

	user.IsActive = active
	user.UpdatedAt = time.Now()
	if err := u.users.Update(ctx, user); err != nil {
		return NewError(KindInternal, "db error")
	}
	return nil
}
