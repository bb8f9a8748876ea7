package usecase

import (
	"context"
	"strings"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
)

type BannerUsecase struct {
	bannerRepo repo.BannerRepository
}

func NewBannerUsecase(bannerRepo repo.BannerRepository) *BannerUsecase {
	return &BannerUsecase{bannerRepo: bannerRepo}
}

// トップページ用（公開中のみ、sort_order昇順）
func (u *BannerUsecase) ListActive(ctx context.Context) ([]model.Banner, error) {
	banners, err := u.bannerRepo.ListActive(ctx)
	if err != nil {
		return nil, NewError(KindInternal, "db error")
	}
	return banners, nil
}

// 管理画面用（全件）
func (u *BannerUsecase) AdminList(ctx context.Context) ([]model.Banner, error) {
	banners, err := u.bannerRepo.ListAll(ctx)
	if err != nil {
		return nil, NewError(KindInternal, "db error")
	}
	return banners, nil
}

// 編集フォーム用の1件取得
func (u *BannerUsecase) AdminGet(ctx context.Context, bannerID int64) (model.Banner, error) {
	if bannerID <= 0 {
		return model.Banner{}, NewError(KindValidation, "invalid id")
	}

	banner, err := u.bannerRepo.FindByID(ctx, bannerID)
	if err == repo.ErrNotFound {
		return model.Banner{}, NewError(KindNotFound, "banner not found")
	}
	if err != nil {
		return model.Banner{}, NewError(KindInternal, "db error")
	}
	return banner, nil
}

type AdminSaveBannerInput struct {
	Name      string
	Title     string
	Subtitle  string
	Image     string
	Link      string
	SortOrder int
	IsActive  bool
}

func (u *BannerUsecase) AdminCreate(ctx context.Context, adminUserID int64, in AdminSaveBannerInput) (model.Banner, error) {
	if adminUserID <= 0 {
		return model.Banner{}, NewError(KindUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Title) == "" {
		return model.Banner{}, NewError(KindValidation, "title is required")
	}
	if strings.TrimSpace(in.Image) == "" {
		return model.Banner{}, NewError(KindValidation, "image is required")
	}

	now := time.Now()
	created, err := u.bannerRepo.Create(ctx, model.Banner{
		Name:      strings.TrimSpace(in.Name),
		Title:     strings.TrimSpace(in.Title),
		Subtitle:  in.Subtitle,
		Image:     strings.TrimSpace(in.Image),
		Link:      strings.TrimSpace(in.Link),
		SortOrder: in.SortOrder,
		IsActive:  in.IsActive,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return model.Banner{}, NewError(KindInternal, "db error")
	}
	return created, nil
}

func (u *BannerUsecase) AdminUpdate(ctx context.Context, adminUserID int64, bannerID int64, in AdminSaveBannerInput) error {
	if adminUserID <= 0 {
		return NewError(KindUnauthorized, "unauthorized")
	}
	if bannerID <= 0 {
		return NewError(KindValidation, "invalid id")
	}
	if strings.TrimSpace(in.Title) == "" {
		return NewError(KindValidation, "title is required")
	}
	if strings.TrimSpace(in.Image) == "" {
		return NewError(KindValidation, "image is required")
	}

	err := u.bannerRepo.Update(ctx, model.Banner{
		ID:        bannerID,
		Name:      strings.TrimSpace(in.Name),
		Title:     strings.TrimSpace(in.Title),
		Subtitle:  in.Subtitle,
		Image:     strings.TrimSpace(in.Image),
		Link:      strings.TrimSpace(in.Link),
		SortOrder: in.SortOrder,
		IsActive:  in.IsActive,
		UpdatedAt: time.Now(),
	})
	if err == repo.ErrNotFound {
		return NewError(KindNotFound, "banner not found")
	}
	if err != nil {
		return NewError(KindInternal, "db error")
	}
	return nil
}

func (u *BannerUsecase) AdminDelete(ctx context.Context, adminUserID int64, bannerID int64) error {
	if adminUserID <= 0 {
		return NewError(KindUnauthorized, "unauthorized")
	}
	if bannerID <= 0 {
		return NewError(KindValidation, "invalid id")
	}

	err := u.bannerRepo.Delete(ctx, bannerID)
	if err == repo.ErrNotFound {
		return NewError(KindNotFound, "banner not found")
	}
	if err != nil {
		return NewError(KindInternal, "db error")
	}
	return nil
}
