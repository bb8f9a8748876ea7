package usecase_test

import (
	"context"
	"testing"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestBannerAdminCreate_TitleRequired(t *testing.T) {
	banners := new(BannerRepoMock)
	uc := usecase.NewBannerUsecase(banners)

	_, err := uc.AdminCreate(context.Background(), 1, usecase.AdminSaveBannerInput{
		Title: "  ", Image: "/img/sale.png",
	})
	assertErrContains(t, err, "title is required")
}

func TestBannerAdminCreate_ImageRequired(t *testing.T) {
	banners := new(BannerRepoMock)
	uc := usecase.NewBannerUsecase(banners)

	_, err := uc.AdminCreate(context.Background(), 1, usecase.AdminSaveBannerInput{
		Title: "セール", Image: "",
	})
	assertErrContains(t, err, "image is required")
}

func TestBannerAdminCreate_Success(t *testing.T) {
	banners := new(BannerRepoMock)

	banners.On("Create", mock.Anything, mock.MatchedBy(func(b model.Banner) bool {
		return b.Title == "セール" && b.Image == "/img/sale.png"
	})).Return(model.Banner{ID: 1, Title: "セール"}, nil)

	uc := usecase.NewBannerUsecase(banners)

	created, err := uc.AdminCreate(context.Background(), 1, usecase.AdminSaveBannerInput{
		Title: "セール", Image: "/img/sale.png", IsActive: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	banners.AssertExpectations(t)
}

func TestBannerAdminUpdate_NotFound(t *testing.T) {
	banners := new(BannerRepoMock)

	banners.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	uc := usecase.NewBannerUsecase(banners)

	err := uc.AdminUpdate(context.Background(), 1, 99, usecase.AdminSaveBannerInput{
		Title: "セール", Image: "/img/sale.png",
	})
	assertErrContains(t, err, "banner not found")
}

func TestBannerAdminGet_NotFound(t *testing.T) {
	banners := new(BannerRepoMock)

	banners.On("FindByID", mock.Anything, int64(99)).Return(model.Banner{}, repo.ErrNotFound)

	uc := usecase.NewBannerUsecase(banners)

	_, err := uc.AdminGet(context.Background(), 99)
	assertErrContains(t, err, "banner not found")
}

func TestBannerAdminGet_Success(t *testing.T) {
	banners := new(BannerRepoMock)

	banners.On("FindByID", mock.Anything, int64(1)).Return(model.Banner{ID: 1, Title: "セール"}, nil)

	uc := usecase.NewBannerUsecase(banners)

	got, err := uc.AdminGet(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "セール", got.Title)
}

func TestBannerListActive_Passthrough(t *testing.T) {
	banners := new(BannerRepoMock)

	banners.On("ListActive", mock.Anything).Return([]model.Banner{
		{ID: 1, IsActive: true},
	}, nil)

	uc := usecase.NewBannerUsecase(banners)

	out, err := uc.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out))
}
