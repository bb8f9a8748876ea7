package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shop/internal/domain/model"
	"shop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLogin_UnknownUser_SameMessage(t *testing.T) {
	users := new(UserRepoMock)
	hasher := new(HasherMock)
	issuer := new(IssuerMock)

	users.On("FindByUsername", mock.Anything, "ghost").Return((*model.User)(nil), nil)

	uc := usecase.NewAuthUsecase(users, hasher, issuer)

	_, err := uc.Login(context.Background(), usecase.LoginInput{Username: "ghost", Password: "pass1234"})
	assertErrContains(t, err, "invalid credentials")
}

func TestLogin_WrongPassword_SameMessage(t *testing.T) {
	users := new(UserRepoMock)
	hasher := new(HasherMock)
	issuer := new(IssuerMock)

	users.On("FindByUsername", mock.Anything, "taro").Return(&model.User{
		ID: 1, Username: "taro", PasswordHash: "hashed", IsActive: true,
	}, nil)
	hasher.On("Verify", "hashed", "wrong").Return(errors.New("mismatch"))

	uc := usecase.NewAuthUsecase(users, hasher, issuer)

	_, err := uc.Login(context.Background(), usecase.LoginInput{Username: "taro", Password: "wrong"})
	assertErrContains(t, err, "invalid credentials")
}

func TestLogin_InactiveUser_Rejected(t *testing.T) {
	users := new(UserRepoMock)
	hasher := new(HasherMock)
	issuer := new(IssuerMock)

	users.On("FindByUsername", mock.Anything, "taro").Return(&model.User{
		ID: 1, Username: "taro", PasswordHash: "hashed", IsActive: false,
	}, nil)

	uc := usecase.NewAuthUsecase(users, hasher, issuer)

	_, err := uc.Login(context.Background(), usecase.LoginInput{Username: "taro", Password: "pass1234"})
	assertErrContains(t, err, "invalid credentials")

	hasher.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
}

func TestLogin_Success_IssuesToken(t *testing.T) {
	users := new(UserRepoMock)
	hasher := new(HasherMock)
	issuer := new(IssuerMock)

	user := &model.User{
		ID: 1, Username: "taro", PasswordHash: "hashed",
		Role: model.RoleAdmin, IsActive: true,
	}
	users.On("FindByUsername", mock.Anything, "taro").Return(user, nil)
	hasher.On("Verify", "hashed", "pass1234").Return(nil)

	expiresAt := time.Now().Add(24 * time.Hour)
	issuer.On("Issue", int64(1), model.RoleAdmin, mock.Anything).Return("signed-token", expiresAt, nil)

	//最終ログイン更新
	users.On("Update", mock.Anything, user).Return(nil)

	uc := usecase.NewAuthUsecase(users, hasher, issuer)

	out, err := uc.Login(context.Background(), usecase.LoginInput{Username: "taro", Password: "pass1234"})
	assert.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, string(model.RoleAdmin), out.Role)
	assert.NotNil(t, user.LastLoginAt)

	issuer.AssertExpectations(t)
}

func TestRegister_ShortPassword(t *testing.T) {
	users := new(UserRepoMock)
	hasher := new(HasherMock)
	issuer := new(IssuerMock)

	uc := usecase.NewAuthUsecase(users, hasher, issuer)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Username: "taro", Email: "taro@example.com", Password: "short",
	})
	assertErrContains(t, err, "at least 8 characters")
}

func TestRegister_DuplicateUsername_Conflict(t *testing.T) {
	users := new(UserRepoMock)
	hasher := new(HasherMock)
	issuer := new(IssuerMock)

	users.On("FindByUsername", mock.Anything, "taro").Return(&model.User{ID: 1}, nil)

	uc := usecase.NewAuthUsecase(users, hasher, issuer)

	_, err := uc.Register(context.Background(), usecase.RegisterInput{
		Username: "taro", Email: "taro@example.com", Password: "pass1234",
	})
	assertErrContains(t, err, "username already exists")

	ue, ok := usecase.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, usecase.KindConflict, ue.Kind)
}

func TestRegister_Success_CustomerRole(t *testing.T) {
	users := new(UserRepoMock)
	hasher := new(HasherMock)
	issuer := new(IssuerMock)

	users.On("FindByUsername", mock.Anything, "taro").Return((*model.User)(nil), nil)
	users.On("FindByEmail", mock.Anything, "taro@example.com").Return((*model.User)(nil), nil)
	hasher.On("Hash", "pass1234").Return("hashed", nil)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Role == model.RoleCustomer && u.IsActive && u.PasswordHash == "hashed"
	})).Return(nil)

	uc := usecase.NewAuthUsecase(users, hasher, issuer)

	created, err := uc.Register(context.Background(), usecase.RegisterInput{
		Username: "taro", Email: "taro@example.com", Password: "pass1234",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, created.Role)

	users.AssertExpectations(t)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	users := new(UserRepoMock)
	hasher := new(HasherMock)
	issuer := new(IssuerMock)

	users.On("FindByID", mock.Anything, int64(1)).Return(&model.User{
		ID: 1, PasswordHash: "hashed",
	}, nil)
	hasher.On("Verify", "hashed", "wrong").Return(errors.New("mismatch"))

	uc := usecase.NewAuthUsecase(users, hasher, issuer)

	err := uc.ChangePassword(context.Background(), 1, usecase.ChangePasswordInput{
		OldPassword: "wrong", NewPassword: "newpass12",
	})
	assertErrContains(t, err, "current password is incorrect")

	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangePassword_Success(t *testing.T) {
	users := new(UserRepoMock)
	hasher := new(HasherMock)
	issuer := new(IssuerMock)

	user := &model.User{ID: 1, PasswordHash: "hashed"}
	users.On("FindByID", mock.Anything, int64(1)).Return(user, nil)
	hasher.On("Verify", "hashed", "oldpass12").Return(nil)
	hasher.On("Hash", "newpass12").Return("newhash", nil)
	users.On("Update", mock.Anything, user).Return(nil)

	uc := usecase.NewAuthUsecase(users, hasher, issuer)

	err := uc.ChangePassword(context.Background(), 1, usecase.ChangePasswordInput{
		OldPassword: "oldpass12", NewPassword: "newpass12",
	})
	assert.NoError(t, err)
	assert.Equal(t, "newhash", user.PasswordHash)
}
