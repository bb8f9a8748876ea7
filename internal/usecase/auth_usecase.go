package usecase

import (
	"context"
	"strings"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"
	"shop/internal/validator"
)

// パスワードのハッシュ化と照合。実装はbcrypt
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash string, plain string) error
}

// アクセストークンの発行。実装はmain.goのJWT issuer
type TokenIssuer interface {
	Issue(userID int64, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

type AuthUsecase struct {
	users  repo.UserRepository
	hasher PasswordHasher
	issuer TokenIssuer
}

func NewAuthUsecase(users repo.UserRepository, hasher PasswordHasher, issuer TokenIssuer) *AuthUsecase {
	return &AuthUsecase{users: users, hasher: hasher, issuer: issuer}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
}

// Login はユーザー名とパスワードを照合してJWTを返す。
// 無効化されたユーザーはログインできない
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return LoginOutput{}, NewError(KindValidation, "username and password are required")
	}

	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return LoginOutput{}, NewError(KindInternal, "db error")
	}
	//存在しない場合も同じメッセージにする（列挙対策）
	if user == nil {
		return LoginOutput{}, NewError(KindUnauthorized, "invalid credentials")
	}
	if !user.IsActive {
		return LoginOutput{}, NewError(KindUnauthorized, "invalid credentials")
	}
	if err := u.hasher.Verify(user.PasswordHash, in.Password); err != nil {
		return LoginOutput{}, NewError(KindUnauthorized, "invalid credentials")
	}

	now := time.Now()
	token, expiresAt, err := u.issuer.Issue(user.ID, user.Role, now)
	if err != nil {
		return LoginOutput{}, NewError(KindInternal, "token error")
	}

	//最終ログインを更新（失敗してもログイン自体は成功扱い）
	user.LastLoginAt = &now
	_ = u.users.Update(ctx, user)

	return LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
	}, nil
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register は一般ユーザーとして登録する（管理者はDB側で昇格）
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if username == "" {
		return nil, NewError(KindValidation, "username is required")
	}
	if email == "" || !validator.IsEmailLike(email) {
		return nil, NewError(KindValidation, "invalid email")
	}
	if len(in.Password) < 8 {
		return nil, NewError(KindValidation, "password must be at least 8 characters")
	}

	//重複チェック
	if existing, err := u.users.FindByUsername(ctx, username); err != nil {
		return nil, NewError(KindInternal, "db error")
	} else if existing != nil {
		return nil, NewError(KindConflict, "username already exists")
	}
	if existing, err := u.users.FindByEmail(ctx, email); err != nil {
		return nil, NewError(KindInternal, "db error")
	} else if existing != nil {
		return nil, NewError(KindConflict, "email already exists")
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, NewError(KindInternal, "hash error")
	}

	now := time.Now()
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleCustomer,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, NewError(KindInternal, "db error")
	}
	return user, nil
}

type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

func (u *AuthUsecase) ChangePassword(ctx context.Context, userID int64, in ChangePasswordInput) error {
	if userID <= 0 {
		return NewError(KindUnauthorized, "unauthorized")
	}
	if len(in.NewPassword) < 8 {
		return NewError(KindValidation, "password must be at least 8 characters")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err == repo.ErrUserNotFound {
		return NewError(KindNotFound, "user not found")
	}
	if err != nil {
		return NewError(KindInternal, "db error")
	}

	if err := u.hasher.Verify(user.PasswordHash, in.OldPassword); err != nil {
		return NewError(KindValidation, "current password is incorrect")
	}

	hash, err := u.hasher.Hash(in.NewPassword)
	if err != nil {
		return NewError(KindInternal, "hash error")
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	if err := u.users.Update(ctx, user); err != nil {
		return NewError(KindInternal, "db error")
	}
	return nil
}
