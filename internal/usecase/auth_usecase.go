package usecase

import (
	"context"
	"strings"
	"time"

	"agrimart/internal/domain/model"
	repo "agrimart/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(userID int64, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

type AuthUsecase struct {
	users  repo.UserRepository
	issuer AccessTokenIssuer
}

func NewAuthUsecase(users repo.UserRepository, issuer AccessTokenIssuer) *AuthUsecase {
	return &AuthUsecase{users: users, issuer: issuer}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string     `json:"access_token"`
	ExpiresIn   int        `json:"expires_in"`
	UserID      int64      `json:"user_id"`
	Role        model.Role `json:"role"`
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" {
		return LoginOutput{}, errValidation("email and password are required")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err == repo.ErrNotFound {
		// メール存在の有無は漏らさない
		return LoginOutput{}, errUnauthorized()
	}
	if err != nil {
		return LoginOutput{}, dbError(err)
	}
	if !user.IsActive {
		return LoginOutput{}, errUnauthorized()
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return LoginOutput{}, errUnauthorized()
	}

	now := time.Now()
	token, expiresAt, err := u.issuer.Issue(user.ID, user.Role, now)
	if err != nil {
		return LoginOutput{}, dbError(err)
	}

	if err := u.users.UpdateLastLogin(ctx, user.ID); err != nil {
		return LoginOutput{}, dbError(err)
	}

	return LoginOutput{
		AccessToken: token,
		ExpiresIn:   int(expiresAt.Sub(now).Seconds()),
		UserID:      user.ID,
		Role:        user.Role,
	}, nil
}
