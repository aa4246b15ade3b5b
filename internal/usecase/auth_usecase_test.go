package usecase_test

import (
	"context"
	"testing"
	"time"

	"agrimart/internal/domain/model"
	repo "agrimart/internal/repository"
	"agrimart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type issuerStub struct {
	token string
	ttl   time.Duration
}

func (i *issuerStub) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	return i.token, now.Add(i.ttl), nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestAuthLogin_Success(t *testing.T) {
	users := &UserRepoMock{}
	users.On("FindByEmail", mock.Anything, "vendor@example.com").Return(model.User{
		ID:           42,
		Email:        "vendor@example.com",
		PasswordHash: hashOf(t, "correct-horse"),
		Role:         model.RoleVendor,
		IsActive:     true,
	}, nil)
	users.On("UpdateLastLogin", mock.Anything, int64(42)).Return(nil)

	uc := usecase.NewAuthUsecase(users, &issuerStub{token: "tok", ttl: 15 * time.Minute})

	out, err := uc.Login(context.Background(), usecase.LoginInput{
		// 大文字や空白はログイン前に正規化される
		Email:    "  Vendor@Example.com ",
		Password: "correct-horse",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok", out.AccessToken)
	assert.Equal(t, int64(42), out.UserID)
	assert.Equal(t, model.RoleVendor, out.Role)
	assert.Equal(t, int((15 * time.Minute).Seconds()), out.ExpiresIn)
	users.AssertExpectations(t)
}

func TestAuthLogin_WrongPassword(t *testing.T) {
	users := &UserRepoMock{}
	users.On("FindByEmail", mock.Anything, "vendor@example.com").Return(model.User{
		ID:           42,
		PasswordHash: hashOf(t, "correct-horse"),
		Role:         model.RoleVendor,
		IsActive:     true,
	}, nil)

	uc := usecase.NewAuthUsecase(users, &issuerStub{token: "tok", ttl: time.Minute})

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "vendor@example.com",
		Password: "wrong",
	})

	assertErrContains(t, err, "unauthorized")
	users.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything)
}

func TestAuthLogin_UnknownEmailSameError(t *testing.T) {
	users := &UserRepoMock{}
	users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(model.User{}, repo.ErrNotFound)

	uc := usecase.NewAuthUsecase(users, &issuerStub{token: "tok", ttl: time.Minute})

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// メールの存在有無でエラーを変えない
	assertErrContains(t, err, "unauthorized")
}

func TestAuthLogin_InactiveUser(t *testing.T) {
	users := &UserRepoMock{}
	users.On("FindByEmail", mock.Anything, "gone@example.com").Return(model.User{
		ID:           7,
		PasswordHash: hashOf(t, "pw"),
		IsActive:     false,
	}, nil)

	uc := usecase.NewAuthUsecase(users, &issuerStub{token: "tok", ttl: time.Minute})

	_, err := uc.Login(context.Background(), usecase.LoginInput{
		Email:    "gone@example.com",
		Password: "pw",
	})

	assertErrContains(t, err, "unauthorized")
}

func TestAuthLogin_MissingFields(t *testing.T) {
	uc := usecase.NewAuthUsecase(&UserRepoMock{}, &issuerStub{})

	_, err := uc.Login(context.Background(), usecase.LoginInput{Email: "", Password: ""})

	assertErrContains(t, err, "required")
}
