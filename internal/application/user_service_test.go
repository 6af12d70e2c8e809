package application_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/itsd-lab/vendorgate/internal/api/middleware"
	"github.com/itsd-lab/vendorgate/internal/application"
	"github.com/itsd-lab/vendorgate/internal/domain/user"
	"github.com/itsd-lab/vendorgate/internal/repository"
	"github.com/itsd-lab/vendorgate/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserMocks(t *testing.T) (*application.UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{User: mockUser}
	return application.NewUserService(repos), mockUser
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestRegisterUser(t *testing.T) {
	t.Run("taken username is refused", func(t *testing.T) {
		svc, repo := setupUserMocks(t)
		repo.EXPECT().GetUserByUsername("alice").Return(user.User{UID: 1, Username: "alice"}, nil)

		err := svc.RegisterUser(user.CreateUserInput{Username: "alice", Password: "secret123"})
		assert.ErrorIs(t, err, application.ErrUsernameTaken)
	})

	t.Run("defaults to assessor and hashes the password", func(t *testing.T) {
		svc, repo := setupUserMocks(t)
		repo.EXPECT().GetUserByUsername("alice").Return(user.User{}, gorm.ErrRecordNotFound)

		var saved user.User
		repo.EXPECT().SaveUser(gomock.Any()).Do(func(u *user.User) {
			saved = *u
		}).Return(nil)

		err := svc.RegisterUser(user.CreateUserInput{Username: "alice", Password: "secret123"})
		assert.NoError(t, err)
		assert.Equal(t, "assessor", saved.Role)
		assert.NotEqual(t, "secret123", saved.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("secret123")))
	})

	t.Run("explicit role is kept", func(t *testing.T) {
		svc, repo := setupUserMocks(t)
		repo.EXPECT().GetUserByUsername("rex").Return(user.User{}, gorm.ErrRecordNotFound)

		var saved user.User
		repo.EXPECT().SaveUser(gomock.Any()).Do(func(u *user.User) {
			saved = *u
		}).Return(nil)

		err := svc.RegisterUser(user.CreateUserInput{Username: "rex", Password: "secret123", Role: ptrString("reviewer")})
		assert.NoError(t, err)
		assert.Equal(t, "reviewer", saved.Role)
	})
}

func TestLoginUser(t *testing.T) {
	oldGenerate := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, username, role string, expireDuration time.Duration) (string, error) {
		return "test-token", nil
	}
	t.Cleanup(func() { middleware.GenerateToken = oldGenerate })

	t.Run("success", func(t *testing.T) {
		svc, repo := setupUserMocks(t)
		repo.EXPECT().GetUserByUsername("alice").Return(user.User{
			UID: 1, Username: "alice", Password: hashOf(t, "secret123"), Role: "assessor",
		}, nil)

		usr, token, err := svc.LoginUser("alice", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "test-token", token)
		assert.Equal(t, uint(1), usr.UID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := setupUserMocks(t)
		repo.EXPECT().GetUserByUsername("alice").Return(user.User{
			Username: "alice", Password: hashOf(t, "secret123"),
		}, nil)

		_, _, err := svc.LoginUser("alice", "wrong")
		assert.EqualError(t, err, "invalid credentials")
	})

	t.Run("unknown user gives the same error", func(t *testing.T) {
		svc, repo := setupUserMocks(t)
		repo.EXPECT().GetUserByUsername("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

		_, _, err := svc.LoginUser("ghost", "whatever")
		assert.EqualError(t, err, "invalid credentials")
	})
}

func TestUpdateUser(t *testing.T) {
	t.Run("reserved admin cannot be downgraded", func(t *testing.T) {
		svc, repo := setupUserMocks(t)
		repo.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1, Username: "admin", Role: "admin"}, nil)

		_, err := svc.UpdateUser(1, user.UpdateUserInput{Role: ptrString("assessor")})
		assert.ErrorIs(t, err, application.ErrReservedAdminUser)
	})

	t.Run("password change requires the old password", func(t *testing.T) {
		svc, repo := setupUserMocks(t)
		repo.EXPECT().GetUserByID(uint(2)).Return(user.User{UID: 2, Username: "alice"}, nil)

		_, err := svc.UpdateUser(2, user.UpdateUserInput{Password: ptrString("newpass1")})
		assert.ErrorIs(t, err, application.ErrMissingOldPassword)
	})

	t.Run("wrong old password is refused", func(t *testing.T) {
		svc, repo := setupUserMocks(t)
		repo.EXPECT().GetUserByID(uint(2)).Return(user.User{
			UID: 2, Username: "alice", Password: hashOf(t, "secret123"),
		}, nil)

		_, err := svc.UpdateUser(2, user.UpdateUserInput{
			OldPassword: ptrString("nope"),
			Password:    ptrString("newpass1"),
		})
		assert.ErrorIs(t, err, application.ErrIncorrectPassword)
	})

	t.Run("profile fields are applied", func(t *testing.T) {
		svc, repo := setupUserMocks(t)
		repo.EXPECT().GetUserByID(uint(2)).Return(user.User{UID: 2, Username: "alice", Role: "assessor"}, nil)

		var saved user.User
		repo.EXPECT().SaveUser(gomock.Any()).Do(func(u *user.User) {
			saved = *u
		}).Return(nil)

		updated, err := svc.UpdateUser(2, user.UpdateUserInput{
			Email:      ptrString("alice@bank.test"),
			Department: ptrString("ITSD"),
			Role:       ptrString("reviewer"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "reviewer", updated.Role)
		assert.Equal(t, "alice@bank.test", *saved.Email)
		assert.Equal(t, "ITSD", *saved.Department)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, repo := setupUserMocks(t)
		repo.EXPECT().GetUserByID(uint(9)).Return(user.User{}, gorm.ErrRecordNotFound)

		_, err := svc.UpdateUser(9, user.UpdateUserInput{})
		assert.ErrorIs(t, err, application.ErrUserNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("reserved admin is protected", func(t *testing.T) {
		svc, repo := setupUserMocks(t)
		repo.EXPECT().GetUserByID(uint(1)).Return(user.User{UID: 1, Username: "admin", Role: "admin"}, nil)

		assert.ErrorIs(t, svc.DeleteUser(1), application.ErrReservedAdminUser)
	})

	t.Run("regular user is deleted", func(t *testing.T) {
		svc, repo := setupUserMocks(t)
		repo.EXPECT().GetUserByID(uint(2)).Return(user.User{UID: 2, Username: "alice"}, nil)
		repo.EXPECT().DeleteUser(uint(2)).Return(nil)

		assert.NoError(t, svc.DeleteUser(2))
	})
}

func ptrString(s string) *string {
	return &s
}
