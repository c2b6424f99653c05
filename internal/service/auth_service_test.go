package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func emptyUserRepo() *userRepoStub {
	repo := noopUserRepo()
	repo.getByUserIDFn = func(_ context.Context, _ string) (*models.User, error) { return nil, nil }
	return repo
}

func TestAuthService_SignUp(t *testing.T) {
	t.Parallel()

	t.Run("success hashes the password", func(t *testing.T) {
		t.Parallel()
		var created *models.User
		repo := emptyUserRepo()
		repo.createFn = func(_ context.Context, user *models.User) error {
			created = user
			return nil
		}
		svc := NewAuthService(repo)

		user, err := svc.SignUp(context.Background(), SignUpInput{
			UserID:   "alice",
			Password: "wonderland1",
			Name:     "Alice Liddell",
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "alice", user.UserID)
		assert.NotEqual(t, "wonderland1", created.Password, "password must be stored hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("wonderland1")))
	})

	t.Run("taken user id conflicts", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo() // getByUserID always finds a user
		svc := NewAuthService(repo)

		_, err := svc.SignUp(context.Background(), SignUpInput{
			UserID:   "alice",
			Password: "wonderland1",
			Name:     "Second Alice",
		})
		assertAppCode(t, err, models.CodeConflict)
	})

	t.Run("invalid input", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(emptyUserRepo())

		tests := []struct {
			name  string
			input SignUpInput
		}{
			{"empty user id", SignUpInput{Password: "wonderland1", Name: "A"}},
			{"user id too short", SignUpInput{UserID: "al", Password: "wonderland1", Name: "A"}},
			{"user id with spaces", SignUpInput{UserID: "al ice", Password: "wonderland1", Name: "A"}},
			{"password too short", SignUpInput{UserID: "alice", Password: "pw1", Name: "A"}},
			{"password without digit", SignUpInput{UserID: "alice", Password: "wonderland", Name: "A"}},
			{"empty name", SignUpInput{UserID: "alice", Password: "wonderland1"}},
		}
		for _, tc := range tests {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				_, err := svc.SignUp(context.Background(), tc.input)
				assertAppCode(t, err, models.CodeValidation)
			})
		}
	})
}

func TestAuthService_SignIn(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("wonderland1"), bcrypt.MinCost)
	require.NoError(t, err)

	knownUser := func() *userRepoStub {
		repo := noopUserRepo()
		repo.getByUserIDFn = func(_ context.Context, id string) (*models.User, error) {
			if id == "alice" {
				return &models.User{UserID: "alice", Password: string(hashed), Name: "Alice"}, nil
			}
			return nil, nil
		}
		return repo
	}

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(knownUser())
		user, err := svc.SignIn(context.Background(), "alice", "wonderland1")
		require.NoError(t, err)
		assert.Equal(t, "alice", user.UserID)
	})

	t.Run("unknown user id", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(knownUser())
		_, err := svc.SignIn(context.Background(), "mallory", "wonderland1")
		assertAppCode(t, err, models.CodeInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(knownUser())
		_, err := svc.SignIn(context.Background(), "alice", "not-the-password1")
		assertAppCode(t, err, models.CodeInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(knownUser())
		_, err := svc.SignIn(context.Background(), "", "")
		assertAppCode(t, err, models.CodeInvalidCredentials)
	})
}
