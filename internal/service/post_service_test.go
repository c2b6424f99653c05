package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint) (*models.Post, error)
	getByCreatorFn func(context.Context, string, int, int) ([]*models.Post, error)
	listFn         func(context.Context, int, int) ([]*models.Post, error)
	updateFn       func(context.Context, uint, string, string) (*models.Post, error)
	deleteFn       func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetByCreator(ctx context.Context, creatorUserID string, limit, offset int) ([]*models.Post, error) {
	return s.getByCreatorFn(ctx, creatorUserID, limit, offset)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) Update(ctx context.Context, id uint, title, body string) (*models.Post, error) {
	return s.updateFn(ctx, id, title, body)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:       func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:      func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		getByCreatorFn: func(_ context.Context, _ string, _, _ int) ([]*models.Post, error) { return nil, nil },
		listFn:         func(_ context.Context, _, _ int) ([]*models.Post, error) { return nil, nil },
		updateFn: func(_ context.Context, id uint, title, body string) (*models.Post, error) {
			return &models.Post{ID: id, Title: title, Body: body}, nil
		},
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn      func(context.Context, *models.User) error
	getByUserIDFn func(context.Context, string) (*models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByUserID(ctx context.Context, userID string) (*models.User, error) {
	return s.getByUserIDFn(ctx, userID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, _ *models.User) error { return nil },
		getByUserIDFn: func(_ context.Context, id string) (*models.User, error) {
			return &models.User{UserID: id, Name: "Stub User"}, nil
		},
	}
}

// assertAppCode asserts that err is an AppError with the given code.
func assertAppCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func TestPostService_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo(), noopUserRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		input CreatePostInput
	}{
		{
			name:  "empty title",
			input: CreatePostInput{ActorUserID: "alice", Body: "some body"},
		},
		{
			name:  "whitespace title",
			input: CreatePostInput{ActorUserID: "alice", Title: "   ", Body: "some body"},
		},
		{
			name:  "title too long",
			input: CreatePostInput{ActorUserID: "alice", Title: strings.Repeat("x", 301), Body: "b"},
		},
		{
			name:  "body too long",
			input: CreatePostInput{ActorUserID: "alice", Title: "T", Body: strings.Repeat("x", 50001)},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreatePost(ctx, tc.input)
			assertAppCode(t, err, models.CodeValidation)
		})
	}
}

func TestPostService_CreatePost_AnonymousDenied(t *testing.T) {
	t.Parallel()

	svc := NewPostService(noopPostRepo(), noopUserRepo())
	_, err := svc.CreatePost(context.Background(), CreatePostInput{Title: "T", Body: "B"})
	assertAppCode(t, err, models.CodeForbidden)
}

func TestPostService_CreatePost_StampsCreator(t *testing.T) {
	t.Parallel()

	users := noopUserRepo()
	users.getByUserIDFn = func(_ context.Context, id string) (*models.User, error) {
		return &models.User{UserID: id, Name: "Alice Liddell"}, nil
	}

	var created *models.Post
	repo := noopPostRepo()
	repo.createFn = func(_ context.Context, post *models.Post) error {
		created = post
		return nil
	}

	svc := NewPostService(repo, users)
	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		ActorUserID: "alice",
		Title:       "First entry",
		Body:        "Down the rabbit hole.",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "alice", post.CreatorUserID)
	assert.Equal(t, "Alice Liddell", post.CreatorName)
}

func TestPostService_UpdatePost_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("non-owner cannot update", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, CreatorUserID: "alice"}, nil
		}
		svc := NewPostService(repo, noopUserRepo())
		_, err := svc.UpdatePost(context.Background(), UpdatePostInput{ActorUserID: "bob", PostID: 1, Title: "new", Body: "b"})
		assertAppCode(t, err, models.CodeForbidden)
	})

	t.Run("anonymous cannot update", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, CreatorUserID: "alice"}, nil
		}
		svc := NewPostService(repo, noopUserRepo())
		_, err := svc.UpdatePost(context.Background(), UpdatePostInput{PostID: 1, Title: "new", Body: "b"})
		assertAppCode(t, err, models.CodeForbidden)
	})

	t.Run("owner can update", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, CreatorUserID: "alice", Title: "old"}, nil
		}
		svc := NewPostService(repo, noopUserRepo())
		post, err := svc.UpdatePost(context.Background(), UpdatePostInput{ActorUserID: "alice", PostID: 1, Title: "new", Body: "b"})
		require.NoError(t, err)
		assert.Equal(t, "new", post.Title)
	})

	t.Run("owner update with empty title is rejected", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, CreatorUserID: "alice", Title: "old"}, nil
		}
		svc := NewPostService(repo, noopUserRepo())
		_, err := svc.UpdatePost(context.Background(), UpdatePostInput{ActorUserID: "alice", PostID: 1, Title: "", Body: "b"})
		assertAppCode(t, err, models.CodeValidation)
	})

	t.Run("absent post is not-found even for a would-be non-owner", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		}
		svc := NewPostService(repo, noopUserRepo())
		_, err := svc.UpdatePost(context.Background(), UpdatePostInput{ActorUserID: "bob", PostID: 99, Title: "new", Body: "b"})
		assertAppCode(t, err, models.CodeNotFound)
	})
}

func TestPostService_DeletePost_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("owner can delete", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, CreatorUserID: "alice"}, nil
		}
		svc := NewPostService(repo, noopUserRepo())
		err := svc.DeletePost(context.Background(), DeletePostInput{ActorUserID: "alice", PostID: 1})
		assert.NoError(t, err)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		deleted := false
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, CreatorUserID: "alice"}, nil
		}
		repo.deleteFn = func(_ context.Context, _ uint) error {
			deleted = true
			return nil
		}
		svc := NewPostService(repo, noopUserRepo())
		err := svc.DeletePost(context.Background(), DeletePostInput{ActorUserID: "bob", PostID: 1})
		assertAppCode(t, err, models.CodeForbidden)
		assert.False(t, deleted, "delete must not reach the store for a non-owner")
	})

	t.Run("anonymous cannot delete", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
			return &models.Post{ID: 1, CreatorUserID: "alice"}, nil
		}
		svc := NewPostService(repo, noopUserRepo())
		err := svc.DeletePost(context.Background(), DeletePostInput{PostID: 1})
		assertAppCode(t, err, models.CodeForbidden)
	})

	t.Run("absent post is not-found before any ownership decision", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return nil, models.NewNotFoundError("Post", id)
		}
		svc := NewPostService(repo, noopUserRepo())
		err := svc.DeletePost(context.Background(), DeletePostInput{ActorUserID: "bob", PostID: 99})
		assertAppCode(t, err, models.CodeNotFound)
	})
}

func TestPostService_GetUserPosts_PassesCreator(t *testing.T) {
	t.Parallel()

	repo := noopPostRepo()
	var gotCreator string
	repo.getByCreatorFn = func(_ context.Context, creator string, _, _ int) ([]*models.Post, error) {
		gotCreator = creator
		return []*models.Post{{ID: 1, CreatorUserID: creator}}, nil
	}
	svc := NewPostService(repo, noopUserRepo())

	posts, err := svc.GetUserPosts(context.Background(), "alice", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, "alice", gotCreator)
	assert.Len(t, posts, 1)
}
