package service

import (
	"context"
	"strings"
	"sync"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

const lockStripes = 64

// DefaultPageSize is the listing page size when the caller does not ask for one.
const DefaultPageSize = 20

// PostService implements the post lifecycle: create, list, get, edit, delete.
// Every mutation follows the same sequence: fetch the post, authorize the
// acting user against it, then mutate. The sequence is serialized per post id
// with a striped mutex so two racing mutations of the same post cannot
// interleave between the ownership check and the write; operations on
// different posts proceed in parallel.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	locks    [lockStripes]sync.Mutex
}

type CreatePostInput struct {
	ActorUserID string
	Title       string
	Body        string
}

type ListPostsInput struct {
	Limit  int
	Offset int
}

type UpdatePostInput struct {
	ActorUserID string
	PostID      uint
	Title       string
	Body        string
}

type DeletePostInput struct {
	ActorUserID string
	PostID      uint
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *PostService) lockFor(id uint) *sync.Mutex {
	return &s.locks[id%lockStripes]
}

const (
	maxTitleLen = 300
	maxBodyLen  = 50000 // 50K characters
)

func validatePostFields(title, body string) error {
	if strings.TrimSpace(title) == "" {
		return models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 300 characters)")
	}
	if len(body) > maxBodyLen {
		return models.NewValidationError("Body too long (max 50000 characters)")
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.ActorUserID == "" {
		return nil, models.NewForbiddenError("You must be signed in to create posts")
	}
	if err := validatePostFields(in.Title, in.Body); err != nil {
		return nil, err
	}

	creator, err := s.userRepo.GetByUserID(ctx, in.ActorUserID)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, models.NewNotFoundError("User", in.ActorUserID)
	}

	post := &models.Post{
		Title:         in.Title,
		Body:          in.Body,
		CreatorName:   creator.Name,
		CreatorUserID: creator.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]*models.Post, error) {
	// Only the exact default first page is hot enough to cache; any other
	// limit or offset goes straight to the store. The key is shared, so a
	// shorter page must never populate it.
	if in.Offset == 0 && in.Limit == DefaultPageSize {
		var posts []*models.Post
		err := cache.Aside(ctx, cache.PostsListKey(), &posts, cache.ListTTL, func() error {
			var fetchErr error
			posts, fetchErr = s.postRepo.List(ctx, in.Limit, in.Offset)
			return fetchErr
		})
		if err != nil {
			return nil, err
		}
		return posts, nil
	}
	return s.postRepo.List(ctx, in.Limit, in.Offset)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *PostService) GetUserPosts(ctx context.Context, creatorUserID string, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.GetByCreator(ctx, creatorUserID, limit, offset)
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	mu := s.lockFor(in.PostID)
	mu.Lock()
	defer mu.Unlock()

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if Authorize(post, in.ActorUserID) != Allow {
		return nil, models.NewForbiddenError("You can only update your own posts")
	}

	// The edit replaces title and body wholesale, so it is held to the same
	// validation as create.
	if err := validatePostFields(in.Title, in.Body); err != nil {
		return nil, err
	}

	return s.postRepo.Update(ctx, in.PostID, in.Title, in.Body)
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	mu := s.lockFor(in.PostID)
	mu.Lock()
	defer mu.Unlock()

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}

	if Authorize(post, in.ActorUserID) != Allow {
		return models.NewForbiddenError("You can only delete your own posts")
	}

	return s.postRepo.Delete(ctx, in.PostID)
}
