// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUserID(ctx context.Context, userID string) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("User ID is already taken")
		}
		return models.NewStorageError(err)
	}
	return nil
}

// userCacheEntry is the Redis representation of a user. The wire model drops
// the password hash via its json tag, so caching models.User directly would
// strip the hash and break credential checks against a warm cache. This entry
// round-trips every column.
type userCacheEntry struct {
	UserID    string    `json:"user_id"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *userCacheEntry) toUser() *models.User {
	return &models.User{
		UserID:    e.UserID,
		Password:  e.Password,
		Name:      e.Name,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// GetByUserID returns (nil, nil) when no user with the given ID exists.
// Callers decide whether absence is an error.
func (r *userRepository) GetByUserID(ctx context.Context, userID string) (*models.User, error) {
	var entry userCacheEntry
	err := cache.Aside(ctx, cache.UserKey(userID), &entry, cache.UserTTL, func() error {
		var user models.User
		if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return gorm.ErrRecordNotFound
			}
			return models.NewStorageError(err)
		}
		entry = userCacheEntry{
			UserID:    user.UserID,
			Password:  user.Password,
			Name:      user.Name,
			CreatedAt: user.CreatedAt,
			UpdatedAt: user.UpdatedAt,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entry.toUser(), nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; sqlite reports "UNIQUE constraint failed"
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
