package service

import "inkwell/internal/models"

// Decision is the outcome of an ownership check.
type Decision int

const (
	Deny Decision = iota
	Allow
)

// Authorize reports whether the acting user may mutate the given post.
// Anonymous actors (empty id) and non-owners are denied. The check is a pure
// function of its inputs so it can never observe stale state on its own; the
// caller is responsible for fetching the post immediately before deciding.
func Authorize(post *models.Post, actingUserID string) Decision {
	if post == nil {
		return Deny
	}
	if actingUserID == "" {
		return Deny
	}
	if post.CreatorUserID != actingUserID {
		return Deny
	}
	return Allow
}
