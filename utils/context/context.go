package context

import (
	"context"

	"github.com/muhammadheryan/student-marketplace/constant"
)

// WithUserID marks ctx as belonging to an authenticated user.
func WithUserID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, constant.UserIDKey, userID)
}

// GetUserID returns false for anonymous requests.
func GetUserID(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(constant.UserIDKey).(uint64)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}
