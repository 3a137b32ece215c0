package utils

import (
	"context"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserNameKey contextKey = "user_name"
	RoleKey     contextKey = "role"
)

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return "", false
	}

	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return "", false
	}

	return userID, true
}

func GetUserNameFromContext(ctx context.Context) (string, bool) {
	nameVal := ctx.Value(UserNameKey)
	if nameVal == nil {
		return "", false
	}

	name, ok := nameVal.(string)
	return name, ok
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func SetUserContext(ctx context.Context, userID, userName, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, UserNameKey, userName)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}
