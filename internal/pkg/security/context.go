package security

import (
	"NovaAff/internal/pkg/consts"
	"context"
)

// WithIdentity 将当前账号写入请求上下文
func WithIdentity(ctx context.Context, userID uint64, role string) context.Context {
	ctx = context.WithValue(ctx, consts.UserIDKey, userID)
	return context.WithValue(ctx, consts.RoleKey, role)
}

func UserIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(consts.UserIDKey).(uint64)
	return id, ok && id != 0
}

func RoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(consts.RoleKey).(string)
	return role
}
