package context

import (
	"context"

	"github.com/ShohjahonSohibov/Aberno/constant"
)

// WithIdentity stores the authenticated subject and its role on ctx.
func WithIdentity(ctx context.Context, subjectID string, role constant.Role) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, subjectID)
	return context.WithValue(ctx, constant.RoleKey, role)
}

func GetUserID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func GetRole(ctx context.Context) (constant.Role, bool) {
	v := ctx.Value(constant.RoleKey)
	if v == nil {
		return "", false
	}
	role, ok := v.(constant.Role)
	return role, ok
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, constant.ClientIPKey, ip)
}

// GetClientIP returns "" when the request address was never recorded.
func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(constant.ClientIPKey).(string)
	return ip
}
