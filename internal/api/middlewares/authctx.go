package middlewares

import "context"

const (
	ctxKeyUserID ctxKey = iota + 1
	ctxKeyRoles
)

func WithUser(ctx context.Context, userID string, roles []string) context.Context {
	ctx = context.WithValue(ctx, ctxKeyUserID, userID)
	return context.WithValue(ctx, ctxKeyRoles, roles)
}

func UserIDFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyUserID).(string)
	return v, ok && v != ""
}

// RolesFrom returns the role set carried with the request.
func RolesFrom(ctx context.Context) []string {
	v, _ := ctx.Value(ctxKeyRoles).([]string)
	return v
}

func HasRole(ctx context.Context, role string) bool {
	for _, r := range RolesFrom(ctx) {
		if r == role {
			return true
		}
	}
	return false
}
