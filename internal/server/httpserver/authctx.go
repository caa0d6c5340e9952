package httpserver

import "context"

type ctxKey string

const userIDKey ctxKey = "fn.userID"

// WithUserID stores the authenticated user id in the context.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx fetches the authenticated user id from the context.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	v := ctx.Value(userIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
