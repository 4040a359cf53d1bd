package identity

import (
	"context"

	"github.com/google/uuid"
)

// Identity - аутентифицированный пользователь текущего запроса.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   string
}

type ctxKey struct{}

// WithIdentity кладёт identity в контекст запроса.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext достаёт identity; ok=false для анонимного запроса.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok || id.UserID == uuid.Nil {
		return Identity{}, false
	}
	return id, true
}
