package requestid

import (
	"context"

	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
	"github.com/google/uuid"
)

// HeaderKey 请求 ID 所在的请求头和响应头
const HeaderKey = "X-Request-ID"

type ctxKey struct{}

// NewContext returns a context that carries the given request ID.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request ID stored in ctx, or an empty string.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Server 为每个请求分配请求 ID：沿用请求头中的 X-Request-ID，否则生成 UUID v4，并回写到响应头
func Server() middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req any) (any, error) {
			if tr, ok := transport.FromServerContext(ctx); ok {
				id := tr.RequestHeader().Get(HeaderKey)
				if id == "" {
					id = uuid.New().String()
				}
				tr.ReplyHeader().Set(HeaderKey, id)
				ctx = NewContext(ctx, id)
			}
			return handler(ctx, req)
		}
	}
}
