// interceptors предоставляет набор gRPC-интерсепторов для серверной стороны
// и общий для HTTP и gRPC носитель request id в контексте.
package interceptors

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

// MetadataRequestID - ключ metadata (и, в каноническом виде, HTTP-заголовок X-Request-Id).
const MetadataRequestID = "x-request-id"

type ctxKey struct{}

// WithRequestID кладёт request id в контекст.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// RequestID достаёт request id из контекста; "" если его нет.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// NewRequestID генерирует новый идентификатор запроса (UUID v4).
func NewRequestID() string {
	return uuid.NewString()
}

// incomingRequestID берёт x-request-id из входящей metadata, иначе генерирует новый.
func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(MetadataRequestID); len(v) > 0 && v[0] != "" {
			return v[0]
		}
	}
	return NewRequestID()
}
