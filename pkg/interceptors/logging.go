package interceptors

import (
	"context"
	"log/slog"
	"time"

	"github.com/pribylovaa/hacker-stories/pkg/log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// UnaryLogging логирует unary-вызовы с контекстным логгером.
//
// Поведение:
//   - x-request-id берётся из metadata, иначе генерируется UUID;
//   - в context кладутся request id и обогащённый *slog.Logger (pkg/log);
//   - после handler пишется одна запись уровня Info: msg="grpc", code, dur.
func UnaryLogging(base *slog.Logger) grpc.UnaryServerInterceptor {
	if base == nil {
		base = slog.Default()
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()

		ctx, l := enrich(ctx, base, info.FullMethod)
		resp, err := handler(ctx, req)

		l.Info("grpc",
			slog.String("code", status.Code(err).String()),
			slog.Duration("dur", time.Since(start)),
		)

		return resp, err
	}
}

// StreamLogging - то же для stream-вызовов (health Watch).
// Запись пишется по завершении стрима.
func StreamLogging(base *slog.Logger) grpc.StreamServerInterceptor {
	if base == nil {
		base = slog.Default()
	}

	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()

		ctx, l := enrich(ss.Context(), base, info.FullMethod)
		err := handler(srv, &wrappedStream{ServerStream: ss, ctx: ctx})

		l.Info("grpc_stream",
			slog.String("code", status.Code(err).String()),
			slog.Duration("dur", time.Since(start)),
		)

		return err
	}
}

func enrich(ctx context.Context, base *slog.Logger, method string) (context.Context, *slog.Logger) {
	rid := incomingRequestID(ctx)

	peerStr := "-"
	if p, ok := peer.FromContext(ctx); ok && p != nil && p.Addr != nil {
		peerStr = p.Addr.String()
	}

	l := base.With(
		slog.String("request_id", rid),
		slog.String("method", method),
		slog.String("peer", peerStr),
	)

	ctx = WithRequestID(ctx, rid)
	ctx = log.Into(ctx, l)

	return ctx, l
}

// wrappedStream подменяет контекст стрима.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context { return w.ctx }
