package authrpc

import (
	"context"

	"github.com/dmitrijs2005/authgate/internal/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// RequestIDMetadataKey carries the caller's request ID across the RPC hop.
const RequestIDMetadataKey = "x-request-id"

// UnaryClientRequestID forwards the request ID found in the call context as
// outgoing metadata.
func UnaryClientRequestID() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if id, ok := logging.RequestIDFromContext(ctx); ok {
			ctx = metadata.AppendToOutgoingContext(ctx, RequestIDMetadataKey, id)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// UnaryServerRequestID copies an incoming request ID into the handler context
// so that server-side log records can be correlated with the gateway's.
func UnaryServerRequestID() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if ids := md.Get(RequestIDMetadataKey); len(ids) > 0 {
				ctx = logging.ContextWithRequestID(ctx, ids[0])
			}
		}
		return handler(ctx, req)
	}
}
