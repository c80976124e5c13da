package token

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type claimsKey struct{}

// FromContext returns the verified claims the interceptor stored, if any.
func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok
}

// verifyCallMetadata checks the authorization metadata entry and returns the
// claims it carries. Absence, a malformed header, and an invalid or expired
// token all yield Unauthenticated.
func (m *Manager) verifyCallMetadata(ctx context.Context) (*Claims, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing call metadata")
	}

	vals := md.Get("authorization")
	if len(vals) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing authorization header")
	}

	raw, found := strings.CutPrefix(vals[0], "Bearer ")
	if !found || raw == "" {
		return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization header")
	}

	claims, err := m.Verify(raw)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}
	return claims, nil
}

// UnaryInterceptor authenticates every unary call on the server.
func (m *Manager) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		claims, err := m.verifyCallMetadata(ctx)
		if err != nil {
			return nil, err
		}
		return handler(context.WithValue(ctx, claimsKey{}, claims), req)
	}
}

// StreamInterceptor authenticates every streaming call on the server.
func (m *Manager) StreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		claims, err := m.verifyCallMetadata(ss.Context())
		if err != nil {
			return err
		}
		return handler(srv, &authedStream{ServerStream: ss, claims: claims})
	}
}

type authedStream struct {
	grpc.ServerStream
	claims *Claims
}

func (s *authedStream) Context() context.Context {
	return context.WithValue(s.ServerStream.Context(), claimsKey{}, s.claims)
}
