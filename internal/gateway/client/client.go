// Package client is the gateway's view of the authentication service: a
// gRPC client that applies a fixed per-call timeout and translates remote
// faults into a small set of outward errors.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authgate/internal/authrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// DefaultTimeout bounds every call when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// AuthClient is what the HTTP layer needs from the authentication service.
type AuthClient interface {
	Register(ctx context.Context, req *authrpc.RegisterUserRequest) (*authrpc.User, error)
	Login(ctx context.Context, email, password string) (*authrpc.LoginUserResponse, error)
	// ValidateToken returns (nil, nil) for a token the service rejected and
	// (nil, ErrUnauthorized) when the service could not be asked.
	ValidateToken(ctx context.Context, token string) (*authrpc.User, error)
	ListUsers(ctx context.Context) ([]authrpc.User, error)
	Ready(ctx context.Context) error
}

type GRPCClient struct {
	conn    *grpc.ClientConn
	client  authrpc.AuthServiceClient
	health  healthpb.HealthClient
	timeout time.Duration
}

var _ AuthClient = (*GRPCClient)(nil)

// NewGRPCClient creates a lazily connecting client for target. Extra dial
// options are appended after the defaults.
func NewGRPCClient(target string, timeout time.Duration, m *Metrics, extra ...grpc.DialOption) (*GRPCClient, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(authrpc.Subtype)),
		grpc.WithChainUnaryInterceptor(authrpc.UnaryClientRequestID()),
	}
	if m != nil {
		opts = append(opts, grpc.WithChainUnaryInterceptor(m.UnaryClientInterceptor()))
	}
	opts = append(opts, extra...)

	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc client: %w", err)
	}

	return &GRPCClient{
		conn:    conn,
		client:  authrpc.NewAuthServiceClient(conn),
		health:  healthpb.NewHealthClient(conn),
		timeout: timeout,
	}, nil
}

func (c *GRPCClient) Register(ctx context.Context, req *authrpc.RegisterUserRequest) (*authrpc.User, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	user, err := c.client.RegisterUser(ctx, req)
	if err != nil {
		switch status.Code(err) {
		case codes.AlreadyExists:
			return nil, ErrConflict
		case codes.InvalidArgument:
			return nil, fmt.Errorf("%w: %s", ErrBadRequest, status.Convert(err).Message())
		default:
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}
	return user, nil
}

func (c *GRPCClient) Login(ctx context.Context, email, password string) (*authrpc.LoginUserResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.LoginUser(ctx, &authrpc.LoginUserRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return resp, nil
}

func (c *GRPCClient) ValidateToken(ctx context.Context, token string) (*authrpc.User, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.ValidateToken(ctx, &authrpc.ValidateTokenRequest{Token: token})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return resp.User, nil
}

func (c *GRPCClient) ListUsers(ctx context.Context) ([]authrpc.User, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.GetAllUsers(ctx, &authrpc.GetAllUsersRequest{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if resp.Users == nil {
		return []authrpc.User{}, nil
	}
	return resp.Users, nil
}

// Ready reports whether the authentication service answers its health check
// with SERVING.
func (c *GRPCClient) Ready(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.health.Check(ctx, &healthpb.HealthCheckRequest{Service: authrpc.ServiceName})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: status %s", ErrUnavailable, resp.GetStatus())
	}
	return nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
