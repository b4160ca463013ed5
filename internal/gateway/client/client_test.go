package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/authgate/internal/authrpc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// stubAuth answers with canned values or errors. delay makes every call wait
// for the caller's deadline.
type stubAuth struct {
	err      error
	delay    bool
	user     *authrpc.User
	users    []authrpc.User
	lastTok  string
	lastUser *authrpc.RegisterUserRequest
}

func (s *stubAuth) wait(ctx context.Context) error {
	if !s.delay {
		return nil
	}
	select {
	case <-ctx.Done():
		return status.FromContextError(ctx.Err()).Err()
	case <-time.After(2 * time.Second):
		return nil
	}
}

func (s *stubAuth) RegisterUser(ctx context.Context, in *authrpc.RegisterUserRequest) (*authrpc.User, error) {
	s.lastUser = in
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return &authrpc.User{ID: "u-1", Email: in.Email}, nil
}

func (s *stubAuth) LoginUser(ctx context.Context, in *authrpc.LoginUserRequest) (*authrpc.LoginUserResponse, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return &authrpc.LoginUserResponse{AccessToken: "tok", User: authrpc.UserSummary{ID: "u-1", Email: in.Email}}, nil
}

func (s *stubAuth) ValidateToken(ctx context.Context, in *authrpc.ValidateTokenRequest) (*authrpc.ValidateTokenResponse, error) {
	s.lastTok = in.Token
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return &authrpc.ValidateTokenResponse{User: s.user}, nil
}

func (s *stubAuth) GetAllUsers(ctx context.Context, _ *authrpc.GetAllUsersRequest) (*authrpc.GetAllUsersResponse, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return &authrpc.GetAllUsersResponse{Users: s.users}, nil
}

func newClient(t *testing.T, stub *stubAuth, timeout time.Duration, m *Metrics) (*GRPCClient, *health.Server) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	authrpc.RegisterAuthServiceServer(srv, stub)
	hs := health.NewServer()
	hs.SetServingStatus(authrpc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := NewGRPCClient("passthrough:///bufnet", timeout, m,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, hs
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "ok"},
		{name: "already exists", err: status.Error(codes.AlreadyExists, "dup"), want: ErrConflict},
		{name: "invalid argument", err: status.Error(codes.InvalidArgument, "email required"), want: ErrBadRequest},
		{name: "internal", err: status.Error(codes.Internal, "db"), want: ErrInternal},
		{name: "unknown", err: errors.New("boom"), want: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newClient(t, &stubAuth{err: tt.err}, time.Second, nil)

			u, err := c.Register(context.Background(), &authrpc.RegisterUserRequest{Email: "a@x.com", Password: "pw"})
			if tt.want == nil {
				require.NoError(t, err)
				assert.Equal(t, "a@x.com", u.Email)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, u)
		})
	}
}

func TestLogin_AnyFaultIsUnauthorized(t *testing.T) {
	for _, fault := range []error{
		status.Error(codes.Unauthenticated, "invalid credentials"),
		status.Error(codes.Internal, "db"),
		status.Error(codes.Unavailable, "down"),
	} {
		c, _ := newClient(t, &stubAuth{err: fault}, time.Second, nil)
		_, err := c.Login(context.Background(), "a@x.com", "pw")
		assert.ErrorIs(t, err, ErrUnauthorized)
	}

	c, _ := newClient(t, &stubAuth{}, time.Second, nil)
	resp, err := c.Login(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
}

func TestValidateToken(t *testing.T) {
	stub := &stubAuth{user: &authrpc.User{ID: "u-1"}}
	c, _ := newClient(t, stub, time.Second, nil)

	u, err := c.ValidateToken(context.Background(), "abc")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "abc", stub.lastTok)

	stub.user = nil
	u, err = c.ValidateToken(context.Background(), "abc")
	require.NoError(t, err)
	assert.Nil(t, u)

	stub.err = status.Error(codes.Internal, "boom")
	u, err = c.ValidateToken(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Nil(t, u)
}

func TestListUsers(t *testing.T) {
	stub := &stubAuth{}
	c, _ := newClient(t, stub, time.Second, nil)

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	stub.users = []authrpc.User{{ID: "u-1"}, {ID: "u-2"}}
	users, err = c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)

	stub.err = status.Error(codes.Unavailable, "down")
	_, err = c.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestTimeout(t *testing.T) {
	c, _ := newClient(t, &stubAuth{delay: true}, 50*time.Millisecond, nil)

	start := time.Now()
	_, err := c.ValidateToken(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Less(t, time.Since(start), time.Second)

	_, err = c.Register(context.Background(), &authrpc.RegisterUserRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = c.Login(context.Background(), "a@x.com", "pw")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestReady(t *testing.T) {
	c, hs := newClient(t, &stubAuth{}, time.Second, nil)
	require.NoError(t, c.Ready(context.Background()))

	hs.SetServingStatus(authrpc.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	assert.ErrorIs(t, c.Ready(context.Background()), ErrUnavailable)
}

func TestNewGRPCClient_DefaultTimeout(t *testing.T) {
	c, err := NewGRPCClient("passthrough:///nowhere", 0, nil)
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, DefaultTimeout, c.timeout)
}

func TestMetrics_ObservesCalls(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	c, _ := newClient(t, &stubAuth{err: status.Error(codes.AlreadyExists, "dup")}, time.Second, m)

	_, _ = c.Register(context.Background(), &authrpc.RegisterUserRequest{Email: "a@x.com"})
	_, _ = c.ListUsers(context.Background())

	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "authgate_rpc_duration_seconds", families[0].GetName())

	var seen []string
	for _, metric := range families[0].GetMetric() {
		labels := map[string]string{}
		for _, l := range metric.GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
		seen = append(seen, labels["method"]+"/"+labels["code"])
	}
	assert.ElementsMatch(t, []string{"RegisterUser/AlreadyExists", "GetAllUsers/AlreadyExists"}, seen)
}
