package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/authgate/internal/authrpc"
	"github.com/dmitrijs2005/authgate/internal/logging"
	"github.com/dmitrijs2005/authgate/internal/server/auth"
	"github.com/dmitrijs2005/authgate/internal/server/models"
	"github.com/dmitrijs2005/authgate/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// UserService is the credential logic the endpoint delegates to.
type UserService interface {
	Register(ctx context.Context, in services.RegisterInput) (*models.PublicUser, error)
	Authenticate(ctx context.Context, email, password string) (*models.PublicUser, bool)
	ListAll(ctx context.Context) ([]models.PublicUser, error)
	Lookup(ctx context.Context, email string) (*models.PublicUser, bool)
}

// TokenService signs and verifies session tokens.
type TokenService interface {
	Issue(c auth.Claims) (string, error)
	Verify(token string) (auth.Claims, bool)
}

type Options struct {
	// ValidateAgainstStore makes ValidateToken re-read the user instead of
	// trusting the token claims.
	ValidateAgainstStore bool
}

type GRPCServer struct {
	address string
	users   UserService
	tokens  TokenService
	opts    Options
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us UserService, ts TokenService, opts Options) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		tokens:  ts,
		opts:    opts,
	}
}

// Run listens on the configured address and serves until ctx is canceled.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is canceled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(authrpc.UnaryServerRequestID(), s.loggingInterceptor))

	// registers services
	authrpc.RegisterAuthServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(authrpc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
