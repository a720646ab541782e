// Package grpc exposes the authentication core as the authentication.Auth
// gRPC service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/authservice/internal/logging"
	pb "github.com/dmitrijs2005/authservice/internal/proto"
	"github.com/dmitrijs2005/authservice/internal/server/models"
	"github.com/dmitrijs2005/authservice/internal/server/services"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Authenticator is the part of services.AuthService the server needs.
type Authenticator interface {
	SignUp(ctx context.Context, userName, password string) models.StatusCode
	SignIn(ctx context.Context, userName, password string) services.SignInResult
	SignOut(ctx context.Context, token string) models.StatusCode
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	address string
	auth    Authenticator
	logger  logging.Logger
	health  *health.Server
}

func NewGRPCServer(a string, l logging.Logger, auth Authenticator) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    auth,
		health:  health.NewServer(),
	}, nil
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully so in-flight calls complete.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		pb.WithServerCodec(),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(s.recoveryInterceptor, s.loggingInterceptor),
	)

	pb.RegisterAuthServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(pb.Auth_ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}
