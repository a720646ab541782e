package client

import (
	"context"
	"fmt"
	"time"

	pb "github.com/dmitrijs2005/authservice/internal/proto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL    string
	requestTimeout time.Duration
	conn           *grpc.ClientConn
	client         pb.AuthClient
}

// NewAuthClient prepares a connection to endpointURL. The connection is
// established lazily on the first call. A zero requestTimeout leaves calls
// bounded only by the caller's context.
func NewAuthClient(endpointURL string, requestTimeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, requestTimeout: requestTimeout}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		pb.WithCodec(),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthClient(conn)
	return nil
}

func (s *GRPCClient) SignUp(ctx context.Context, username, password string) (pb.StatusCode, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.SignUp(ctx, &pb.SignUpRequest{Username: username, Password: password})
	if err != nil {
		return pb.StatusCode_STATUS_CODE_UNSPECIFIED, s.mapError(err)
	}
	return resp.GetStatusCode(), nil
}

func (s *GRPCClient) SignIn(ctx context.Context, username, password string) (*SignInResult, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.SignIn(ctx, &pb.SignInRequest{Username: username, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &SignInResult{
		Status:       resp.GetStatusCode(),
		UserID:       resp.GetUserUuid(),
		SessionToken: resp.GetSessionToken(),
	}, nil
}

func (s *GRPCClient) SignOut(ctx context.Context, sessionToken string) (pb.StatusCode, error) {
	ctx, cancel := s.callContext(ctx)
	defer cancel()

	resp, err := s.client.SignOut(ctx, &pb.SignOutRequest{SessionToken: sessionToken})
	if err != nil {
		return pb.StatusCode_STATUS_CODE_UNSPECIFIED, s.mapError(err)
	}
	return resp.GetStatusCode(), nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.requestTimeout)
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
