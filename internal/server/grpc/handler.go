package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/authservice/internal/proto"
	"github.com/dmitrijs2005/authservice/internal/server/models"
)

// Domain outcomes travel as status codes inside successful responses; gRPC
// errors are left to transport and interceptor failures.

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {
	code := s.auth.SignUp(ctx, req.GetUsername(), req.GetPassword())
	return &pb.SignUpResponse{StatusCode: toProtoStatus(code)}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {
	res := s.auth.SignIn(ctx, req.GetUsername(), req.GetPassword())
	return &pb.SignInResponse{
		StatusCode:   toProtoStatus(res.Status),
		UserUuid:     res.UserID,
		SessionToken: res.SessionToken,
	}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*pb.SignOutResponse, error) {
	code := s.auth.SignOut(ctx, req.GetSessionToken())
	return &pb.SignOutResponse{StatusCode: toProtoStatus(code)}, nil
}

func toProtoStatus(c models.StatusCode) pb.StatusCode {
	switch c {
	case models.StatusOk:
		return pb.StatusCode_OK
	case models.StatusInvalidArgument:
		return pb.StatusCode_INVALID_ARGUMENT
	case models.StatusAlreadyExists:
		return pb.StatusCode_ALREADY_EXISTS
	case models.StatusIncorrectCredentials:
		return pb.StatusCode_INCORRECT_CREDENTIALS
	default:
		return pb.StatusCode_INTERNAL
	}
}
