package client

import (
	"context"

	pb "github.com/dmitrijs2005/authservice/internal/proto"
)

// SignInResult is what a SignIn call returns. UserID and SessionToken are
// empty unless Status is OK.
type SignInResult struct {
	Status       pb.StatusCode
	UserID       string
	SessionToken string
}

type Client interface {
	Close() error
	SignUp(ctx context.Context, username, password string) (pb.StatusCode, error)
	SignIn(ctx context.Context, username, password string) (*SignInResult, error)
	SignOut(ctx context.Context, sessionToken string) (pb.StatusCode, error)
}
