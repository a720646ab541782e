// Package healthcheck runs the sign-up, sign-in, sign-out cycle against the
// auth service with throwaway credentials, on a fixed delay, until cancelled.
package healthcheck

import (
	"context"
	"time"

	"github.com/dmitrijs2005/authservice/internal/client/client"
	"github.com/dmitrijs2005/authservice/internal/logging"
	pb "github.com/dmitrijs2005/authservice/internal/proto"
	"github.com/google/uuid"
)

// CycleResult records what one cycle observed. A zero status means the call
// was not made or failed in transport (see Err).
type CycleResult struct {
	SignUp  pb.StatusCode
	SignIn  pb.StatusCode
	SignOut pb.StatusCode
	Err     error
}

// Healthy reports whether all three calls returned OK.
func (r CycleResult) Healthy() bool {
	return r.Err == nil && r.SignUp == pb.StatusCode_OK &&
		r.SignIn == pb.StatusCode_OK && r.SignOut == pb.StatusCode_OK
}

type Prober struct {
	client   client.Client
	logger   logging.Logger
	interval time.Duration

	newCredential func() string
}

func NewProber(c client.Client, logger logging.Logger, interval time.Duration) *Prober {
	return &Prober{
		client:        c,
		logger:        logger.With("module", "healthcheck"),
		interval:      interval,
		newCredential: uuid.NewString,
	}
}

// RunCycle performs one SignUp, SignIn, SignOut sequence with a fresh random
// username and password. SignOut still runs when SignIn returns a non-OK
// status, but a transport error from any call ends the cycle.
func (p *Prober) RunCycle(ctx context.Context) CycleResult {
	var res CycleResult

	username := p.newCredential()
	password := p.newCredential()

	res.SignUp, res.Err = p.client.SignUp(ctx, username, password)
	if res.Err != nil {
		p.logger.Error(ctx, "sign up failed", "username", username, "error", res.Err)
		return res
	}
	p.logger.Info(ctx, "sign up", "username", username, "status", res.SignUp.String())

	var token string
	signIn, err := p.client.SignIn(ctx, username, password)
	if err != nil {
		res.Err = err
		p.logger.Error(ctx, "sign in failed", "username", username, "error", err)
		return res
	}
	res.SignIn = signIn.Status
	token = signIn.SessionToken
	p.logger.Info(ctx, "sign in", "username", username, "status", res.SignIn.String())

	res.SignOut, res.Err = p.client.SignOut(ctx, token)
	if res.Err != nil {
		p.logger.Error(ctx, "sign out failed", "username", username, "error", res.Err)
		return res
	}
	p.logger.Info(ctx, "sign out", "username", username, "status", res.SignOut.String())

	return res
}

// Run repeats RunCycle with p.interval between cycles until ctx is done.
// Failed cycles are logged and do not stop the loop.
func (p *Prober) Run(ctx context.Context) {
	for {
		res := p.RunCycle(ctx)
		if !res.Healthy() {
			p.logger.Warn(ctx, "health check cycle unhealthy",
				"sign_up", res.SignUp.String(), "sign_in", res.SignIn.String(), "sign_out", res.SignOut.String())
		}

		timer := time.NewTimer(p.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}
