// Package services contains server-side business logic. AuthService owns the
// sign-up, sign-in and sign-out flows over the credential store, the session
// table and the password hasher.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/authservice/internal/common"
	"github.com/dmitrijs2005/authservice/internal/logging"
	"github.com/dmitrijs2005/authservice/internal/server/models"
	"github.com/dmitrijs2005/authservice/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/authservice/internal/server/repositories/sessions"
)

// Hasher derives and checks password hashes. Implemented by *password.Argon2.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, encoded string) (bool, error)
}

// Options tune AuthService. A zero SessionTTL issues sessions that never
// expire; a zero StoreTimeout leaves store calls bounded only by the caller.
type Options struct {
	SessionTTL   time.Duration
	StoreTimeout time.Duration
}

// SignInResult carries the session issued by a successful SignIn. UserID and
// SessionToken are empty unless Status is StatusOk.
type SignInResult struct {
	Status       models.StatusCode
	UserID       string
	SessionToken string
}

type AuthService struct {
	credentials credentials.Repository
	sessions    sessions.Repository
	hasher      Hasher
	logger      logging.Logger
	opts        Options

	// dummyHash is verified against when the user is unknown so that both
	// SignIn failure paths pay for one hash.
	dummyHash string
}

func NewAuthService(creds credentials.Repository, sess sessions.Repository, hasher Hasher, logger logging.Logger, opts Options) (*AuthService, error) {
	token, err := common.MakeRandToken(16)
	if err != nil {
		return nil, fmt.Errorf("dummy password: %w", err)
	}
	dummy, err := hasher.Hash(token)
	if err != nil {
		return nil, fmt.Errorf("dummy hash: %w", err)
	}

	return &AuthService{
		credentials: creds,
		sessions:    sess,
		hasher:      hasher,
		logger:      logger.With("module", "auth"),
		opts:        opts,
		dummyHash:   dummy,
	}, nil
}

// validCredentials rejects empty fields and anything that is not UTF-8 text.
func validCredentials(userName, password string) bool {
	return userName != "" && password != "" &&
		utf8.ValidString(userName) && utf8.ValidString(password)
}

// SignUp registers userName with a hash of password. No session is created.
func (s *AuthService) SignUp(ctx context.Context, userName, password string) models.StatusCode {
	if !validCredentials(userName, password) {
		return models.StatusInvalidArgument
	}

	exists, err := s.exists(ctx, userName)
	if err != nil {
		s.logger.Error(ctx, "sign up: lookup failed", "username", userName, "error", err)
		return models.StatusInternal
	}
	if exists {
		return models.StatusAlreadyExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "sign up: hash failed", "username", userName, "error", err)
		return models.StatusInternal
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	_, err = s.credentials.Put(storeCtx, &models.User{UserName: userName, PasswordHash: hash})
	switch {
	case err == nil:
		s.logger.Info(ctx, "user registered", "username", userName)
		return models.StatusOk
	case errors.Is(err, common.ErrorAlreadyExists):
		return models.StatusAlreadyExists
	default:
		s.logger.Error(ctx, "sign up: store failed", "username", userName, "error", err)
		return models.StatusInternal
	}
}

// SignIn checks the password and, on success, issues a new session. Unknown
// users and wrong passwords are indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, userName, password string) SignInResult {
	if !validCredentials(userName, password) {
		return SignInResult{Status: models.StatusInvalidArgument}
	}

	user, err := s.lookup(ctx, userName)
	if errors.Is(err, common.ErrorNotFound) {
		_, _ = s.hasher.Verify(password, s.dummyHash)
		s.logger.Info(ctx, "sign in rejected", "username", userName)
		return SignInResult{Status: models.StatusIncorrectCredentials}
	}
	if err != nil {
		s.logger.Error(ctx, "sign in: lookup failed", "username", userName, "error", err)
		return SignInResult{Status: models.StatusInternal}
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "sign in: stored hash unusable", "username", userName, "error", err)
		return SignInResult{Status: models.StatusInternal}
	}
	if !ok {
		s.logger.Info(ctx, "sign in rejected", "username", userName)
		return SignInResult{Status: models.StatusIncorrectCredentials}
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	session, err := s.sessions.Create(storeCtx, user.UserName, s.opts.SessionTTL)
	if err != nil {
		s.logger.Error(ctx, "sign in: session create failed", "username", userName, "error", err)
		return SignInResult{Status: models.StatusInternal}
	}

	s.logger.Info(ctx, "signed in", "username", userName)
	return SignInResult{Status: models.StatusOk, UserID: user.ID, SessionToken: session.Token}
}

// SignOut revokes the session if it exists. Unknown, revoked and empty tokens
// all succeed.
func (s *AuthService) SignOut(ctx context.Context, token string) models.StatusCode {
	if token == "" {
		return models.StatusOk
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	if err := s.sessions.Revoke(storeCtx, token); err != nil {
		s.logger.Error(ctx, "sign out: revoke failed", "error", err)
		return models.StatusInternal
	}
	return models.StatusOk
}

// ValidateSession returns the username owning token, common.ErrInvalidSession
// for anything not currently active, or a wrapped common.ErrorInternal.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", common.ErrInvalidSession
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()

	session, err := s.sessions.Validate(storeCtx, token)
	if errors.Is(err, common.ErrInvalidSession) {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}
	return session.UserName, nil
}

func (s *AuthService) exists(ctx context.Context, userName string) (bool, error) {
	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()
	return s.credentials.Exists(storeCtx, userName)
}

func (s *AuthService) lookup(ctx context.Context, userName string) (*models.User, error) {
	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()
	return s.credentials.Get(storeCtx, userName)
}

func (s *AuthService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.StoreTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.StoreTimeout)
}
