package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/authservice/internal/common"
	"github.com/dmitrijs2005/authservice/internal/logging"
	"github.com/dmitrijs2005/authservice/internal/server/models"
	"github.com/dmitrijs2005/authservice/internal/server/password"
	"github.com/dmitrijs2005/authservice/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/authservice/internal/server/repositories/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

func testHasher(t *testing.T) *password.Argon2 {
	t.Helper()
	h, err := password.NewArgon2(password.Params{Memory: 8 * 1024, Time: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	require.NoError(t, err)
	return h
}

func newTestService(t *testing.T, creds credentials.Repository, sess sessions.Repository, logger logging.Logger) *AuthService {
	t.Helper()
	if creds == nil {
		creds = credentials.NewMemoryRepository()
	}
	if sess == nil {
		sess = sessions.NewMemoryRepository()
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	s, err := NewAuthService(creds, sess, testHasher(t), logger, Options{SessionTTL: time.Hour, StoreTimeout: time.Second})
	require.NoError(t, err)
	return s
}

// recordingLogger keeps every message and attribute for inspection.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) record(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprint(append([]any{msg}, args...)...))
}

func (l *recordingLogger) Debug(_ context.Context, msg string, args ...any) { l.record(msg, args...) }
func (l *recordingLogger) Info(_ context.Context, msg string, args ...any)  { l.record(msg, args...) }
func (l *recordingLogger) Warn(_ context.Context, msg string, args ...any)  { l.record(msg, args...) }
func (l *recordingLogger) Error(_ context.Context, msg string, args ...any) { l.record(msg, args...) }
func (l *recordingLogger) With(...any) logging.Logger                      { return l }

func (l *recordingLogger) joined() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.lines, "\n")
}

type fakeCredentials struct {
	putErr    error
	getErr    error
	existsErr error
	user      *models.User
	block     bool
}

func (f *fakeCredentials) wait(ctx context.Context) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

func (f *fakeCredentials) Put(ctx context.Context, u *models.User) (*models.User, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.putErr != nil {
		return nil, f.putErr
	}
	return u, nil
}

func (f *fakeCredentials) Get(ctx context.Context, userName string) (*models.User, error) {
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.user == nil {
		return nil, common.ErrorNotFound
	}
	return f.user, nil
}

func (f *fakeCredentials) Exists(ctx context.Context, userName string) (bool, error) {
	if err := f.wait(ctx); err != nil {
		return false, err
	}
	return false, f.existsErr
}

type fakeSessions struct {
	createErr   error
	validateErr error
	revokeErr   error
	revoked     []string
}

func (f *fakeSessions) Create(ctx context.Context, userName string, ttl time.Duration) (*models.Session, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Session{Token: "tok", UserName: userName, Status: models.SessionActive}, nil
}

func (f *fakeSessions) Validate(ctx context.Context, token string) (*models.Session, error) {
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	return &models.Session{Token: token, UserName: "alice", Status: models.SessionActive}, nil
}

func (f *fakeSessions) Revoke(ctx context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	return f.revokeErr
}

type failingHasher struct{ hashErr, verifyErr error }

func (h failingHasher) Hash(string) (string, error)          { return "x", h.hashErr }
func (h failingHasher) Verify(string, string) (bool, error) { return false, h.verifyErr }

// --- tests ---

func TestSignUp_ThenSignIn(t *testing.T) {
	s := newTestService(t, nil, nil, nil)
	ctx := context.Background()

	require.Equal(t, models.StatusOk, s.SignUp(ctx, "alice", "pw1"))

	res := s.SignIn(ctx, "alice", "pw1")
	require.Equal(t, models.StatusOk, res.Status)
	assert.NotEmpty(t, res.SessionToken)
	assert.NotEmpty(t, res.UserID)

	user, err := s.ValidateSession(ctx, res.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", user)
}

func TestSignUp_DoesNotCreateSession(t *testing.T) {
	sess := sessions.NewMemoryRepository()
	s := newTestService(t, nil, sess, nil)

	require.Equal(t, models.StatusOk, s.SignUp(context.Background(), "alice", "pw1"))
	assert.Equal(t, 0, sess.Len())
}

func TestSignUp_EmptyFields(t *testing.T) {
	s := newTestService(t, nil, nil, nil)
	ctx := context.Background()

	assert.Equal(t, models.StatusInvalidArgument, s.SignUp(ctx, "", "pw"))
	assert.Equal(t, models.StatusInvalidArgument, s.SignUp(ctx, "alice", ""))
}

func TestSignUp_InvalidUTF8(t *testing.T) {
	creds := credentials.NewMemoryRepository()
	s := newTestService(t, creds, nil, nil)
	ctx := context.Background()

	assert.Equal(t, models.StatusInvalidArgument, s.SignUp(ctx, "\xff\xfea", "pw"))
	assert.Equal(t, models.StatusInvalidArgument, s.SignUp(ctx, "alice", "pw\xc3"))

	exists, err := creds.Exists(ctx, "\xff\xfea")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSignUp_DuplicateKeepsOriginalPassword(t *testing.T) {
	s := newTestService(t, nil, nil, nil)
	ctx := context.Background()

	require.Equal(t, models.StatusOk, s.SignUp(ctx, "alice", "pw1"))
	assert.Equal(t, models.StatusAlreadyExists, s.SignUp(ctx, "alice", "pw2"))

	assert.Equal(t, models.StatusIncorrectCredentials, s.SignIn(ctx, "alice", "pw2").Status)
	assert.Equal(t, models.StatusOk, s.SignIn(ctx, "alice", "pw1").Status)
}

func TestSignUp_ParallelSameUsername(t *testing.T) {
	s := newTestService(t, nil, nil, nil)
	const n = 10

	results := make([]models.StatusCode, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.SignUp(context.Background(), "bob", fmt.Sprintf("pw-%d", i))
		}(i)
	}
	wg.Wait()

	ok, dup := 0, 0
	winner := -1
	for i, r := range results {
		switch r {
		case models.StatusOk:
			ok++
			winner = i
		case models.StatusAlreadyExists:
			dup++
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, n-1, dup)

	ctx := context.Background()
	assert.Equal(t, models.StatusOk, s.SignIn(ctx, "bob", fmt.Sprintf("pw-%d", winner)).Status)
	for i := 0; i < n; i++ {
		if i != winner {
			assert.Equal(t, models.StatusIncorrectCredentials, s.SignIn(ctx, "bob", fmt.Sprintf("pw-%d", i)).Status)
		}
	}
}

func TestSignIn_UnknownAndWrongPasswordLookAlike(t *testing.T) {
	s := newTestService(t, nil, nil, nil)
	ctx := context.Background()
	require.Equal(t, models.StatusOk, s.SignUp(ctx, "alice", "pw1"))

	unknown := s.SignIn(ctx, "mallory", "pw1")
	wrong := s.SignIn(ctx, "alice", "nope")

	assert.Equal(t, models.StatusIncorrectCredentials, unknown.Status)
	assert.Equal(t, unknown, wrong)
}

func TestSignIn_EmptyFields(t *testing.T) {
	s := newTestService(t, nil, nil, nil)
	ctx := context.Background()

	assert.Equal(t, models.StatusInvalidArgument, s.SignIn(ctx, "", "pw").Status)
	assert.Equal(t, models.StatusInvalidArgument, s.SignIn(ctx, "alice", "").Status)
}

func TestSignIn_InvalidUTF8(t *testing.T) {
	s := newTestService(t, nil, nil, nil)
	ctx := context.Background()

	assert.Equal(t, models.StatusInvalidArgument, s.SignIn(ctx, "\xff\xfea", "pw").Status)
	assert.Equal(t, models.StatusInvalidArgument, s.SignIn(ctx, "alice", "\xff").Status)
}

func TestSignIn_ConcurrentSessionsAreDistinct(t *testing.T) {
	s := newTestService(t, nil, nil, nil)
	ctx := context.Background()
	require.Equal(t, models.StatusOk, s.SignUp(ctx, "alice", "pw1"))

	const n = 8
	tokens := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res := s.SignIn(ctx, "alice", "pw1")
			if assert.Equal(t, models.StatusOk, res.Status) {
				tokens[i] = res.SessionToken
			}
		}(i)
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, tok := range tokens {
		assert.False(t, seen[tok], "duplicate token")
		seen[tok] = true
		_, err := s.ValidateSession(ctx, tok)
		assert.NoError(t, err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestService(t, nil, nil, nil)
	ctx := context.Background()

	require.Equal(t, models.StatusOk, s.SignUp(ctx, "alice", "pw1"))
	require.Equal(t, models.StatusAlreadyExists, s.SignUp(ctx, "alice", "pw2"))
	require.Equal(t, models.StatusIncorrectCredentials, s.SignIn(ctx, "alice", "pw2").Status)

	first := s.SignIn(ctx, "alice", "pw1")
	require.Equal(t, models.StatusOk, first.Status)
	second := s.SignIn(ctx, "alice", "pw1")
	require.Equal(t, models.StatusOk, second.Status)
	require.NotEqual(t, first.SessionToken, second.SessionToken)
	assert.Equal(t, first.UserID, second.UserID)

	require.Equal(t, models.StatusOk, s.SignOut(ctx, first.SessionToken))

	_, err := s.ValidateSession(ctx, first.SessionToken)
	require.ErrorIs(t, err, common.ErrInvalidSession)
	user, err := s.ValidateSession(ctx, second.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", user)

	// idempotent
	assert.Equal(t, models.StatusOk, s.SignOut(ctx, first.SessionToken))
	_, err = s.ValidateSession(ctx, first.SessionToken)
	require.ErrorIs(t, err, common.ErrInvalidSession)
}

func TestSignOut_UnknownAndEmptyTokens(t *testing.T) {
	sess := &fakeSessions{}
	s := newTestService(t, nil, sess, nil)
	ctx := context.Background()

	assert.Equal(t, models.StatusOk, s.SignOut(ctx, "never-issued"))
	assert.Equal(t, models.StatusOk, s.SignOut(ctx, ""))
	assert.Equal(t, []string{"never-issued"}, sess.revoked)
}

func TestValidateSession_EmptyToken(t *testing.T) {
	s := newTestService(t, nil, nil, nil)
	_, err := s.ValidateSession(context.Background(), "")
	require.ErrorIs(t, err, common.ErrInvalidSession)
}

func TestStoreFailuresAreInternal(t *testing.T) {
	boom := errors.New("boom")
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		s := newTestService(t, &fakeCredentials{existsErr: boom}, nil, nil)
		assert.Equal(t, models.StatusInternal, s.SignUp(ctx, "alice", "pw"))
	})
	t.Run("put", func(t *testing.T) {
		s := newTestService(t, &fakeCredentials{putErr: boom}, nil, nil)
		assert.Equal(t, models.StatusInternal, s.SignUp(ctx, "alice", "pw"))
	})
	t.Run("put race lost", func(t *testing.T) {
		s := newTestService(t, &fakeCredentials{putErr: common.ErrorAlreadyExists}, nil, nil)
		assert.Equal(t, models.StatusAlreadyExists, s.SignUp(ctx, "alice", "pw"))
	})
	t.Run("get", func(t *testing.T) {
		s := newTestService(t, &fakeCredentials{getErr: boom}, nil, nil)
		assert.Equal(t, models.StatusInternal, s.SignIn(ctx, "alice", "pw").Status)
	})
	t.Run("session create", func(t *testing.T) {
		h := testHasher(t)
		hash, err := h.Hash("pw")
		require.NoError(t, err)
		creds := &fakeCredentials{user: &models.User{ID: "u1", UserName: "alice", PasswordHash: hash}}
		s := newTestService(t, creds, &fakeSessions{createErr: boom}, nil)

		res := s.SignIn(ctx, "alice", "pw")
		assert.Equal(t, SignInResult{Status: models.StatusInternal}, res)
	})
	t.Run("corrupt stored hash", func(t *testing.T) {
		creds := &fakeCredentials{user: &models.User{ID: "u1", UserName: "alice", PasswordHash: "garbage"}}
		s := newTestService(t, creds, nil, nil)
		assert.Equal(t, models.StatusInternal, s.SignIn(ctx, "alice", "pw").Status)
	})
	t.Run("revoke", func(t *testing.T) {
		s := newTestService(t, nil, &fakeSessions{revokeErr: boom}, nil)
		assert.Equal(t, models.StatusInternal, s.SignOut(ctx, "tok"))
	})
	t.Run("validate", func(t *testing.T) {
		s := newTestService(t, nil, &fakeSessions{validateErr: boom}, nil)
		_, err := s.ValidateSession(ctx, "tok")
		require.ErrorIs(t, err, common.ErrorInternal)
	})
}

func TestStoreTimeoutIsInternal(t *testing.T) {
	creds := &fakeCredentials{block: true}
	s, err := NewAuthService(creds, sessions.NewMemoryRepository(), testHasher(t), logging.Nop{},
		Options{SessionTTL: time.Hour, StoreTimeout: 20 * time.Millisecond})
	require.NoError(t, err)

	start := time.Now()
	assert.Equal(t, models.StatusInternal, s.SignUp(context.Background(), "alice", "pw"))
	assert.Equal(t, models.StatusInternal, s.SignIn(context.Background(), "alice", "pw").Status)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestHasherFailureIsInternal(t *testing.T) {
	_, err := NewAuthService(credentials.NewMemoryRepository(), sessions.NewMemoryRepository(),
		failingHasher{hashErr: errors.New("no entropy")}, logging.Nop{}, Options{})
	require.Error(t, err)
}

func TestSecretsNeverLogged(t *testing.T) {
	logger := &recordingLogger{}
	creds := credentials.NewMemoryRepository()
	s := newTestService(t, creds, nil, logger)
	ctx := context.Background()

	const pw = "s3cret-Password!"
	require.Equal(t, models.StatusOk, s.SignUp(ctx, "alice", pw))
	s.SignIn(ctx, "alice", "wrong-Password!")
	s.SignIn(ctx, "ghost", pw)
	res := s.SignIn(ctx, "alice", pw)
	require.Equal(t, models.StatusOk, res.Status)
	s.SignOut(ctx, res.SessionToken)

	user, err := creds.Get(ctx, "alice")
	require.NoError(t, err)

	out := logger.joined()
	assert.Contains(t, out, "alice")
	assert.NotContains(t, out, pw)
	assert.NotContains(t, out, "wrong-Password!")
	assert.NotContains(t, out, user.PasswordHash)
	assert.NotContains(t, out, res.SessionToken)
}
