package auth

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/faults"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/logger"
	"github.com/AnnaRychkova1/smart-recruitment-grpc/internal/token"
)

type memStore struct {
	mu      sync.Mutex
	byEmail map[string]User
	seq     int
}

func newMemStore() *memStore {
	return &memStore{byEmail: make(map[string]User)}
}

func (s *memStore) InsertUser(_ context.Context, u User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[u.Email]; exists {
		return User{}, faults.ErrConflict
	}
	s.seq++
	u.ID = fmt.Sprintf("u-%d", s.seq)
	s.byEmail[u.Email] = u
	return u, nil
}

func (s *memStore) GetUserByEmail(_ context.Context, email string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byEmail[email]
	if !ok {
		return User{}, faults.ErrNotFound
	}
	return u, nil
}

func newTestService() (*Service, *token.Manager) {
	tm := token.NewManager("test-secret")
	return NewService(newMemStore(), tm, nil, logger.NewNop()), tm
}

func TestSignUpThenSignIn(t *testing.T) {
	svc, tm := newTestService()

	u, signed, err := svc.SignUp(context.Background(), "Anna", "anna@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "Anna", u.Name)
	assert.NotEmpty(t, u.ID)

	claims, err := tm.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", claims.Email)

	_, signedIn, err := svc.SignIn(context.Background(), "anna@example.com", "hunter22")
	require.NoError(t, err)

	claims, err = tm.Verify(signedIn)
	require.NoError(t, err)
	assert.Equal(t, "Anna", claims.Name)
}

func TestSignUpDuplicateEmailConflicts(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.SignUp(context.Background(), "Anna", "anna@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.SignUp(context.Background(), "Other Anna", "anna@example.com", "hunter23")
	assert.ErrorIs(t, err, faults.ErrConflict)
}

func TestSignUpValidation(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		name      string
		userName  string
		email     string
		password  string
		wantField string
	}{
		{name: "missing name", userName: "", email: "a@b.co", password: "hunter22", wantField: "name"},
		{name: "malformed email", userName: "Anna", email: "not-an-email", password: "hunter22", wantField: "email"},
		{name: "short password", userName: "Anna", email: "a@b.co", password: "abc", wantField: "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.SignUp(context.Background(), tc.userName, tc.email, tc.password)
			var verr *faults.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantField, verr.Field)
		})
	}
}

func TestSignInUnknownEmailIsNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.SignIn(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, faults.ErrNotFound)
}

func TestSignInWrongPasswordIsUnauthenticated(t *testing.T) {
	svc, _ := newTestService()

	_, _, err := svc.SignUp(context.Background(), "Anna", "anna@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.SignIn(context.Background(), "anna@example.com", "wrong-password")
	assert.ErrorIs(t, err, faults.ErrUnauthenticated)
}
