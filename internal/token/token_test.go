package token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret")

	signed, err := m.Issue("Anna", "anna@example.com")
	require.NoError(t, err)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "Anna", claims.Name)
	assert.Equal(t, "anna@example.com", claims.Email)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a").Issue("Anna", "anna@example.com")
	require.NoError(t, err)

	_, err = NewManager("secret-b").Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret")
	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	m.now = func() time.Time { return issuedAt }
	signed, err := m.Issue("Anna", "anna@example.com")
	require.NoError(t, err)

	m.now = func() time.Time { return issuedAt.Add(DefaultTTL + time.Minute) }
	_, err = m.Verify(signed)
	assert.Error(t, err, "token past its expiry must not verify")
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := NewManager("test-secret").Verify("not-a-jwt")
	assert.Error(t, err)
}

func TestVerifyCallMetadata(t *testing.T) {
	m := NewManager("test-secret")
	signed, err := m.Issue("Anna", "anna@example.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		ctx     context.Context
		wantErr bool
	}{
		{
			name: "valid bearer token",
			ctx: metadata.NewIncomingContext(context.Background(),
				metadata.Pairs("authorization", "Bearer "+signed)),
		},
		{
			name:    "no metadata at all",
			ctx:     context.Background(),
			wantErr: true,
		},
		{
			name: "missing authorization entry",
			ctx: metadata.NewIncomingContext(context.Background(),
				metadata.Pairs("other", "x")),
			wantErr: true,
		},
		{
			name: "missing bearer prefix",
			ctx: metadata.NewIncomingContext(context.Background(),
				metadata.Pairs("authorization", signed)),
			wantErr: true,
		},
		{
			name: "malformed token",
			ctx: metadata.NewIncomingContext(context.Background(),
				metadata.Pairs("authorization", "Bearer garbage")),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := m.verifyCallMetadata(tt.ctx)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, codes.Unauthenticated, status.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "anna@example.com", claims.Email)
		})
	}
}
