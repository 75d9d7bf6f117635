package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-secret-key")

func TestSessionJWT_RoundTrip(t *testing.T) {
	session := NewSession()
	token, err := GenerateSessionJWT(session, time.Hour, testKey)
	require.NoError(t, err)

	claims, err := ValidateSessionJWT(token, testKey)
	require.NoError(t, err)
	assert.Equal(t, session, claims.Session())
}

func TestNewSession_Unique(t *testing.T) {
	a, b := NewSession(), NewSession()
	assert.NotEqual(t, a.UserID, b.UserID)
	assert.NotEqual(t, a.CSRFToken, b.CSRFToken)
	assert.NotEqual(t, a.UserID, a.CSRFToken)
}

func TestValidateSessionJWT_Errors(t *testing.T) {
	expired, err := GenerateSessionJWT(NewSession(), -time.Minute, testKey)
	require.NoError(t, err)

	otherKey, err := GenerateSessionJWT(NewSession(), time.Hour, []byte("another-key"))
	require.NoError(t, err)

	empty, err := GenerateSessionJWT(Session{}, time.Hour, testKey)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{UserID: "u", CSRF: "c"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired, wantErr: ErrTokenExpired},
		{name: "wrong key", token: otherKey, wantErr: ErrInvalidToken},
		{name: "empty claims", token: empty, wantErr: ErrInvalidToken},
		{name: "none alg", token: noneAlg, wantErr: ErrInvalidToken},
		{name: "garbage", token: "not-a-jwt", wantErr: ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateSessionJWT(tt.token, testKey)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
