package tlscert

import (
	"crypto/x509"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	return New(WithHosts("localhost", "127.0.0.1"))
}

func TestGenerateAndCheck(t *testing.T) {
	certPEM, keyPEM, err := newTestGenerator().Generate()
	require.NoError(t, err)
	require.NoError(t, Check(certPEM, keyPEM))
}

func TestCheck_Errors(t *testing.T) {
	gen := newTestGenerator()

	expiredCert, expiredKey, err := gen.Generate(Modify(func(c *x509.Certificate) {
		c.NotBefore = time.Now().Add(-48 * time.Hour)
		c.NotAfter = time.Now().Add(-24 * time.Hour)
	}))
	require.NoError(t, err)

	futureCert, futureKey, err := gen.Generate(Modify(func(c *x509.Certificate) {
		c.NotBefore = time.Now().Add(24 * time.Hour)
	}))
	require.NoError(t, err)

	validCert, _, err := gen.Generate()
	require.NoError(t, err)
	_, otherKey, err := gen.Generate()
	require.NoError(t, err)

	tests := []struct {
		name    string
		cert    []byte
		key     []byte
		wantErr error
	}{
		{name: "blank", cert: nil, key: nil, wantErr: ErrBlankPEM},
		{name: "expired", cert: expiredCert, key: expiredKey, wantErr: ErrCertExpired},
		{name: "not valid yet", cert: futureCert, key: futureKey, wantErr: ErrCertNotValidYet},
		{name: "key mismatch", cert: validCert, key: otherKey, wantErr: ErrKeyMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, Check(tt.cert, tt.key), tt.wantErr)
		})
	}
}

func TestEnsurePair(t *testing.T) {
	dir := t.TempDir()
	certPath := filepath.Join(dir, "tls", "cert.pem")
	keyPath := filepath.Join(dir, "tls", "key.pem")
	gen := newTestGenerator()

	regenerated, err := gen.EnsurePair(certPath, keyPath)
	require.NoError(t, err)
	assert.True(t, regenerated)

	first, err := os.ReadFile(certPath)
	require.NoError(t, err)

	regenerated, err = gen.EnsurePair(certPath, keyPath)
	require.NoError(t, err)
	assert.False(t, regenerated)

	second, err := os.ReadFile(certPath)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEnsurePair_ReplacesExpired(t *testing.T) {
	dir := t.TempDir()
	certPath := filepath.Join(dir, "cert.pem")
	keyPath := filepath.Join(dir, "key.pem")
	gen := newTestGenerator()

	expiredCert, expiredKey, err := gen.Generate(Modify(func(c *x509.Certificate) {
		c.NotBefore = time.Now().Add(-48 * time.Hour)
		c.NotAfter = time.Now().Add(-24 * time.Hour)
	}))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(certPath, expiredCert, 0o600))
	require.NoError(t, os.WriteFile(keyPath, expiredKey, 0o600))

	regenerated, err := gen.EnsurePair(certPath, keyPath)
	require.NoError(t, err)
	assert.True(t, regenerated)

	certPEM, err := os.ReadFile(certPath)
	require.NoError(t, err)
	keyPEM, err := os.ReadFile(keyPath)
	require.NoError(t, err)
	require.NoError(t, Check(certPEM, keyPEM))
}
