package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/shortlinks/internal/models"
)

func TestCodeGenerator_Generate(t *testing.T) {
	gen := NewCodeGenerator()
	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, models.ShortCodeLength)
		for _, c := range code {
			require.True(t, strings.ContainsRune(ShortCodeAlphabet, c), "unexpected symbol %q", c)
		}
		seen[code] = struct{}{}
	}
	// 62^6 вариантов, на тысяче кодов совпадения практически исключены
	assert.GreaterOrEqual(t, len(seen), 999)
}

func TestIsValidShortCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{code: "aB3dE9", want: true},
		{code: "000000", want: true},
		{code: "abc12", want: false},
		{code: "abc1234", want: false},
		{code: "abc-12", want: false},
		{code: "abc 12", want: false},
		{code: "абвгде", want: false},
		{code: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidShortCode(tt.code))
		})
	}
}

func TestRequestContext_ClientIP(t *testing.T) {
	tests := []struct {
		name string
		rc   RequestContext
		want string
	}{
		{name: "forwarded single", rc: RequestContext{ForwardedFor: "203.0.113.5", PeerAddr: "10.0.0.1:5000"}, want: "203.0.113.5"},
		{name: "forwarded chain", rc: RequestContext{ForwardedFor: " 203.0.113.5 , 10.0.0.2"}, want: "203.0.113.5"},
		{name: "peer ipv4", rc: RequestContext{PeerAddr: "192.0.2.10:41234"}, want: "192.0.2.10"},
		{name: "peer ipv6", rc: RequestContext{PeerAddr: "[2001:db8::1]:443"}, want: "2001:db8::1"},
		{name: "peer without port", rc: RequestContext{PeerAddr: "192.0.2.10"}, want: "192.0.2.10"},
		{name: "empty forwarded hop", rc: RequestContext{ForwardedFor: " ,10.0.0.2", PeerAddr: "192.0.2.10:1"}, want: "192.0.2.10"},
		{
			name: "forwarded garbage falls back to peer",
			rc:   RequestContext{ForwardedFor: "not-an-ip-" + strings.Repeat("a", 48), PeerAddr: "192.0.2.10:1"},
			want: "192.0.2.10",
		},
		{name: "forwarded with port", rc: RequestContext{ForwardedFor: "203.0.113.5:8080"}, want: "203.0.113.5"},
		{name: "forwarded ipv6 zone dropped", rc: RequestContext{ForwardedFor: "fe80::1%eth0"}, want: "fe80::1"},
		{name: "forwarded ipv4-mapped", rc: RequestContext{ForwardedFor: "::ffff:203.0.113.5"}, want: "203.0.113.5"},
		{name: "garbage everywhere", rc: RequestContext{ForwardedFor: "unknown", PeerAddr: "pipe"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rc.ClientIP())
		})
	}
}

func TestRequestContext_ClientIP_FitsColumn(t *testing.T) {
	for _, forwarded := range []string{
		strings.Repeat("x", 500),
		"ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff%" + strings.Repeat("z", 100),
		"[::1]:80, 10.0.0.1",
	} {
		ip := RequestContext{ForwardedFor: forwarded, PeerAddr: "[2001:db8::1]:443"}.ClientIP()
		assert.LessOrEqual(t, len(ip), 45, forwarded)
	}
}
