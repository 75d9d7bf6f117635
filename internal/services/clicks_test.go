package services

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsdevblog/shortlinks/internal/models"
	"github.com/fsdevblog/shortlinks/internal/services/mocks"
)

func TestSanitizeHeader(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "short", in: "curl/8.0", n: 16, want: "curl/8.0"},
		{name: "ascii cut", in: "abcdef", n: 3, want: "abc"},
		{name: "multibyte at cut point", in: strings.Repeat("a", 1023) + "Ж", n: 1024, want: strings.Repeat("a", 1023)},
		{name: "multibyte fits", in: "aЖ", n: 3, want: "aЖ"},
		{name: "invalid utf8 replaced", in: "ua\xff\xfe", n: 64, want: "ua�"},
		{name: "nul removed", in: "a\x00b", n: 64, want: "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeHeader(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.LessOrEqual(t, len(got), tt.n)
		})
	}
}

func TestClickRecorder_Record_SanitizesRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockClickRepository(ctrl)

	var saved models.Click
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *models.Click) error {
		saved = *c
		return nil
	})

	recorder := NewClickRecorder(repo, 0)
	err := recorder.Record(t.Context(), &models.URL{ID: 9}, RequestContext{
		ForwardedFor: "<script>" + strings.Repeat("a", 60),
		PeerAddr:     "198.51.100.4:5000",
		UserAgent:    strings.Repeat("b", maxUserAgentLength-1) + "Ж\xff",
		Referer:      "https://ref.example/\xc3",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(9), saved.URLID)
	assert.Equal(t, "198.51.100.4", saved.IPAddress)
	assert.True(t, utf8.ValidString(saved.UserAgent))
	assert.Len(t, saved.UserAgent, maxUserAgentLength-1)
	require.NotNil(t, saved.Referer)
	assert.Equal(t, "https://ref.example/�", *saved.Referer)
}
